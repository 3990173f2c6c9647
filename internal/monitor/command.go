package monitor

import (
	"bufio"
	"strconv"
	"strings"
)

// Separator used to split batched command output.
const OutputSeparator = "---"

// BuildStatsCommand returns a single batched command that collects all four
// stat categories in one SSH exec. Output sections are separated by "---":
// 0. top CPU line, 1. free, 2. df for the root filesystem, 3. /proc/net/dev
func BuildStatsCommand() string {
	return `top -bn1 | grep -i 'cpu(s)' | head -1; echo "---"; free; echo "---"; df -P /; echo "---"; cat /proc/net/dev`
}

// parseCPU extracts the used-CPU percentage from a top "Cpu(s)" summary line.
// Handles both formats in the wild:
//
//	%Cpu(s):  3.2 us,  1.0 sy, ...
//	Cpu(s):  3.2%us,  1.0%sy, ...
func parseCPU(output string) (float64, bool) {
	line := strings.TrimSpace(output)
	if line == "" {
		return 0, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}

	val := fields[1]
	if idx := strings.Index(val, "%"); idx >= 0 {
		val = val[:idx]
	}

	cpu, err := strconv.ParseFloat(val, 64)
	if err != nil || cpu < 0 {
		return 0, false
	}
	return round1(cpu), true
}

// parseRAM computes used/total × 100 from free output's Mem line.
func parseRAM(output string) (float64, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || !strings.HasPrefix(fields[0], "Mem") {
			continue
		}

		total, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || total <= 0 {
			return 0, false
		}
		used, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || used < 0 {
			return 0, false
		}

		return round1(used / total * 100), true
	}
	return 0, false
}

// parseDisk extracts the percent-used field from df output for the root
// filesystem (last line, fifth column with -P).
func parseDisk(output string) (int, bool) {
	lines := nonEmptyLines(output)
	if len(lines) < 2 {
		return 0, false
	}

	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 5 {
		return 0, false
	}

	pct := strings.TrimSuffix(fields[4], "%")
	disk, err := strconv.Atoi(pct)
	if err != nil || disk < 0 {
		return 0, false
	}
	return disk, true
}

// parseNetCounters extracts cumulative rx/tx byte counters from /proc/net/dev.
// The priority list is consulted in order; the first named interface with
// counters present wins. If none match, the first interface after the two
// header lines is used as a last resort.
func parseNetCounters(output string, priority []string) (rx, tx int64, ok bool) {
	type counters struct {
		rx, tx int64
	}

	byName := make(map[string]counters)
	var firstName string

	lineNum := 0
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		lineNum++
		if lineNum <= 2 {
			// Two header lines precede the interface table
			continue
		}

		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		fields := strings.Fields(parts[1])
		if len(fields) < 9 {
			continue
		}

		rxBytes, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		txBytes, err := strconv.ParseInt(fields[8], 10, 64)
		if err != nil {
			continue
		}

		if firstName == "" {
			firstName = name
		}
		byName[name] = counters{rx: rxBytes, tx: txBytes}
	}

	for _, name := range priority {
		if c, found := byName[name]; found {
			return c.rx, c.tx, true
		}
	}

	if c, found := byName[firstName]; found {
		return c.rx, c.tx, true
	}
	return 0, 0, false
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	if v < 0 {
		return float64(int64(v*10-0.5)) / 10
	}
	return float64(int64(v*10+0.5)) / 10
}

// nonEmptyLines splits output into lines, dropping blank ones.
func nonEmptyLines(output string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
