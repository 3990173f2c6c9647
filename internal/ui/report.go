package ui

import "strings"

// StyleReportForTerminal applies terminal styling to a Telegram-formatted
// report: divider lines render muted and **bold** markers become real bold
// text instead of literal asterisks.
func StyleReportForTerminal(report string) string {
	var b strings.Builder
	for _, line := range strings.Split(report, "\n") {
		switch {
		case strings.HasPrefix(line, "⎯"):
			b.WriteString(MutedStyle.Render(line))
		case strings.Contains(line, "**"):
			b.WriteString(styleBoldMarkers(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// styleBoldMarkers replaces paired ** markers with bold styling.
func styleBoldMarkers(line string) string {
	bold := TitleStyle

	var b strings.Builder
	rest := line
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:start])
		b.WriteString(bold.Render(rest[start+2 : start+2+end]))
		rest = rest[start+2+end+2:]
	}
}
