package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Host online / task completed
	SymbolFail     = "✗" // Host offline / task failed
	SymbolPending  = "○" // Not yet polled
	SymbolProgress = "◐" // Poll in progress
)
