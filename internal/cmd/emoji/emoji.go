// Package emoji provides the symbols used in CLI and TUI output.
package emoji

// Status symbols.
const (
	// Success marks a completed operation or a true value in tables.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Stop marks a shutdown.
	Stop = "■"

	// Warning marks a notice, such as a model that was not found.
	Warning = "!"

	// Info marks informational lines.
	Info = "i"

	// Start marks a service coming up.
	Start = "▶"
)
