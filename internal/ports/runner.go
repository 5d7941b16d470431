package ports

// Runner defines the interface for the long-running polling surface
type Runner interface {
	// Start begins polling in the background
	Start() error

	// Stop halts polling and waits for the in-flight cycle to finish
	Stop() error
}
