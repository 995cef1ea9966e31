// Package workers provides the background workers of the sync client.
// It defines the Worker interface, a Workers aggregate that launches
// several workers in a unified way, and the event dispatcher that feeds
// transport events into the reconciliation engine.
package workers

// Worker is implemented by any long-running background component.
// Run starts the worker; implementations are expected to spawn their
// goroutines internally and return promptly.
type Worker interface {
	Run()
}
