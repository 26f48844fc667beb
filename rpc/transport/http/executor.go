package http

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IExecutor is an execution context the embedder already drives. When one is
// supplied to the builder, the dispatch loop is scheduled on it instead of a
// goroutine owned by the transport, and the embedder controls its lifecycle.
//
// Spawn must not run the task inline: Build relies on it returning promptly.
type IExecutor interface {
	// Spawn schedules task for asynchronous execution. The task runs until
	// the transport is closed.
	Spawn(task func())
}

// ExecutorFunc adapts a plain function to the IExecutor interface.
type ExecutorFunc func(task func())

func (f ExecutorFunc) Spawn(task func()) {
	f(task)
}
