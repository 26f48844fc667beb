package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/amagicom/jsonrpc-client-go/lib/async"
	"github.com/amagicom/jsonrpc-client-go/rpc/common"
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientBuilder is the strategy that produces the one HTTP client the
// dispatch loop will own. It is invoked exactly once per transport, from
// whichever goroutine ends up driving the dispatch loop.
type IClientBuilder interface {
	// Build returns a configured client, or the error that makes
	// construction of the whole transport fail.
	Build() (*nethttp.Client, error)
}

// ClientBuilderFunc adapts a plain function to the IClientBuilder interface.
type ClientBuilderFunc func() (*nethttp.Client, error)

func (f ClientBuilderFunc) Build() (*nethttp.Client, error) {
	return f()
}

// defaultClientBuilder builds the stock pooled client from a ClientConfig
type defaultClientBuilder struct {
	config common.ClientConfig
}

func (b defaultClientBuilder) Build() (*nethttp.Client, error) {
	return &nethttp.Client{
		Transport: &nethttp.Transport{
			MaxIdleConns:        b.config.MaxIdleConns,
			MaxIdleConnsPerHost: b.config.MaxIdleConnsPerHost,
			IdleConnTimeout:     time.Duration(b.config.TimeoutSecond) * time.Second,
		},
	}, nil
}

// NewDefaultClientBuilder returns the stock client builder with the given
// configuration. This is what the builder starts out with (using
// common.DefaultClientConfig) when Client is never called.
func NewDefaultClientBuilder(config common.ClientConfig) IClientBuilder {
	return defaultClientBuilder{config: config}
}

// --------------------------------------------------------------------------
// Transport Builder
// --------------------------------------------------------------------------

// HttpTransportBuilder assembles an HttpTransport. Zero or more
// configuration calls followed by Build:
//
//	transport, err := http.NewHttpTransportBuilder().Build()
//
// runs the dispatch loop on a private background goroutine, while
//
//	transport, err := http.NewHttpTransportBuilder().Executor(exec).Build()
//
// schedules it on an execution context the embedder already owns.
type HttpTransportBuilder struct {
	clientBuilder IClientBuilder
	executor      IExecutor
}

// NewHttpTransportBuilder returns a builder preconfigured with the default
// client builder and no executor (standalone mode).
func NewHttpTransportBuilder() *HttpTransportBuilder {
	return &HttpTransportBuilder{
		clientBuilder: defaultClientBuilder{config: common.DefaultClientConfig()},
	}
}

// Client changes how the HTTP client is created. It returns a new builder
// carrying over the remaining configuration.
func (b *HttpTransportBuilder) Client(builder IClientBuilder) *HttpTransportBuilder {
	return &HttpTransportBuilder{
		clientBuilder: builder,
		executor:      b.executor,
	}
}

// Executor sets the execution context the dispatch loop is scheduled on.
// If this method is not called, Build spawns a dedicated background
// goroutine instead. The goroutine (or the scheduled task) runs for as long
// as the transport is open.
func (b *HttpTransportBuilder) Executor(executor IExecutor) *HttpTransportBuilder {
	b.executor = executor
	return b
}

// Build assembles the transport. With an executor it neither blocks nor
// spawns; without one it blocks only until the background goroutine reports
// that construction succeeded or failed.
func (b *HttpTransportBuilder) Build() (*HttpTransport, error) {
	if b.executor != nil {
		return b.buildEmbedded()
	}
	return b.buildStandalone()
}

// buildEmbedded constructs the client synchronously and hands the dispatch
// loop to the caller-supplied executor.
func (b *HttpTransportBuilder) buildEmbedded() (*HttpTransport, error) {
	client, err := b.clientBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientBuilder, err)
	}

	queue := async.NewQueue[pendingRequest]()
	b.executor.Spawn(func() {
		processRequests(queue, client)
	})

	return newHttpTransport(queue), nil
}

// buildStandalone spawns the one background goroutine that builds the
// client, reports the outcome back, and then drives the dispatch loop until
// the transport is closed.
func (b *HttpTransportBuilder) buildStandalone() (*HttpTransport, error) {
	clientBuilder := b.clientBuilder
	resultTx, resultRx := async.NewOneshot[standaloneResult]()

	go func() {
		// if anything below panics before Send, the Drop tells the waiting
		// Build that the executor is gone
		defer resultTx.Drop()

		client, err := clientBuilder.Build()
		if err != nil {
			resultTx.Send(standaloneResult{err: fmt.Errorf("%w: %v", ErrClientBuilder, err)})
			return
		}

		queue := async.NewQueue[pendingRequest]()
		resultTx.Send(standaloneResult{transport: newHttpTransport(queue)})

		processRequests(queue, client)
		Logger.Debugf("Standalone HttpTransport goroutine exiting")
	}()

	result, err := resultRx.Recv(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutor, err)
	}
	return result.transport, result.err
}

// standaloneResult is the handoff from the background goroutine to Build
type standaloneResult struct {
	transport *HttpTransport
	err       error
}
