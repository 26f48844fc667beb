package http

import (
	"fmt"
	"io"
	nethttp "net/http"
	"sync"

	"github.com/amagicom/jsonrpc-client-go/lib/async"
)

// processRequests is the dispatch loop: the single point of contact with
// the HTTP client. It drains the queue until the transport is closed,
// giving every request its own goroutine so one slow exchange never holds
// back the next. It returns after all in-flight exchanges resolved.
func processRequests(queue *async.Queue[pendingRequest], client *nethttp.Client) {
	var inflight sync.WaitGroup

	for pending := range queue.Recv() {
		inflight.Add(1)
		inflightRequests.Inc()

		go func(pending pendingRequest) {
			defer inflight.Done()
			defer inflightRequests.Dec()
			defer func() {
				// a panicking client (the embedder supplies it) must not
				// take the process down or leave the caller hanging; the
				// Drop is a no-op when the result was already delivered
				if r := recover(); r != nil {
					Logger.Errorf("Request handler panicked: %v", r)
				}
				pending.respTx.Drop()
			}()

			if !pending.respTx.Send(executeRequest(client, pending.request)) {
				// the caller abandoned the slot, nobody is left to tell
				droppedResponsesTotal.Inc()
				Logger.Warningf("Unable to send response back to caller")
			}
		}(pending)
	}

	inflight.Wait()
	Logger.Debugf("Request processing loop finished")
}

// executeRequest performs one HTTP exchange and accumulates the full
// response body.
func executeRequest(client *nethttp.Client, request *nethttp.Request) Response {
	requestsTotal.Inc()

	response, err := client.Do(request)
	if err != nil {
		return Response{Err: fmt.Errorf("sending http request: %w", err)}
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			Logger.Errorf("Failed to close response body: %v", err)
		}
	}()

	if response.StatusCode != nethttp.StatusOK {
		httpErrorsTotal.Inc()
		return Response{Err: &HttpError{Code: response.StatusCode}}
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return Response{Err: fmt.Errorf("reading response body: %w", err)}
	}

	return Response{Data: data}
}
