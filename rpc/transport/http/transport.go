package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
	"sync/atomic"

	"github.com/amagicom/jsonrpc-client-go/lib/async"
	"github.com/amagicom/jsonrpc-client-go/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/http")

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// Response contains the result of a single request/response exchange.
// Exactly one of Data and Err is meaningful.
type Response struct {
	Data []byte
	Err  error
}

// pendingRequest pairs a ready-to-send HTTP request with the slot its
// result must be delivered into. Created by a handle's send path, consumed
// exactly once by the dispatch side.
type pendingRequest struct {
	request *nethttp.Request
	respTx  *async.Sender[Response]
}

// --------------------------------------------------------------------------
// Transport core
// --------------------------------------------------------------------------

// HttpTransport is the shared dispatching core. All handles derived from it
// submit into the same queue and draw call identifiers from the same
// counter. Create one via NewHttpTransportBuilder().Build().
type HttpTransport struct {
	queue  *async.Queue[pendingRequest]
	nextID atomic.Uint64
}

func newHttpTransport(queue *async.Queue[pendingRequest]) *HttpTransport {
	return &HttpTransport{queue: queue}
}

// Handle returns a handle to this transport bound to the given destination
// URL. The handle implements transport.IRPCTransport and is what the RPC
// call plumbing actually uses.
func (t *HttpTransport) Handle(uri string) (*HttpHandle, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid destination uri %q: %w", uri, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid destination uri %q: scheme must be http or https", uri)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid destination uri %q: missing host", uri)
	}

	return &HttpHandle{
		transport: t,
		url:       parsed,
	}, nil
}

// Close shuts the transport down: no further sends are accepted, requests
// already queued are still dispatched, and once they drain the dispatch
// loop ends (in standalone mode its goroutine exits). Close is idempotent.
func (t *HttpTransport) Close() {
	t.queue.Close()
}

// --------------------------------------------------------------------------
// Transport Handle
// --------------------------------------------------------------------------

// HttpHandle is a per-destination front-end to an HttpTransport. Handles are
// cheap and copyable; all handles of one transport share its queue and call
// identifier counter.
type HttpHandle struct {
	transport *HttpTransport
	url       *url.URL
}

var _ transport.IRPCTransport = (*HttpHandle)(nil)

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCTransport)
// --------------------------------------------------------------------------

func (h *HttpHandle) GetNextID() uint64 {
	return h.transport.nextID.Add(1)
}

func (h *HttpHandle) Send(ctx context.Context, payload []byte) ([]byte, error) {
	respRx := h.SendAsync(payload)

	resp, err := respRx.Recv(ctx)
	if err != nil {
		if errors.Is(err, async.ErrSenderDropped) {
			// the dispatch side accepted the request but exited before
			// resolving it
			return nil, ErrNoResponse
		}
		// ctx ended; the in-flight exchange is not cancelled, its result
		// is dropped by the dispatch side
		return nil, err
	}

	return resp.Data, resp.Err
}

// --------------------------------------------------------------------------
// Async send path
// --------------------------------------------------------------------------

// SendAsync submits the payload for dispatch and returns immediately. The
// returned receiver yields the outcome exactly once; callers that no longer
// care may simply Drop it, which does not cancel the in-flight exchange.
//
// Submission errors travel through the same receiver as every other
// outcome, so there is exactly one place to look for failure.
func (h *HttpHandle) SendAsync(payload []byte) *async.Receiver[Response] {
	respTx, respRx := async.NewOneshot[Response]()

	request, err := h.createRequest(payload)
	if err != nil {
		respTx.Send(Response{Err: err})
		return respRx
	}

	if !h.transport.queue.Push(pendingRequest{request: request, respTx: respTx}) {
		respTx.Send(Response{Err: ErrNotListening})
		return respRx
	}

	return respRx
}

// createRequest builds the fixed-shape POST request with JSON content type
// and the given body data.
func (h *HttpHandle) createRequest(payload []byte) (*nethttp.Request, error) {
	request, err := nethttp.NewRequest(nethttp.MethodPost, h.url.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.ContentLength = int64(len(payload))
	return request, nil
}
