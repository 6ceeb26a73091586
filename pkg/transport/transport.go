// Package transport defines the request-dispatch contract between the
// wheelhouse pipeline and its host environment.
//
// The pipeline never talks to the network directly. Every request goes
// through a [Caller]: a narrow, operation-name based bridge that the host
// provides. The CLI injects [Bridge] (a net/http implementation); tests
// inject stand-ins. The Caller is passed into clients at construction time;
// there is no process-wide mutable default.
//
// Payload bodies and result bodies are raw bytes. Wheels are binary, and a
// text-typed body would corrupt them, so the contract carries []byte
// end-to-end.
package transport

import (
	"context"
	"time"
)

// OpRequest is the operation name for HTTP requests dispatched through a Caller.
const OpRequest = "net.request"

// Payload describes one request handed to the transport collaborator.
type Payload struct {
	Method  string            // HTTP method, upper-case
	URL     string            // absolute URL
	Headers map[string]string // request headers (may be nil)
	Body    []byte            // raw request body (may be nil)
	JSON    any               // JSON body; marshaled by the collaborator, overrides Body
	Timeout time.Duration     // per-request deadline; 0 means the collaborator's default
}

// Result is the outcome of one dispatched request.
//
// OK is true only for a successful response. On failure Error carries the
// transport-reported message and, for HTTP-level failures, Status carries
// the response code.
type Result struct {
	OK      bool
	Status  int
	Headers map[string]string
	Body    []byte
	Error   string
}

// Caller dispatches named operations to the host environment.
//
// Call blocks until the collaborator returns. CallAsync returns immediately
// with a channel that yields exactly one Result and is then closed; the
// resolver itself only exercises the synchronous path.
//
// Implementations must not panic on unknown operation names; they return a
// Result with OK false and Error set.
type Caller interface {
	Call(ctx context.Context, op string, p Payload) Result
	CallAsync(ctx context.Context, op string, p Payload) <-chan Result
}
