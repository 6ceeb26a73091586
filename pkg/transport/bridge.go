package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/wheelhouse-py/wheelhouse/pkg/httputil"
)

const defaultTimeout = 10 * time.Second

// Bridge is the net/http implementation of [Caller].
//
// It stands in for the host environment's request gateway the same way a
// real deployment would provide one. Retry policy lives here, on the
// collaborator side of the contract: the resolver stages never retry, so
// Retries controls the only retry loop in the process. Zero disables it.
type Bridge struct {
	Client  *http.Client
	Retries int // extra attempts for transient failures (connect errors, 5xx)

	retryDelay time.Duration // initial backoff, overridable in tests
}

// NewBridge creates a Bridge with a standard timeout and no retries.
func NewBridge() *Bridge {
	return &Bridge{Client: &http.Client{Timeout: defaultTimeout}}
}

// Call dispatches op synchronously. Only [OpRequest] is understood; any
// other operation name yields a failed Result.
func (b *Bridge) Call(ctx context.Context, op string, p Payload) Result {
	if op != OpRequest {
		return Result{Error: fmt.Sprintf("unknown call: %s", op)}
	}

	delay := b.retryDelay
	if delay == 0 {
		delay = time.Second
	}

	var res Result
	err := httputil.Retry(ctx, b.Retries+1, delay, func() error {
		r, err := b.request(ctx, p)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		failed := Result{Error: err.Error()}
		var he *httpError
		if errors.As(err, &he) {
			failed.Status = he.status
			failed.Error = string(he.body)
		}
		return failed
	}
	return res
}

// CallAsync dispatches op on a new goroutine. The returned channel yields
// exactly one Result and is then closed.
func (b *Bridge) CallAsync(ctx context.Context, op string, p Payload) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- b.Call(ctx, op, p)
	}()
	return ch
}

func (b *Bridge) request(ctx context.Context, p Payload) (Result, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	method := p.Method
	if method == "" {
		method = http.MethodGet
	}

	body := p.Body
	headers := p.Headers
	if p.JSON != nil {
		data, err := json.Marshal(p.JSON)
		if err != nil {
			return Result{}, fmt.Errorf("marshal json body: %w", err)
		}
		body = data
		// Copy before defaulting Content-Type; the payload's map belongs
		// to the caller.
		merged := make(map[string]string, len(headers)+1)
		maps.Copy(merged, headers)
		if _, ok := merged["Content-Type"]; !ok {
			merged["Content-Type"] = "application/json"
		}
		headers = merged
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.URL, reader)
	if err != nil {
		return Result{}, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		// Connection-level failures are transient; let Retry decide.
		return Result{}, &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &httputil.RetryableError{Err: err}
	}

	respHeaders := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		respHeaders[k] = resp.Header.Get(k)
	}

	if resp.StatusCode >= 500 {
		return Result{}, &httputil.RetryableError{
			Err: &httpError{status: resp.StatusCode, body: raw},
		}
	}
	if resp.StatusCode >= 400 {
		return Result{Status: resp.StatusCode, Error: string(raw)}, nil
	}

	return Result{
		OK:      true,
		Status:  resp.StatusCode,
		Headers: respHeaders,
		Body:    raw,
	}, nil
}

// httpError carries an HTTP failure through the retry loop so the final
// Result still reports the status code.
type httpError struct {
	status int
	body   []byte
}

func (e *httpError) Error() string {
	return fmt.Sprintf("status %d: %s", e.status, e.body)
}
