package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBridge_Call(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>ok</html>"))
		case "/binary":
			w.Write([]byte{0x50, 0x4b, 0x03, 0x04, 0x00})
		case "/missing":
			http.Error(w, "no such package", http.StatusNotFound)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	b := NewBridge()

	t.Run("success", func(t *testing.T) {
		res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL + "/page"})
		if !res.OK {
			t.Fatalf("expected ok result, got error %q", res.Error)
		}
		if res.Status != http.StatusOK {
			t.Errorf("Status = %d, want 200", res.Status)
		}
		if string(res.Body) != "<html>ok</html>" {
			t.Errorf("Body = %q", res.Body)
		}
		if res.Headers["Content-Type"] != "text/html" {
			t.Errorf("Content-Type = %q", res.Headers["Content-Type"])
		}
	})

	t.Run("binaryBodyLossless", func(t *testing.T) {
		res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL + "/binary"})
		if !res.OK {
			t.Fatalf("expected ok result, got error %q", res.Error)
		}
		want := []byte{0x50, 0x4b, 0x03, 0x04, 0x00}
		if !bytes.Equal(res.Body, want) {
			t.Errorf("Body = %v, want %v", res.Body, want)
		}
	})

	t.Run("httpFailure", func(t *testing.T) {
		res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL + "/missing"})
		if res.OK {
			t.Fatal("expected failed result")
		}
		if res.Status != http.StatusNotFound {
			t.Errorf("Status = %d, want 404", res.Status)
		}
		if !strings.Contains(res.Error, "no such package") {
			t.Errorf("Error = %q, want body text", res.Error)
		}
	})

	t.Run("connectionFailure", func(t *testing.T) {
		res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: "http://127.0.0.1:1/unreachable"})
		if res.OK {
			t.Fatal("expected failed result")
		}
		if res.Error == "" {
			t.Error("expected non-empty error message")
		}
	})

	t.Run("unknownOperation", func(t *testing.T) {
		res := b.Call(context.Background(), "dom.query", Payload{})
		if res.OK {
			t.Fatal("expected failed result")
		}
		if res.Error != "unknown call: dom.query" {
			t.Errorf("Error = %q", res.Error)
		}
	})
}

func TestBridge_CallJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if body["name"] != "requests" {
			t.Errorf("body name = %q", body["name"])
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	b := NewBridge()
	res := b.Call(context.Background(), OpRequest, Payload{
		Method: "POST",
		URL:    server.URL,
		JSON:   map[string]string{"name": "requests"},
	})
	if !res.OK {
		t.Fatalf("expected ok result, got error %q", res.Error)
	}
}

func TestBridge_CallJSONLeavesCallerHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if r.Header.Get("X-Batch") != "abc" {
			t.Errorf("X-Batch = %q, want abc", r.Header.Get("X-Batch"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	headers := map[string]string{"X-Batch": "abc"}
	b := NewBridge()
	res := b.Call(context.Background(), OpRequest, Payload{
		Method:  "POST",
		URL:     server.URL,
		Headers: headers,
		JSON:    map[string]string{"name": "requests"},
	})
	if !res.OK {
		t.Fatalf("expected ok result, got error %q", res.Error)
	}

	// The payload's map belongs to the caller and must not gain the
	// defaulted Content-Type.
	if len(headers) != 1 || headers["X-Batch"] != "abc" {
		t.Errorf("caller headers mutated: %v", headers)
	}
}

func TestBridge_CallAsync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("async body"))
	}))
	defer server.Close()

	b := NewBridge()
	ch := b.CallAsync(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL})

	res, ok := <-ch
	if !ok {
		t.Fatal("channel closed without a result")
	}
	if !res.OK || string(res.Body) != "async body" {
		t.Errorf("res = %+v", res)
	}
	if _, open := <-ch; open {
		t.Error("channel should be closed after one result")
	}
}

func TestBridge_RetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	b := NewBridge()
	b.Retries = 2
	b.retryDelay = time.Millisecond
	res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL})
	if !res.OK {
		t.Fatalf("expected ok after retry, got error %q", res.Error)
	}
	if calls != 2 {
		t.Errorf("got %d calls, want 2", calls)
	}
}

func TestBridge_NoRetryByDefault(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	b := NewBridge()
	res := b.Call(context.Background(), OpRequest, Payload{Method: "GET", URL: server.URL})
	if res.OK {
		t.Fatal("expected failed result")
	}
	if res.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", res.Status)
	}
	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}
