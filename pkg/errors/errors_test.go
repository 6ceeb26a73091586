package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "only exact pins supported: %q", "foo>=1")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != `only exact pins supported: "foo>=1"` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_FORMAT: only exact pins supported: "foo>=1"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeDownloadFailed, cause, "download failed: https://example.test/foo.whl")

	if err.Code != ErrCodeDownloadFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDownloadFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeArtifactNotFound, "test"),
			code:     ErrCodeArtifactNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeArtifactNotFound, "test"),
			code:     ErrCodeIndexFetch,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeIndexFetch, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeIndexFetch,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidArchive, "bad zip")); got != ErrCodeInvalidArchive {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidArchive)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeIndexFetch, "index fetch failed for requests")
	if got := UserMessage(err); got != "index fetch failed for requests" {
		t.Errorf("UserMessage() = %v", got)
	}
	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v", got)
	}
}
