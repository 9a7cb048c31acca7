package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "dataset not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "dataset not found" {
		t.Errorf("expected message 'dataset not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeInvalidArgument, "root %q must be absolute", "rel/path")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidArgument, err.Code)
	}
	want := `root "rel/path" must be absolute`
	if err.Message != want {
		t.Errorf("expected message %q, got %q", want, err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestNewWithContext(t *testing.T) {
	ctx := map[string]any{
		"root": "/data/sets/sample",
		"dir":  "rspt/Jij",
	}

	err := NewWithContext(ErrCodeNotFound, "directory listing failed", ctx)

	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["dir"] != "rspt/Jij" {
		t.Errorf("expected dir to be rspt/Jij")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeRootMismatch, "results have different roots"),
			expected: "[ROOT_MISMATCH] results have different roots",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeNotFound, "cannot list directory", errors.New("permission denied")),
			expected: "[NOT_FOUND] cannot list directory: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeUnknownLabel, "label not in vocabulary")
	if !IsCode(err, ErrCodeUnknownLabel) {
		t.Error("expected IsCode to match")
	}
	if IsCode(err, ErrCodeNotFound) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(errors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeUnavailable, "service down")); got != ErrCodeUnavailable {
		t.Errorf("expected %s, got %s", ErrCodeUnavailable, got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
}
