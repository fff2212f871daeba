package archive

import (
	"errors"
	"fmt"
	"testing"
)

func TestBatchError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *BatchError
		want string
	}{
		{
			name: "put with failures",
			err: &BatchError{
				Op:    "put",
				Total: 5,
				Errors: map[string]error{
					"alice": ErrEmptyKey,
					"#3":    fmt.Errorf("some failure"),
				},
			},
			want: "batch put: 2 of 5 records failed",
		},
		{
			name: "all failed",
			err: &BatchError{
				Op:     "put",
				Total:  1,
				Errors: map[string]error{"bob": ErrNotFound},
			},
			want: "batch put: 1 of 1 records failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBatchError_Unwrap(t *testing.T) {
	err := fmt.Errorf("archive users: %w", &BatchError{
		Op:    "put",
		Total: 3,
		Errors: map[string]error{
			"#0":  fmt.Errorf("collection users: put: %w", ErrEmptyKey),
			"bob": errors.New("connection reset"),
		},
	})

	if !errors.Is(err, ErrEmptyKey) {
		t.Error("expected errors.Is to find ErrEmptyKey")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect ErrNotFound")
	}

	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatal("expected errors.As to find *BatchError")
	}
	if len(batch.Unwrap()) != 2 {
		t.Errorf("unwrap: got %d errors, want 2", len(batch.Unwrap()))
	}
}
