package service

import (
	"errors"
	"fmt"
	"testing"

	"photosync/internal/storage"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "name",
				Message: "cannot be empty",
			},
			want: "validation error on field name: cannot be empty",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "failed to list photos",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("database is locked"),
			msg:     "failed to list photos",
			wantNil: false,
			wantMsg: "failed to list photos: database is locked",
		},
		{
			name:    "empty message",
			err:     errors.New("database is locked"),
			msg:     "",
			wantNil: false,
			wantMsg: ": database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Errorf("WrapError() = nil, want error")
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			// Verify error wrapping
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap database is locked")
			}
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	var err error = &ValidationError{Field: "name", Message: "cannot be empty"}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("ValidationError should not match ErrNotFound")
	}
}

func TestMapStoreError(t *testing.T) {
	other := errors.New("disk full")

	tests := []struct {
		name   string
		err    error
		want   error
		wantNl bool
	}{
		{name: "nil", err: nil, wantNl: true},
		{name: "not found", err: storage.ErrNotFound, want: ErrNotFound},
		{name: "wrapped not found", err: fmt.Errorf("query: %w", storage.ErrNotFound), want: ErrNotFound},
		{name: "conflict", err: storage.ErrConflict, want: ErrConflict},
		{name: "other", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStoreError(tt.err, "failed to get album")
			if tt.wantNl {
				if got != nil {
					t.Errorf("mapStoreError() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("mapStoreError() = %v, want %v", got, tt.want)
			}
		})
	}
}
