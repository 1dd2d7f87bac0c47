// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/recordflow/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "loop_limit_error",
			code:    errors.ErrLoopLimitExceeded,
			message: "loop count 3 exceeds maximum of 2",
			wantStr: "[LOOP_LIMIT_EXCEEDED] loop count 3 exceeds maximum of 2",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := errors.Wrap(cause, errors.ErrCallbackFailed, "callback failed")

	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should preserve the cause for errors.Is")
	}

	if got := err.Error(); got != "[CALLBACK_FAILED] callback failed: underlying failure" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrCallbackFailed, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "bad value %q", "x")

	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse) {
		t.Error("IsErrorCode() should be false for non-FlowError errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrCallbackPanic, "boom")); got != errors.ErrCallbackPanic {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrCallbackPanic)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCallbackFailed, "failed").
		WithDetail("entity", "Opportunity").
		WithDetail("phase", "after-update")

	details := errors.GetErrorDetails(err)
	if details["entity"] != "Opportunity" || details["phase"] != "after-update" {
		t.Errorf("GetErrorDetails() = %v", details)
	}
}
