package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("EVT_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("EVT_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewUnavailableError("DLV_9000", "transport failed", nil)),
			wantErr: NewUnavailableError("DLV_9000", "transport failed", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_ErrorIncludesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewUnavailableError("DLV_9000", "transport failed", cause)

	assert.Equal(t, "DLV_9000: transport failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, err.HttpStatusCode)
	assert.False(t, err.IsInternalError())
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "failed_precondition", NewFailedPreconditionError("DLV_1000", "no endpoint", nil).Category)
	assert.True(t, NewInternalErrorPanic(errors.New("p")).IsInternalError())
	assert.Equal(t, "SYS_9001", NewInternalErrorUndefined(nil).Code)
}
