package transport

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skycastapp/locsync/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.FailureCode
	}{
		{name: "nil error", err: nil, want: models.FailureUnknown},
		{name: "conflict", err: ErrConflict, want: models.FailureConflict},
		{name: "zone missing", err: ErrZoneMissing, want: models.FailureZoneMissing},
		{name: "unknown record", err: ErrUnknownRecord, want: models.FailureUnknownRecord},
		{name: "network unavailable", err: ErrNetworkUnavailable, want: models.FailureNetworkUnavailable},
		{name: "zone busy", err: ErrZoneBusy, want: models.FailureZoneBusy},
		{name: "service unavailable", err: ErrServiceUnavailable, want: models.FailureServiceUnavailable},
		{name: "not authenticated", err: ErrNotAuthenticated, want: models.FailureNotAuthenticated},
		{name: "context canceled", err: context.Canceled, want: models.FailureCancelled},
		{name: "context deadline", err: context.DeadlineExceeded, want: models.FailureCancelled},
		{name: "wrapped sentinel", err: fmt.Errorf("save failed: %w", ErrConflict), want: models.FailureConflict},
		{name: "unrecognized error", err: errors.New("boom"), want: models.FailureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
