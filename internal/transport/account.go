package transport

import (
	"context"

	"github.com/skycastapp/locsync/models"
)

// StaticAccountProvider reports a fixed account status. Useful in tests and
// for running the client without a remote account backend.
type StaticAccountProvider struct {
	status models.AccountStatus
}

func NewStaticAccountProvider(status models.AccountStatus) *StaticAccountProvider {
	return &StaticAccountProvider{status: status}
}

func (p *StaticAccountProvider) Status(ctx context.Context) (models.AccountStatus, error) {
	return p.status, nil
}
