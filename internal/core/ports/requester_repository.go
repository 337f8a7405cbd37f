package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/requester"
)

type RequesterRepository interface {
	Add(ctx context.Context, aggregate *requester.Requester) error
	Get(ctx context.Context, id int64) (*requester.Requester, error)
	UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error
	ListActiveIDs(ctx context.Context) ([]int64, error)
}
