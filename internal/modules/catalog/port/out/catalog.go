package out

import (
	"context"

	"tempo/internal/modules/catalog/domain"
)

type ActivityStore interface {
	Upsert(ctx context.Context, activity domain.Activity) error
	FindByID(ctx context.Context, id string) (domain.Activity, error)
	ListByDay(ctx context.Context, day string) ([]domain.Activity, error)
}
