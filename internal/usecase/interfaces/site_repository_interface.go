package interfaces

import (
	"context"

	"sitebill/internal/domain/entities"
)

// ISiteRepository abstracts DynamoDB persistence for Site.

type ISiteRepository interface {
	Create(ctx context.Context, s entities.Site) (entities.Site, error)
	GetByID(ctx context.Context, id string) (entities.Site, error)
	FirstByUserID(ctx context.Context, userID string) (entities.Site, error)
	List(ctx context.Context) ([]entities.Site, error)
	UpdateStatus(ctx context.Context, id string, status entities.SiteStatus) (entities.Site, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
