package interfaces

import (
	"context"
	"time"

	"servease/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for Category.

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
}

// IProviderRepository abstracts DynamoDB persistence for Provider.
//
// UpdateModeration persists the admin flag flips; approvedAt is written only
// when non-nil so the first-approval timestamp is never overwritten.

type IProviderRepository interface {
	Create(ctx context.Context, p entities.Provider) (entities.Provider, error)
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	UpdateModeration(ctx context.Context, id string, isApproved, isBlocked bool, approvedAt *time.Time) (entities.Provider, error)
}

// IServiceRepository abstracts DynamoDB persistence for Service.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Service, error)
	UpdateModeration(ctx context.Context, id string, isApproved, isBlocked, isActive bool, approvedAt *time.Time) (entities.Service, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Service, error)
}

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	SetBlocked(ctx context.Context, id string, blocked bool) (entities.Customer, error)
}
