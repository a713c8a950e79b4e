package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategoryInput = errors.New("invalid category input")
	ErrInvalidServiceInput  = errors.New("invalid service input")
	ErrPriceBelowBase       = errors.New("service price below category base price")
	ErrDurationBelowMin     = errors.New("service duration below category minimum")
	ErrServiceNotApproved   = errors.New("service is not approved or is blocked")
)

// ICatalogUseCase owns categories (admin) and services (provider), plus
// provider/customer registration.

type ICatalogUseCase interface {
	CreateCategory(ctx context.Context, adminID, name string, basePrice int64, minTimeHours, commissionRate, bookingRate, transactionRate int) (entities.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name string, basePrice int64, minTimeHours, commissionRate, bookingRate, transactionRate int) (entities.Category, error)
	GetCategory(ctx context.Context, categoryID string) (entities.Category, error)

	RegisterProvider(ctx context.Context, categoryID, name string) (entities.Provider, error)
	RegisterCustomer(ctx context.Context, name, email string) (entities.Customer, error)

	CreateService(ctx context.Context, providerID, name, description string, price int64, durationHours int) (entities.Service, error)
	ActivateService(ctx context.Context, providerID, serviceID string) (entities.Service, error)
	DeactivateService(ctx context.Context, providerID, serviceID string) (entities.Service, error)
	ListProviderServices(ctx context.Context, providerID string) ([]entities.Service, error)
}

type CatalogUseCase struct {
	categoryRepo interfaces.ICategoryRepository
	providerRepo interfaces.IProviderRepository
	serviceRepo  interfaces.IServiceRepository
	customerRepo interfaces.ICustomerRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(categoryRepo interfaces.ICategoryRepository, providerRepo interfaces.IProviderRepository, serviceRepo interfaces.IServiceRepository, customerRepo interfaces.ICustomerRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, providerRepo: providerRepo, serviceRepo: serviceRepo, customerRepo: customerRepo}
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, adminID, name string, basePrice int64, minTimeHours, commissionRate, bookingRate, transactionRate int) (entities.Category, error) {
	adminID = strings.TrimSpace(adminID)
	name = strings.TrimSpace(name)
	if adminID == "" || name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}
	if err := validateCategoryNumbers(basePrice, minTimeHours, commissionRate, bookingRate, transactionRate); err != nil {
		return entities.Category{}, err
	}

	now := time.Now().UTC()
	c := entities.Category{
		ID:              uuid.NewString(),
		AdminID:         adminID,
		Name:            name,
		BasePrice:       basePrice,
		MinTimeHours:    minTimeHours,
		CommissionRate:  commissionRate,
		BookingRate:     bookingRate,
		TransactionRate: transactionRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.categoryRepo.Create(ctx, c)
}

// UpdateCategory changes the rate configuration. Payments already created
// keep their frozen fees; only future confirmations see the new rates.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, categoryID, name string, basePrice int64, minTimeHours, commissionRate, bookingRate, transactionRate int) (entities.Category, error) {
	categoryID = strings.TrimSpace(categoryID)
	name = strings.TrimSpace(name)
	if categoryID == "" || name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}
	if err := validateCategoryNumbers(basePrice, minTimeHours, commissionRate, bookingRate, transactionRate); err != nil {
		return entities.Category{}, err
	}

	c, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}

	c.Name = name
	c.BasePrice = basePrice
	c.MinTimeHours = minTimeHours
	c.CommissionRate = commissionRate
	c.BookingRate = bookingRate
	c.TransactionRate = transactionRate
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.categoryRepo.Update(ctx, c)
	if err != nil {
		return entities.Category{}, err
	}
	log.Printf("[catalog][usecase] category updated category_id=%s commission=%d booking=%d transaction=%d", c.ID, commissionRate, bookingRate, transactionRate)
	return updated, nil
}

func (u *CatalogUseCase) GetCategory(ctx context.Context, categoryID string) (entities.Category, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}

	c, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// RegisterProvider creates an unapproved provider in the given category;
// the admin approves it before any of its services become bookable.
func (u *CatalogUseCase) RegisterProvider(ctx context.Context, categoryID, name string) (entities.Provider, error) {
	categoryID = strings.TrimSpace(categoryID)
	name = strings.TrimSpace(name)
	if categoryID == "" || name == "" {
		return entities.Provider{}, ErrInvalidServiceInput
	}

	cat, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return entities.Provider{}, err
	}
	if cat.ID == "" {
		return entities.Provider{}, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	p := entities.Provider{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.providerRepo.Create(ctx, p)
}

func (u *CatalogUseCase) RegisterCustomer(ctx context.Context, name, email string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrInvalidActorID
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.customerRepo.Create(ctx, c)
}

// CreateService registers a new (unapproved, inactive) service. Price must
// be at or above the category base price and duration at or above the
// category minimum.
func (u *CatalogUseCase) CreateService(ctx context.Context, providerID, name, description string, price int64, durationHours int) (entities.Service, error) {
	providerID = strings.TrimSpace(providerID)
	name = strings.TrimSpace(name)
	if providerID == "" || name == "" || price <= 0 || durationHours < 1 {
		return entities.Service{}, ErrInvalidServiceInput
	}

	prov, err := u.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return entities.Service{}, err
	}
	if prov.ID == "" {
		return entities.Service{}, ErrProviderNotFound
	}

	cat, err := u.categoryRepo.GetByID(ctx, prov.CategoryID)
	if err != nil {
		return entities.Service{}, err
	}
	if cat.ID == "" {
		return entities.Service{}, ErrCategoryNotFound
	}
	if price < cat.BasePrice {
		return entities.Service{}, ErrPriceBelowBase
	}
	if durationHours < cat.MinTimeHours {
		return entities.Service{}, ErrDurationBelowMin
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:            uuid.NewString(),
		ProviderID:    providerID,
		Name:          name,
		Description:   strings.TrimSpace(description),
		Price:         price,
		DurationHours: durationHours,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.serviceRepo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	log.Printf("[catalog][usecase] service created service_id=%s provider_id=%s price=%d duration=%d", created.ID, providerID, price, durationHours)
	return created, nil
}

// ActivateService is the provider's toggle; it requires the service to be
// approved and unblocked, keeping the is_active invariant.
func (u *CatalogUseCase) ActivateService(ctx context.Context, providerID, serviceID string) (entities.Service, error) {
	svc, err := u.ownedService(ctx, providerID, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if !svc.IsApproved || svc.IsBlocked {
		return entities.Service{}, ErrServiceNotApproved
	}
	if svc.IsActive {
		return svc, nil
	}
	return u.serviceRepo.SetActive(ctx, svc.ID, true)
}

func (u *CatalogUseCase) DeactivateService(ctx context.Context, providerID, serviceID string) (entities.Service, error) {
	svc, err := u.ownedService(ctx, providerID, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if !svc.IsActive {
		return svc, nil
	}
	return u.serviceRepo.SetActive(ctx, svc.ID, false)
}

func (u *CatalogUseCase) ListProviderServices(ctx context.Context, providerID string) ([]entities.Service, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidActorID
	}
	return u.serviceRepo.ListByProviderID(ctx, providerID)
}

func (u *CatalogUseCase) ownedService(ctx context.Context, providerID, serviceID string) (entities.Service, error) {
	providerID = strings.TrimSpace(providerID)
	serviceID = strings.TrimSpace(serviceID)
	if providerID == "" {
		return entities.Service{}, ErrInvalidActorID
	}
	if serviceID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	if svc.ProviderID != providerID {
		return entities.Service{}, ErrNotOwner
	}
	return svc, nil
}

func validateCategoryNumbers(basePrice int64, minTimeHours, commissionRate, bookingRate, transactionRate int) error {
	if basePrice <= 0 || minTimeHours < 1 {
		return ErrInvalidCategoryInput
	}
	for _, rate := range []int{commissionRate, bookingRate, transactionRate} {
		if rate < 0 || rate > 100 {
			return ErrInvalidCategoryInput
		}
	}
	return nil
}
