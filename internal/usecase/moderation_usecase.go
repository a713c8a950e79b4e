package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidActorID   = errors.New("invalid actor id")
)

// IModerationUseCase owns the admin approval/block flags for providers,
// services and customers, and exposes the bookable predicate the booking
// core gates on.
//
// Flag semantics, per the moderation rules:
//   - approval is granted once; approved_at is stamped on the first approval
//     and survives later blocks
//   - the approve action on a blocked actor unblocks instead of re-approving
//   - unblock never grants approval

type IModerationUseCase interface {
	interfaces.IModerationRegistry

	ApproveProvider(ctx context.Context, providerID string) (entities.Provider, error)
	BlockProvider(ctx context.Context, providerID string) (entities.Provider, error)
	UnblockProvider(ctx context.Context, providerID string) (entities.Provider, error)

	ApproveService(ctx context.Context, serviceID string) (entities.Service, error)
	BlockService(ctx context.Context, serviceID string) (entities.Service, error)
	UnblockService(ctx context.Context, serviceID string) (entities.Service, error)

	BlockCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	UnblockCustomer(ctx context.Context, customerID string) (entities.Customer, error)
}

type ModerationUseCase struct {
	providerRepo interfaces.IProviderRepository
	serviceRepo  interfaces.IServiceRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IModerationUseCase = (*ModerationUseCase)(nil)

func NewModerationUseCase(providerRepo interfaces.IProviderRepository, serviceRepo interfaces.IServiceRepository, customerRepo interfaces.ICustomerRepository) *ModerationUseCase {
	return &ModerationUseCase{providerRepo: providerRepo, serviceRepo: serviceRepo, customerRepo: customerRepo}
}

// IsBookable evaluates the full moderation gate against live state.
func (u *ModerationUseCase) IsBookable(ctx context.Context, serviceID string) (bool, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return false, ErrServiceNotFound
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return false, err
	}
	if svc.ID == "" {
		return false, ErrServiceNotFound
	}

	prov, err := u.providerRepo.GetByID(ctx, svc.ProviderID)
	if err != nil {
		return false, err
	}
	if prov.ID == "" {
		return false, ErrProviderNotFound
	}

	return svc.Bookable(prov), nil
}

func (u *ModerationUseCase) ApproveProvider(ctx context.Context, providerID string) (entities.Provider, error) {
	prov, err := u.getProvider(ctx, providerID)
	if err != nil {
		return entities.Provider{}, err
	}

	switch {
	case !prov.IsApproved && !prov.IsBlocked && prov.ApprovedAt == nil:
		now := time.Now().UTC()
		return u.providerRepo.UpdateModeration(ctx, prov.ID, true, false, &now)
	case prov.IsBlocked:
		return u.providerRepo.UpdateModeration(ctx, prov.ID, prov.IsApproved, false, nil)
	default:
		return prov, nil
	}
}

func (u *ModerationUseCase) BlockProvider(ctx context.Context, providerID string) (entities.Provider, error) {
	prov, err := u.getProvider(ctx, providerID)
	if err != nil {
		return entities.Provider{}, err
	}
	if prov.IsBlocked {
		return prov, nil
	}
	// Blocking never clears is_approved; an unblock restores the provider.
	log.Printf("[moderation][usecase] blocking provider provider_id=%s", prov.ID)
	return u.providerRepo.UpdateModeration(ctx, prov.ID, prov.IsApproved, true, nil)
}

func (u *ModerationUseCase) UnblockProvider(ctx context.Context, providerID string) (entities.Provider, error) {
	prov, err := u.getProvider(ctx, providerID)
	if err != nil {
		return entities.Provider{}, err
	}
	if !prov.IsBlocked {
		return prov, nil
	}
	return u.providerRepo.UpdateModeration(ctx, prov.ID, prov.IsApproved, false, nil)
}

func (u *ModerationUseCase) ApproveService(ctx context.Context, serviceID string) (entities.Service, error) {
	svc, err := u.getService(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}

	switch {
	case !svc.IsApproved && !svc.IsBlocked && svc.ApprovedAt == nil:
		// First approval also activates the service so providers do not need
		// a second toggle to go live.
		now := time.Now().UTC()
		return u.serviceRepo.UpdateModeration(ctx, svc.ID, true, false, true, &now)
	case svc.IsBlocked:
		return u.serviceRepo.UpdateModeration(ctx, svc.ID, svc.IsApproved, false, svc.IsActive, nil)
	default:
		return svc, nil
	}
}

func (u *ModerationUseCase) BlockService(ctx context.Context, serviceID string) (entities.Service, error) {
	svc, err := u.getService(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.IsBlocked {
		return svc, nil
	}
	log.Printf("[moderation][usecase] blocking service service_id=%s", svc.ID)
	return u.serviceRepo.UpdateModeration(ctx, svc.ID, svc.IsApproved, true, svc.IsActive, nil)
}

func (u *ModerationUseCase) UnblockService(ctx context.Context, serviceID string) (entities.Service, error) {
	svc, err := u.getService(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if !svc.IsBlocked {
		return svc, nil
	}
	return u.serviceRepo.UpdateModeration(ctx, svc.ID, svc.IsApproved, false, svc.IsActive, nil)
}

func (u *ModerationUseCase) BlockCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	return u.setCustomerBlocked(ctx, customerID, true)
}

func (u *ModerationUseCase) UnblockCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	return u.setCustomerBlocked(ctx, customerID, false)
}

func (u *ModerationUseCase) setCustomerBlocked(ctx context.Context, customerID string, blocked bool) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidActorID
	}

	cust, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if cust.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	if cust.IsBlocked == blocked {
		return cust, nil
	}
	return u.customerRepo.SetBlocked(ctx, cust.ID, blocked)
}

func (u *ModerationUseCase) getProvider(ctx context.Context, providerID string) (entities.Provider, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Provider{}, ErrInvalidActorID
	}

	prov, err := u.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return entities.Provider{}, err
	}
	if prov.ID == "" {
		return entities.Provider{}, ErrProviderNotFound
	}
	return prov, nil
}

func (u *ModerationUseCase) getService(ctx context.Context, serviceID string) (entities.Service, error) {
	serviceID = strings.TrimSpace(serviceID)
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
	return svc, nil
}
