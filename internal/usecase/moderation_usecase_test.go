package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servease/internal/domain/entities"
	mock_interfaces "servease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newModerationUseCaseForTest(t *testing.T) (*ModerationUseCase, *mock_interfaces.MockIProviderRepository, *mock_interfaces.MockIServiceRepository, *mock_interfaces.MockICustomerRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	providerRepo := mock_interfaces.NewMockIProviderRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	return NewModerationUseCase(providerRepo, serviceRepo, customerRepo), providerRepo, serviceRepo, customerRepo
}

func TestModerationUseCase_IsBookable(t *testing.T) {
	cases := []struct {
		name     string
		svc      entities.Service
		prov     entities.Provider
		bookable bool
	}{
		{
			name:     "all flags pass",
			svc:      entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsActive: true},
			prov:     entities.Provider{ID: "prov-1", IsApproved: true},
			bookable: true,
		},
		{
			name:     "service blocked",
			svc:      entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsBlocked: true, IsActive: true},
			prov:     entities.Provider{ID: "prov-1", IsApproved: true},
			bookable: false,
		},
		{
			name:     "service inactive",
			svc:      entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true},
			prov:     entities.Provider{ID: "prov-1", IsApproved: true},
			bookable: false,
		},
		{
			name:     "provider blocked",
			svc:      entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsActive: true},
			prov:     entities.Provider{ID: "prov-1", IsApproved: true, IsBlocked: true},
			bookable: false,
		},
		{
			name:     "provider never approved",
			svc:      entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsActive: true},
			prov:     entities.Provider{ID: "prov-1"},
			bookable: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, providerRepo, serviceRepo, _ := newModerationUseCaseForTest(t)
			serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(tc.svc, nil)
			providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(tc.prov, nil)

			got, err := uc.IsBookable(context.Background(), "svc-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.bookable {
				t.Fatalf("expected bookable=%v, got %v", tc.bookable, got)
			}
		})
	}

	t.Run("unknown service", func(t *testing.T) {
		uc, _, serviceRepo, _ := newModerationUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-x").Return(entities.Service{}, nil)

		_, err := uc.IsBookable(context.Background(), "svc-x")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestModerationUseCase_ApproveProvider(t *testing.T) {
	t.Run("first approval stamps approved_at", func(t *testing.T) {
		uc, providerRepo, _, _ := newModerationUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.Provider{ID: "prov-1"}, nil)
		providerRepo.EXPECT().UpdateModeration(gomock.Any(), "prov-1", true, false, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, id string, approved, blocked bool, at *time.Time) (entities.Provider, error) {
				return entities.Provider{ID: id, IsApproved: approved, ApprovedAt: at}, nil
			})

		p, err := uc.ApproveProvider(context.Background(), "prov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsApproved || p.ApprovedAt == nil {
			t.Fatalf("expected approval with timestamp, got %+v", p)
		}
	})

	t.Run("approve on blocked unblocks without restamping", func(t *testing.T) {
		approvedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

		uc, providerRepo, _, _ := newModerationUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.Provider{ID: "prov-1", IsApproved: true, IsBlocked: true, ApprovedAt: &approvedAt}, nil)
		providerRepo.EXPECT().UpdateModeration(gomock.Any(), "prov-1", true, false, gomock.Nil()).Return(entities.Provider{ID: "prov-1", IsApproved: true, ApprovedAt: &approvedAt}, nil)

		p, err := uc.ApproveProvider(context.Background(), "prov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.IsBlocked {
			t.Fatalf("expected unblocked provider, got %+v", p)
		}
	})

	t.Run("approve on approved is a no-op", func(t *testing.T) {
		approvedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

		uc, providerRepo, _, _ := newModerationUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.Provider{ID: "prov-1", IsApproved: true, ApprovedAt: &approvedAt}, nil)

		p, err := uc.ApproveProvider(context.Background(), "prov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsApproved {
			t.Fatalf("expected approval kept, got %+v", p)
		}
	})
}

func TestModerationUseCase_BlockProvider(t *testing.T) {
	t.Run("block keeps approval", func(t *testing.T) {
		approvedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

		uc, providerRepo, _, _ := newModerationUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.Provider{ID: "prov-1", IsApproved: true, ApprovedAt: &approvedAt}, nil)
		providerRepo.EXPECT().UpdateModeration(gomock.Any(), "prov-1", true, true, gomock.Nil()).Return(entities.Provider{ID: "prov-1", IsApproved: true, IsBlocked: true, ApprovedAt: &approvedAt}, nil)

		p, err := uc.BlockProvider(context.Background(), "prov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsBlocked || !p.IsApproved {
			t.Fatalf("expected blocked but still approved, got %+v", p)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		uc, providerRepo, _, _ := newModerationUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-x").Return(entities.Provider{}, nil)

		_, err := uc.BlockProvider(context.Background(), "prov-x")
		if !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})
}

func TestModerationUseCase_ApproveService(t *testing.T) {
	t.Run("first approval also activates", func(t *testing.T) {
		uc, _, serviceRepo, _ := newModerationUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)
		serviceRepo.EXPECT().UpdateModeration(gomock.Any(), "svc-1", true, false, true, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, id string, approved, blocked, active bool, at *time.Time) (entities.Service, error) {
				return entities.Service{ID: id, IsApproved: approved, IsActive: active, ApprovedAt: at}, nil
			})

		svc, err := uc.ApproveService(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !svc.IsApproved || !svc.IsActive {
			t.Fatalf("expected approved and active, got %+v", svc)
		}
	})

	t.Run("approve on blocked only unblocks", func(t *testing.T) {
		approvedAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

		uc, _, serviceRepo, _ := newModerationUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", IsApproved: true, IsBlocked: true, IsActive: false, ApprovedAt: &approvedAt}, nil)
		serviceRepo.EXPECT().UpdateModeration(gomock.Any(), "svc-1", true, false, false, gomock.Nil()).Return(entities.Service{ID: "svc-1", IsApproved: true, ApprovedAt: &approvedAt}, nil)

		svc, err := uc.ApproveService(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.IsBlocked {
			t.Fatalf("expected unblocked service, got %+v", svc)
		}
	})
}

func TestModerationUseCase_CustomerBlocking(t *testing.T) {
	t.Run("block then idempotent block", func(t *testing.T) {
		uc, _, _, customerRepo := newModerationUseCaseForTest(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		customerRepo.EXPECT().SetBlocked(gomock.Any(), "cust-1", true).Return(entities.Customer{ID: "cust-1", IsBlocked: true}, nil)

		c, err := uc.BlockCustomer(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.IsBlocked {
			t.Fatalf("expected blocked customer, got %+v", c)
		}

		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", IsBlocked: true}, nil)
		if _, err := uc.BlockCustomer(context.Background(), "cust-1"); err != nil {
			t.Fatalf("unexpected error on repeat block: %v", err)
		}
	})

	t.Run("unblock unknown customer", func(t *testing.T) {
		uc, _, _, customerRepo := newModerationUseCaseForTest(t)
		customerRepo.EXPECT().GetByID(gomock.Any(), "cust-x").Return(entities.Customer{}, nil)

		_, err := uc.UnblockCustomer(context.Background(), "cust-x")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}
