package usecase

import (
	"context"
	"errors"
	"testing"

	"servease/internal/domain/entities"
	mock_interfaces "servease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCatalogUseCaseForTest(t *testing.T) (*CatalogUseCase, *mock_interfaces.MockICategoryRepository, *mock_interfaces.MockIProviderRepository, *mock_interfaces.MockIServiceRepository, *mock_interfaces.MockICustomerRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
	providerRepo := mock_interfaces.NewMockIProviderRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	return NewCatalogUseCase(categoryRepo, providerRepo, serviceRepo, customerRepo), categoryRepo, providerRepo, serviceRepo, customerRepo
}

func TestCatalogUseCase_CreateCategory(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc, _, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateCategory(context.Background(), "admin-1", "  ", 100, 1, 6, 5, 1)
		if !errors.Is(err, ErrInvalidCategoryInput) {
			t.Fatalf("expected ErrInvalidCategoryInput, got %v", err)
		}
	})

	t.Run("rate above 100", func(t *testing.T) {
		uc, _, _, _, _ := newCatalogUseCaseForTest(t)
		_, err := uc.CreateCategory(context.Background(), "admin-1", "Cleaning", 100, 1, 101, 5, 1)
		if !errors.Is(err, ErrInvalidCategoryInput) {
			t.Fatalf("expected ErrInvalidCategoryInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, categoryRepo, _, _, _ := newCatalogUseCaseForTest(t)
		categoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.ID == "" {
					t.Fatal("expected generated category id")
				}
				return c, nil
			})

		c, err := uc.CreateCategory(context.Background(), "admin-1", "Cleaning", 100, 2, 6, 5, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.CommissionRate != 6 || c.BookingRate != 5 || c.TransactionRate != 1 {
			t.Fatalf("unexpected rates: %+v", c)
		}
	})
}

func TestCatalogUseCase_UpdateCategory(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		uc, categoryRepo, _, _, _ := newCatalogUseCaseForTest(t)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-x").Return(entities.Category{}, nil)

		_, err := uc.UpdateCategory(context.Background(), "cat-x", "Cleaning", 100, 1, 6, 5, 1)
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, categoryRepo, _, _, _ := newCatalogUseCaseForTest(t)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1", Name: "Cleaning", CommissionRate: 6}, nil)
		categoryRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.CommissionRate != 8 {
					t.Fatalf("expected new commission rate 8, got %d", c.CommissionRate)
				}
				return c, nil
			})

		c, err := uc.UpdateCategory(context.Background(), "cat-1", "Cleaning", 120, 1, 8, 5, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.BasePrice != 120 {
			t.Fatalf("expected base price 120, got %d", c.BasePrice)
		}
	})
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	provider := entities.Provider{ID: "prov-1", CategoryID: "cat-1"}
	category := entities.Category{ID: "cat-1", BasePrice: 100, MinTimeHours: 2}

	t.Run("price below category base", func(t *testing.T) {
		uc, categoryRepo, providerRepo, _, _ := newCatalogUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(provider, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(category, nil)

		_, err := uc.CreateService(context.Background(), "prov-1", "Deep clean", "", 99, 2)
		if !errors.Is(err, ErrPriceBelowBase) {
			t.Fatalf("expected ErrPriceBelowBase, got %v", err)
		}
	})

	t.Run("duration below category minimum", func(t *testing.T) {
		uc, categoryRepo, providerRepo, _, _ := newCatalogUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(provider, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(category, nil)

		_, err := uc.CreateService(context.Background(), "prov-1", "Deep clean", "", 150, 1)
		if !errors.Is(err, ErrDurationBelowMin) {
			t.Fatalf("expected ErrDurationBelowMin, got %v", err)
		}
	})

	t.Run("success starts unapproved and inactive", func(t *testing.T) {
		uc, categoryRepo, providerRepo, serviceRepo, _ := newCatalogUseCaseForTest(t)
		providerRepo.EXPECT().GetByID(gomock.Any(), "prov-1").Return(provider, nil)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(category, nil)
		serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.IsApproved || s.IsBlocked || s.IsActive {
					t.Fatalf("expected fresh moderation flags, got %+v", s)
				}
				return s, nil
			})

		s, err := uc.CreateService(context.Background(), "prov-1", "Deep clean", " two rooms ", 150, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Description != "two rooms" {
			t.Fatalf("expected trimmed description, got %q", s.Description)
		}
	})
}

func TestCatalogUseCase_ActivateService(t *testing.T) {
	t.Run("unapproved service", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newCatalogUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ProviderID: "prov-1"}, nil)

		_, err := uc.ActivateService(context.Background(), "prov-1", "svc-1")
		if !errors.Is(err, ErrServiceNotApproved) {
			t.Fatalf("expected ErrServiceNotApproved, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newCatalogUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true}, nil)

		_, err := uc.ActivateService(context.Background(), "prov-2", "svc-1")
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("approved service activates", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newCatalogUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true}, nil)
		serviceRepo.EXPECT().SetActive(gomock.Any(), "svc-1", true).Return(entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsActive: true}, nil)

		s, err := uc.ActivateService(context.Background(), "prov-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.IsActive {
			t.Fatalf("expected active service, got %+v", s)
		}
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newCatalogUseCaseForTest(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", ProviderID: "prov-1", IsApproved: true, IsActive: true}, nil)

		s, err := uc.ActivateService(context.Background(), "prov-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.IsActive {
			t.Fatalf("expected active service, got %+v", s)
		}
	})
}

func TestCatalogUseCase_RegisterProvider(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		uc, categoryRepo, _, _, _ := newCatalogUseCaseForTest(t)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-x").Return(entities.Category{}, nil)

		_, err := uc.RegisterProvider(context.Background(), "cat-x", "Acme Plumbing")
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("success starts unapproved", func(t *testing.T) {
		uc, categoryRepo, providerRepo, _, _ := newCatalogUseCaseForTest(t)
		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1"}, nil)
		providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Provider) (entities.Provider, error) {
				if p.IsApproved || p.IsBlocked || p.ApprovedAt != nil {
					t.Fatalf("expected fresh moderation flags, got %+v", p)
				}
				return p, nil
			})

		p, err := uc.RegisterProvider(context.Background(), "cat-1", "Acme Plumbing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CategoryID != "cat-1" {
			t.Fatalf("expected category binding, got %+v", p)
		}
	})
}
