package usecase

import (
	"context"
	"errors"
	"testing"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestCreateAdvertiser checks the required fields and the default status.
func TestCreateAdvertiser(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().CreateAdvertiser(mock.Anything, mock.AnythingOfType("*domain.Advertiser")).
		Run(func(ctx context.Context, a *domain.Advertiser) { a.ID = 1 }).
		Return(nil)

	a, err := newTestUseCase(repo).CreateAdvertiser(context.Background(), port.AdvertiserInput{
		Name:  "  Acme  ",
		Email: "ads@acme.test",
	})
	if err != nil {
		t.Fatalf("CreateAdvertiser error: %v", err)
	}
	if a.Name != "Acme" {
		t.Fatalf("name = %q, want trimmed", a.Name)
	}
	if a.Status != domain.AdvertiserActive {
		t.Fatalf("status = %q, want default active", a.Status)
	}

	_, err = newTestUseCase(mocks.NewMockAdsRepository(t)).CreateAdvertiser(context.Background(), port.AdvertiserInput{Name: "Acme"})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("missing email: err = %v, want ErrValidation", err)
	}

	_, err = newTestUseCase(mocks.NewMockAdsRepository(t)).CreateAdvertiser(context.Background(), port.AdvertiserInput{
		Name: "Acme", Email: "a@b.test", Status: "suspended",
	})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("bad status: err = %v, want ErrValidation", err)
	}
}

// TestUpdateAdvertiserNotFound ensures editing a missing advertiser fails
// before any validation side effects.
func TestUpdateAdvertiserNotFound(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetAdvertiser(mock.Anything, int64(12)).Return(nil, nil)

	_, err := newTestUseCase(repo).UpdateAdvertiser(context.Background(), 12, port.AdvertiserInput{Name: "x", Email: "x@y.test"})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// TestDeleteAdvertiserCascades ensures the delete is handed to the
// repository, whose foreign keys remove the advertiser's campaigns with it.
func TestDeleteAdvertiserCascades(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().DeleteAdvertiser(mock.Anything, int64(3)).Return(nil)

	if err := newTestUseCase(repo).DeleteAdvertiser(context.Background(), 3); err != nil {
		t.Fatalf("DeleteAdvertiser error: %v", err)
	}
}
