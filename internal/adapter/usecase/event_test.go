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

// TestRegisterClick ensures a click is recorded against the campaign and
// the destination URL comes back for the redirect.
func TestRegisterClick(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(5)).
		Return(&domain.Campaign{ID: 5, Slot: domain.SlotFeed, DestinationURL: "https://example.com/landing"}, nil)
	repo.EXPECT().RecordClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).
		Run(func(ctx context.Context, click *domain.ClickEvent) {
			if click.CampaignID != 5 || click.Slot != domain.SlotFeed {
				t.Fatalf("unexpected click event: %+v", click)
			}
			if click.Token == "" {
				t.Fatal("click token must be set")
			}
		}).
		Return(nil)

	url, err := newTestUseCase(repo).RegisterClick(context.Background(), 5)
	if err != nil {
		t.Fatalf("RegisterClick error: %v", err)
	}
	if url != "https://example.com/landing" {
		t.Fatalf("url = %q", url)
	}
}

// TestRegisterClickUnknownCampaign ensures clicks on unknown campaigns are
// rejected without recording anything.
func TestRegisterClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(nil, nil)

	_, err := newTestUseCase(repo).RegisterClick(context.Background(), 99)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
