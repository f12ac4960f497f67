package usecase

import (
	"context"
	"fmt"
	"strings"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// CreateAdvertiser validates the input and persists a new advertiser
// account.
func (u *AdsUseCase) CreateAdvertiser(ctx context.Context, in port.AdvertiserInput) (*domain.Advertiser, error) {
	a, err := buildAdvertiser(in)
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateAdvertiser(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAdvertiser applies the same validation as create to an existing
// advertiser.
func (u *AdsUseCase) UpdateAdvertiser(ctx context.Context, id int64, in port.AdvertiserInput) (*domain.Advertiser, error) {
	existing, err := u.repo.GetAdvertiser(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: advertiser %d", port.ErrNotFound, id)
	}
	a, err := buildAdvertiser(in)
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.CreatedAt = existing.CreatedAt
	if err = u.repo.UpdateAdvertiser(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAdvertiser removes the advertiser and, through the storage cascade,
// every campaign it owns.
func (u *AdsUseCase) DeleteAdvertiser(ctx context.Context, id int64) error {
	return u.repo.DeleteAdvertiser(ctx, id)
}

func buildAdvertiser(in port.AdvertiserInput) (*domain.Advertiser, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, invalid("email is required")
	}
	status, ok := domain.ParseAdvertiserStatus(in.Status)
	if !ok {
		return nil, invalid("unknown advertiser status %q", in.Status)
	}
	return &domain.Advertiser{
		Name:    name,
		Email:   email,
		Company: strings.TrimSpace(in.Company),
		Logo:    strings.TrimSpace(in.Logo),
		Notes:   in.Notes,
		Status:  status,
	}, nil
}
