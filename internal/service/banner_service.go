package service

import (
	"context"
	"time"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/pkg/logger"
)

// BannerService owns the storefront live banner. Updates are
// last-write-wins; the banner is independent of the question lifecycle.
type BannerService struct {
	store  repository.BannerStore
	logger *logger.Logger
	now    func() time.Time
}

func NewBannerService(store repository.BannerStore, log *logger.Logger) *BannerService {
	return &BannerService{
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

// Get returns the current banner.
func (s *BannerService) Get(ctx context.Context) (domain.Banner, error) {
	return s.store.Get(ctx)
}

// Update overwrites the banner with a fresh server timestamp.
func (s *BannerService) Update(ctx context.Context, active bool, title, message string) (domain.Banner, error) {
	banner := domain.Banner{
		Active:    active,
		Title:     title,
		Message:   message,
		UpdatedAt: s.now().UTC(),
	}

	stored, err := s.store.Set(ctx, banner)
	if err != nil {
		return domain.Banner{}, err
	}

	s.logger.WithField("active", active).Info("Banner updated")
	return stored, nil
}
