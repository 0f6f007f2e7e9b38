package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// FAQService serves the FAQ page from the repository, falling back to the
// built-in entries.
type FAQService struct {
	repo ports.FAQRepository
	log  zerolog.Logger
}

func NewFAQService(repo ports.FAQRepository, log zerolog.Logger) *FAQService {
	return &FAQService{repo: repo, log: log}
}

// List never fails: a broken or empty store yields DefaultFAQs.
func (s *FAQService) List(ctx context.Context) []domain.FAQ {
	faqs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("faq store unavailable, serving defaults")
		return domain.DefaultFAQs
	}
	if len(faqs) == 0 {
		return domain.DefaultFAQs
	}
	return faqs
}

// Seed writes DefaultFAQs into an empty store.
func (s *FAQService) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count faqs: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := s.repo.InsertMany(ctx, domain.DefaultFAQs); err != nil {
		return fmt.Errorf("seed faqs: %w", err)
	}
	s.log.Info().Int("count", len(domain.DefaultFAQs)).Msg("seeded faqs")
	return nil
}
