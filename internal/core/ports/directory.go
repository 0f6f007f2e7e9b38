package ports

import (
	"context"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// DirectoryService serves the public professionals listing.
type DirectoryService interface {
	List(ctx context.Context, filter domain.ProfessionalFilter) ([]domain.ProfessionalCard, error)
	Card(ctx context.Context, id domain.UserID) (domain.ProfessionalCard, error)
}

// FAQRepository stores FAQ entries.
type FAQRepository interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, faqs []domain.FAQ) error
}

// FAQService serves the FAQ page.
type FAQService interface {
	List(ctx context.Context) []domain.FAQ
	Seed(ctx context.Context) error
}
