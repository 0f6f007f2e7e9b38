package ports

import (
	"context"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// AuditRepository persists profile edit events.
type AuditRepository interface {
	InsertEdit(ctx context.Context, event domain.ProfileEditEvent) error
}

// EditRecorder accepts edit events without blocking the request path.
type EditRecorder interface {
	Record(event domain.ProfileEditEvent)
}
