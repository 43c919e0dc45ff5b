package journal

import (
	"context"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
)

// Repository stores and lists upload attempts.
type Repository interface {
	// Record saves a finished attempt. Recording the same session twice
	// overwrites the earlier row.
	Record(ctx context.Context, a *models.Attempt) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]*models.Attempt, error)
}
