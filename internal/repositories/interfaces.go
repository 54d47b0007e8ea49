package repositories

import (
	"context"

	"msme-carbon/internal/models"
)

// SenderIndicatorRepositoryInterface defines the contract for sender indicator repository operations
type SenderIndicatorRepositoryInterface interface {
	Create(ctx context.Context, indicator *models.SenderIndicator) error
	GetByIndicator(ctx context.Context, indicator string) (*models.SenderIndicator, error)
	Exists(ctx context.Context, indicator string) (bool, error)
	ListActive(ctx context.Context) ([]models.SenderIndicator, error)
	ListAll(ctx context.Context) ([]models.SenderIndicator, error)
	Deactivate(ctx context.Context, indicator string) error
}
