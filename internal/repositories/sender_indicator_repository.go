package repositories

import (
	"context"
	"errors"
	"fmt"

	"msme-carbon/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSenderIndicatorNotFound = errors.New("sender indicator not found")
	ErrSenderIndicatorExists   = errors.New("sender indicator already exists")
)

// SenderIndicatorRepository handles database operations for configured sender indicators
type SenderIndicatorRepository struct {
	db *gorm.DB
}

// NewSenderIndicatorRepository creates a new sender indicator repository
func NewSenderIndicatorRepository(db *gorm.DB) SenderIndicatorRepositoryInterface {
	return &SenderIndicatorRepository{
		db: db,
	}
}

// Create stores a new sender indicator
func (r *SenderIndicatorRepository) Create(ctx context.Context, indicator *models.SenderIndicator) error {
	if indicator == nil {
		return errors.New("sender indicator cannot be nil")
	}

	exists, err := r.Exists(ctx, indicator.Indicator)
	if err != nil {
		return err
	}
	if exists {
		return ErrSenderIndicatorExists
	}

	if err := r.db.WithContext(ctx).Create(indicator).Error; err != nil {
		return fmt.Errorf("failed to create sender indicator: %w", err)
	}

	return nil
}

// GetByIndicator retrieves a sender indicator by its tag
func (r *SenderIndicatorRepository) GetByIndicator(ctx context.Context, indicator string) (*models.SenderIndicator, error) {
	var row models.SenderIndicator

	if err := r.db.WithContext(ctx).Where("indicator = ?", indicator).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSenderIndicatorNotFound
		}
		return nil, fmt.Errorf("failed to get sender indicator: %w", err)
	}

	return &row, nil
}

// Exists reports whether a tag is already stored, active or not
func (r *SenderIndicatorRepository) Exists(ctx context.Context, indicator string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.SenderIndicator{}).
		Where("indicator = ?", indicator).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sender indicator: %w", err)
	}

	return count > 0, nil
}

// ListActive retrieves every active sender indicator ordered by sector and tag
func (r *SenderIndicatorRepository) ListActive(ctx context.Context) ([]models.SenderIndicator, error) {
	var rows []models.SenderIndicator

	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sector_key ASC, indicator ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sender indicators: %w", err)
	}

	return rows, nil
}

// ListAll retrieves every stored sender indicator ordered by sector and tag
func (r *SenderIndicatorRepository) ListAll(ctx context.Context) ([]models.SenderIndicator, error) {
	var rows []models.SenderIndicator

	if err := r.db.WithContext(ctx).Order("sector_key ASC, indicator ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sender indicators: %w", err)
	}

	return rows, nil
}

// Deactivate marks a sender indicator inactive so it is no longer loaded
func (r *SenderIndicatorRepository) Deactivate(ctx context.Context, indicator string) error {
	result := r.db.WithContext(ctx).Model(&models.SenderIndicator{}).
		Where("indicator = ?", indicator).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate sender indicator: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSenderIndicatorNotFound
	}

	return nil
}
