package repository

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RenewalRepository interface {
	CreateRenewal(ctx context.Context, renewal model.Renewal) (model.Renewal, error)
	GetRenewalById(ctx context.Context, renewalId string) (model.Renewal, error)
	GetRenewals(ctx context.Context) ([]model.Renewal, error)
	// GetDueRenewals returns renewals whose next execution time is not after now
	// and that are not already running, oldest first.
	GetDueRenewals(ctx context.Context, now time.Time, limit int) ([]model.Renewal, error)
	ApplyRenewalTransition(ctx context.Context, renewalId string, transition model.RenewalTransition) error
	// FailStaleRenewals moves renewals stuck in running since before the cutoff to failed.
	FailStaleRenewals(ctx context.Context, cutoff time.Time, reason string) (int64, error)
	DeleteRenewalById(ctx context.Context, renewalId string) error
}

type renewalRepository struct {
	db *gorm.DB
}

func (r *renewalRepository) CreateRenewal(ctx context.Context, renewal model.Renewal) (model.Renewal, error) {
	result := r.db.WithContext(ctx).Create(&renewal)
	if result.Error != nil {
		return renewal, fmt.Errorf("RenewalRepository.CreateRenewal: %w", result.Error)
	}
	return renewal, nil
}

func (r *renewalRepository) GetRenewalById(ctx context.Context, renewalId string) (model.Renewal, error) {
	var renewal model.Renewal
	result := r.db.WithContext(ctx).First(&renewal, "id = ?", renewalId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return renewal, fmt.Errorf("RenewalRepository.GetRenewalById: %w", apperrors.ErrRenewalNotFound)
		}
		return renewal, fmt.Errorf("RenewalRepository.GetRenewalById: %w", result.Error)
	}
	return renewal, nil
}

func (r *renewalRepository) GetRenewals(ctx context.Context) ([]model.Renewal, error) {
	var renewals []model.Renewal
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&renewals)
	if result.Error != nil {
		return nil, fmt.Errorf("RenewalRepository.GetRenewals: %w", result.Error)
	}
	return renewals, nil
}

func (r *renewalRepository) GetDueRenewals(ctx context.Context, now time.Time, limit int) ([]model.Renewal, error) {
	var renewals []model.Renewal
	result := r.db.WithContext(ctx).
		Where("next_execution_at <= ? AND status <> ?", now, model.RenewalStatusRunning).
		Order("next_execution_at asc").
		Limit(limit).
		Find(&renewals)
	if result.Error != nil {
		return nil, fmt.Errorf("RenewalRepository.GetDueRenewals: %w", result.Error)
	}
	return renewals, nil
}

func (r *renewalRepository) ApplyRenewalTransition(ctx context.Context, renewalId string, transition model.RenewalTransition) error {
	result := r.db.WithContext(ctx).Model(&model.Renewal{}).Where("id = ?", renewalId).Updates(transition.Columns())
	if result.Error != nil {
		return fmt.Errorf("RenewalRepository.ApplyRenewalTransition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("RenewalRepository.ApplyRenewalTransition: %w", apperrors.ErrRenewalNotFound)
	}
	return nil
}

func (r *renewalRepository) FailStaleRenewals(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	transition := model.RenewalFailed(time.Now().UTC().Truncate(time.Microsecond), reason)
	result := r.db.WithContext(ctx).Model(&model.Renewal{}).
		Where("status = ? AND updated_at < ?", model.RenewalStatusRunning, cutoff).
		Updates(transition.Columns())
	if result.Error != nil {
		return 0, fmt.Errorf("RenewalRepository.FailStaleRenewals: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *renewalRepository) DeleteRenewalById(ctx context.Context, renewalId string) error {
	result := r.db.WithContext(ctx).Where("id = ?", renewalId).Delete(&model.Renewal{})
	if result.Error != nil {
		return fmt.Errorf("RenewalRepository.DeleteRenewalById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("RenewalRepository.DeleteRenewalById: %w", apperrors.ErrRenewalNotFound)
	}
	return nil
}

func NewRenewalRepository(db *gorm.DB) RenewalRepository {
	return &renewalRepository{
		db: db,
	}
}
