package repository

import (
	"context"
	"errors"

	"linkora/internal/models"

	"gorm.io/gorm"
)

// OTPRepository defines the interface for one-time password operations
type OTPRepository interface {
	Create(ctx context.Context, otp *models.OneTimePassword) error
	GetByUserAndCode(ctx context.Context, userID uint, code string) (*models.OneTimePassword, error)
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTPRepository
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *models.OneTimePassword) error {
	if err := r.db.WithContext(ctx).Create(otp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *otpRepository) GetByUserAndCode(ctx context.Context, userID uint, code string) (*models.OneTimePassword, error) {
	var otp models.OneTimePassword
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &otp, nil
}

func (r *otpRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.OneTimePassword{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
