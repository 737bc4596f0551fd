package auth

import (
	"context"
	"errors"

	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/gorm"
)

// OTPStore persists one-time codes. FindActive returns (nil, nil) when
// no unverified row matches.
type OTPStore interface {
	DeleteByPhone(ctx context.Context, phone string) error
	Create(ctx context.Context, rec *models.OTP) error
	FindActive(ctx context.Context, phone, code string) (*models.OTP, error)
	// Claim flips verified=false -> true for the given row. Returns
	// false when another request already claimed it.
	Claim(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type gormOTPStore struct {
	db *gorm.DB
}

// NewOTPStore returns the Postgres-backed store.
func NewOTPStore(db *gorm.DB) OTPStore {
	return &gormOTPStore{db: db}
}

func (s *gormOTPStore) DeleteByPhone(ctx context.Context, phone string) error {
	return s.db.WithContext(ctx).
		Where("phone_number = ?", phone).
		Delete(&models.OTP{}).Error
}

func (s *gormOTPStore) Create(ctx context.Context, rec *models.OTP) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *gormOTPStore) FindActive(ctx context.Context, phone, code string) (*models.OTP, error) {
	var rec models.OTP
	err := s.db.WithContext(ctx).
		Where("phone_number = ? AND otp_code = ? AND verified = ?", phone, code, false).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormOTPStore) Claim(ctx context.Context, id uint) (bool, error) {
	// Single conditional UPDATE so two concurrent verifications cannot
	// both redeem the same code.
	res := s.db.WithContext(ctx).
		Model(&models.OTP{}).
		Where("id = ? AND verified = ?", id, false).
		Update("verified", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormOTPStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.OTP{}, id).Error
}
