package auth

import (
	"context"
	"errors"

	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"gorm.io/gorm"
)

// IdentityProvider owns accounts. Find methods return (nil, nil) when
// no account matches.
type IdentityProvider interface {
	// FindByPhone matches any of the stored phone representations.
	FindByPhone(ctx context.Context, variants []string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
}

type gormIdentityProvider struct {
	db *gorm.DB
}

// NewIdentityProvider returns the users-table-backed provider.
func NewIdentityProvider(db *gorm.DB) IdentityProvider {
	return &gormIdentityProvider{db: db}
}

func (p *gormIdentityProvider) FindByPhone(ctx context.Context, variants []string) (*models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).
		Where("phone_number IN ?", variants).
		First(&user).Error
	return firstOrNil(&user, err)
}

func (p *gormIdentityProvider) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return firstOrNil(&user, err)
}

func (p *gormIdentityProvider) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).First(&user, id).Error
	return firstOrNil(&user, err)
}

func (p *gormIdentityProvider) CreateUser(ctx context.Context, user *models.User) error {
	return p.db.WithContext(ctx).Create(user).Error
}

func (p *gormIdentityProvider) UpdateUser(ctx context.Context, user *models.User) error {
	return p.db.WithContext(ctx).Save(user).Error
}

func firstOrNil(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
