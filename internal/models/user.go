package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account keyed by phone number. Email is synthesized
// (<digits>@phone.local) when the user never supplied a real one.
type User struct {
	gorm.Model
	FullName     string `gorm:"column:full_name"`
	Email        string `gorm:"column:email;unique;not null"`
	Password     string `gorm:"-"` // In-memory staging value for HashPassword, never persisted
	PasswordHash string `gorm:"column:password_hash;not null"`
	PhoneNumber  string `gorm:"column:phone_number;unique;not null"`
	IsAdmin      bool   `gorm:"column:is_admin;default:false"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
