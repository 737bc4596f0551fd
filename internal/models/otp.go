package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPLifetime is how long a code stays redeemable after issuance.
const OTPLifetime = 5 * time.Minute

// OTP is a one-time code issued to a phone number. Only the newest
// unverified row per phone is ever valid: issuing a new code deletes
// the older rows first.
type OTP struct {
	gorm.Model
	PhoneNumber string    `gorm:"column:phone_number;index" json:"phone_number"`
	Code        string    `gorm:"column:otp_code" json:"otp_code"`
	ExpiresAt   time.Time `gorm:"column:expires_at" json:"expires_at"`
	Verified    bool      `gorm:"column:verified;default:false" json:"verified"`
}

// TableName specifies the table name
func (OTP) TableName() string {
	return "otps"
}

// Expired reports whether the code is past its redemption window.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
