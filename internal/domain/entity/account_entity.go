package entity

import (
	"strings"
	"time"

	"github.com/resumehub/resume-ai/pkg/helpers"
)

// OTPTTL is the verification window for a freshly issued code.
const OTPTTL = 10 * time.Minute

// Account is the aggregate root for the authentication domain.
// PasswordHash holds a bcrypt hash and stays empty until the user
// completes password setup. OTPCode/OTPExpiresAt are set together while
// a verification window is open and cleared together after confirmation.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	OTPCode      *string
	OTPExpiresAt *time.Time
	IsVerified   bool
	HasPassword  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email so lookups and inserts
// agree on the unique key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateOTP issues a fresh 6-digit code expiring in OTPTTL, replacing
// any previous code. Persistence is the caller's responsibility.
func (a *Account) GenerateOTP() (string, error) {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return "", err
	}
	exp := time.Now().Add(OTPTTL)
	a.OTPCode = &code
	a.OTPExpiresAt = &exp
	return code, nil
}

// VerifyOTP reports whether candidate matches the stored code exactly
// and the window is still open. Expired codes are rejected but left in
// place until overwritten or cleared.
func (a *Account) VerifyOTP(candidate string) bool {
	if a.OTPCode == nil || a.OTPExpiresAt == nil {
		return false
	}
	return *a.OTPCode == candidate && time.Now().Before(*a.OTPExpiresAt)
}

// ClearOTP removes the stored code after successful verification so it
// cannot be replayed.
func (a *Account) ClearOTP() {
	a.OTPCode = nil
	a.OTPExpiresAt = nil
}

// CanLogin reports whether the account completed the full registration
// flow: email verified and a password set.
func (a *Account) CanLogin() bool {
	return a.IsVerified && a.HasPassword
}
