package mailer

import "context"

// OTPSender delivers a one-time verification code to an email address.
// The auth service treats any error as "OTP could not be delivered".
type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}
