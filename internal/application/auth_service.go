package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/resumehub/resume-ai/internal/domain/entity"
	"github.com/resumehub/resume-ai/internal/domain/repository"
	"github.com/resumehub/resume-ai/pkg/helpers"
	"github.com/resumehub/resume-ai/pkg/mailer"
)

var (
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNotVerified        = errors.New("user not found or not verified")
	ErrPasswordAlreadySet = errors.New("password already set")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOTPDelivery        = errors.New("failed to send OTP email")
)

// AuthService drives the account lifecycle:
// unregistered -> OTP pending -> verified -> active (has password).
type AuthService struct {
	Repo   repository.AccountRepository
	JWT    *helpers.JWTManager
	Sender mailer.OTPSender
	Logger *logrus.Logger
}

func NewAuthService(repo repository.AccountRepository, jwt *helpers.JWTManager, sender mailer.OTPSender, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Sender: sender, Logger: logger}
}

// Register creates an account for the email, or reuses an existing one
// that never finished registration, issues a fresh OTP and emails it.
// The new OTP is persisted before the send is attempted, so a failed
// send still invalidates any previous code.
func (s *AuthService) Register(ctx context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)

	acc, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if acc.CanLogin() {
			return nil, ErrAlreadyRegistered
		}
		// Incomplete registration: reuse the record with a new code.
	case errors.Is(err, repository.ErrNotFound):
		acc = &entity.Account{Email: email}
	default:
		return nil, err
	}

	code, err := acc.GenerateOTP()
	if err != nil {
		return nil, err
	}

	if acc.ID == "" {
		err = s.Repo.Create(ctx, acc)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration for the same
			// email; the other request owns the open OTP window now.
			return nil, ErrAlreadyRegistered
		}
	} else {
		err = s.Repo.Update(ctx, acc)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Sender.SendOTP(ctx, acc.Email, code); err != nil {
		s.Logger.WithError(err).WithField("email", acc.Email).Error("OTP email delivery failed")
		return nil, ErrOTPDelivery
	}
	return acc, nil
}

// VerifyOTP checks the submitted code and, on success, marks the account
// verified and clears the code so it cannot be replayed.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*entity.Account, error) {
	acc, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if !acc.VerifyOTP(code) {
		return nil, ErrInvalidOTP
	}

	acc.IsVerified = true
	acc.ClearOTP()
	if err := s.Repo.Update(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// SetupPassword stores the account's password hash once, after email
// verification, and issues the first session token.
func (s *AuthService) SetupPassword(ctx context.Context, email, password string) (string, error) {
	acc, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil || !acc.IsVerified {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		return "", ErrNotVerified
	}
	if acc.HasPassword {
		return "", ErrPasswordAlreadySet
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	acc.PasswordHash = hash
	acc.HasPassword = true
	if err := s.Repo.Update(ctx, acc); err != nil {
		return "", err
	}

	token, _, err := s.JWT.Generate(acc.ID)
	return token, err
}

// Login verifies the credentials and issues a session token. Unknown
// email, incomplete registration and wrong password all fail with the
// same error so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.Account, string, error) {
	acc, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil || !acc.CanLogin() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, "", err
		}
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(acc.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(acc.ID)
	if err != nil {
		return nil, "", err
	}
	return acc, token, nil
}

// ResendOTP regenerates the code for an existing account and emails it,
// invalidating the previous code.
func (s *AuthService) ResendOTP(ctx context.Context, email string) (*entity.Account, error) {
	acc, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	code, err := acc.GenerateOTP()
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, acc); err != nil {
		return nil, err
	}

	if err := s.Sender.SendOTP(ctx, acc.Email, code); err != nil {
		s.Logger.WithError(err).WithField("email", acc.Email).Error("OTP email delivery failed")
		return nil, ErrOTPDelivery
	}
	return acc, nil
}
