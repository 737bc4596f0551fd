package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vidyaquiz/vidyaquiz-backend/internal/models"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/logger"
	"github.com/vidyaquiz/vidyaquiz-backend/pkg/utils"
	"go.uber.org/zap"
)

// SMSSender delivers a one-time code. A single attempt is made.
type SMSSender interface {
	SendOTP(phone, code string) error
}

// RateLimiter throttles OTP sends per phone number.
type RateLimiter interface {
	Allow(ctx context.Context, phone string) (bool, error)
}

// Service runs the OTP issuance and verification flows against
// injected collaborators.
type Service struct {
	store    OTPStore
	identity IdentityProvider
	sessions SessionIssuer
	sms      SMSSender
	limiter  RateLimiter
}

func NewService(store OTPStore, identity IdentityProvider, sessions SessionIssuer, sms SMSSender, limiter RateLimiter) *Service {
	return &Service{
		store:    store,
		identity: identity,
		sessions: sessions,
		sms:      sms,
		limiter:  limiter,
	}
}

// SendOTP issues a fresh code for the phone number, superseding any
// earlier one, and hands it to the SMS gateway.
func (s *Service) SendOTP(ctx context.Context, rawPhone string) error {
	phone, ok := utils.NormalizePhone(rawPhone)
	if !ok {
		return ErrInvalidInput
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, phone)
		if err != nil {
			logger.Error("[SendOTP] rate limiter failed", zap.Error(err))
			return ErrProvider
		}
		if !allowed {
			return ErrRateLimited
		}
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		logger.Error("[SendOTP] code generation failed", zap.Error(err))
		return ErrProvider
	}

	// Only the newest code may ever be valid for a phone.
	if err := s.store.DeleteByPhone(ctx, phone); err != nil {
		logger.Error("[SendOTP] failed to delete prior codes", zap.Error(err))
		return ErrProvider
	}

	rec := &models.OTP{
		PhoneNumber: phone,
		Code:        code,
		ExpiresAt:   time.Now().Add(models.OTPLifetime),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		logger.Error("[SendOTP] failed to store code", zap.Error(err))
		return ErrProvider
	}

	if err := s.sms.SendOTP(phone, code); err != nil {
		// The stored row is left in place: the next send-otp deletes it
		// and the rate limiter bounds how many can pile up.
		logger.Error("[SendOTP] delivery failed", zap.String("phone", phone), zap.Error(err))
		return ErrDeliveryFailure
	}

	return nil
}

// VerifyInput carries a submitted code plus the signup/signin branch
// selector and optional signup profile fields.
type VerifyInput struct {
	Phone    string
	Code     string
	IsSignup bool
	Username string
	Email    string
	Password string
}

// VerifyResult is a minted session plus the authenticated account.
type VerifyResult struct {
	Session *Session
	User    *models.User
}

// VerifyOTP validates a submitted code exactly once and either creates
// an account (signup) or authenticates an existing one (signin).
func (s *Service) VerifyOTP(ctx context.Context, in VerifyInput) (*VerifyResult, error) {
	phone, ok := utils.NormalizePhone(in.Phone)
	if !ok {
		return nil, ErrInvalidInput
	}

	rec, err := s.store.FindActive(ctx, phone, in.Code)
	if err != nil {
		logger.Error("[VerifyOTP] lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if rec == nil {
		return nil, ErrCodeInvalid
	}

	if rec.Expired(time.Now()) {
		return nil, ErrCodeExpired
	}

	claimed, err := s.store.Claim(ctx, rec.ID)
	if err != nil {
		logger.Error("[VerifyOTP] claim failed", zap.Error(err))
		return nil, ErrProvider
	}
	if !claimed {
		return nil, ErrCodeConsumed
	}

	var user *models.User
	if in.IsSignup {
		user, err = s.signup(ctx, phone, in)
	} else {
		user, err = s.signin(ctx, phone)
	}
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Issue(ctx, user)
	if err != nil {
		logger.Error("[VerifyOTP] session issuance failed", zap.Error(err))
		return nil, ErrProvider
	}

	// Final cleanup; the code was already claimed, so a failure here
	// cannot reopen it.
	if err := s.store.Delete(ctx, rec.ID); err != nil {
		logger.Warn("[VerifyOTP] failed to delete redeemed code", zap.Error(err))
	}

	return &VerifyResult{Session: session, User: user}, nil
}

func (s *Service) signup(ctx context.Context, phone string, in VerifyInput) (*models.User, error) {
	existing, err := s.identity.FindByPhone(ctx, utils.PhoneVariants(phone))
	if err != nil {
		logger.Error("[VerifyOTP] phone lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	email := in.Email
	if email == "" {
		email = utils.SyntheticEmail(phone)
	}

	existing, err = s.identity.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("[VerifyOTP] email lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	password := in.Password
	if password == "" {
		// Random throwaway credential. The account is operated through
		// OTP signin; a real password only exists if the user chose one.
		password = uuid.NewString()
	}

	user := &models.User{
		FullName:    in.Username,
		Email:       email,
		Password:    password,
		PhoneNumber: phone,
	}
	if err := user.HashPassword(); err != nil {
		logger.Error("[VerifyOTP] password hashing failed", zap.Error(err))
		return nil, ErrProvider
	}

	if err := s.identity.CreateUser(ctx, user); err != nil {
		logger.Error("[VerifyOTP] account creation failed", zap.Error(err))
		return nil, ErrProvider
	}

	return user, nil
}

func (s *Service) signin(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.identity.FindByPhone(ctx, utils.PhoneVariants(phone))
	if err != nil {
		logger.Error("[VerifyOTP] phone lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	return user, nil
}

// Login authenticates with email-or-phone plus password, for accounts
// that set one at signup.
func (s *Service) Login(ctx context.Context, identifier, password string) (*VerifyResult, error) {
	if identifier == "" || password == "" {
		return nil, ErrInvalidInput
	}

	var user *models.User
	var err error
	if digits, ok := utils.NormalizePhone(identifier); ok {
		user, err = s.identity.FindByPhone(ctx, utils.PhoneVariants(digits))
	} else {
		user, err = s.identity.FindByEmail(ctx, identifier)
	}
	if err != nil {
		logger.Error("[Login] account lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Issue(ctx, user)
	if err != nil {
		logger.Error("[Login] session issuance failed", zap.Error(err))
		return nil, ErrProvider
	}

	return &VerifyResult{Session: session, User: user}, nil
}

// RefreshSession rotates a refresh token into a fresh session.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*VerifyResult, error) {
	if refreshToken == "" {
		return nil, ErrInvalidInput
	}

	userID, err := s.sessions.Redeem(ctx, refreshToken)
	if err != nil {
		if flowErr, ok := err.(*FlowError); ok {
			return nil, flowErr
		}
		logger.Error("[RefreshSession] redeem failed", zap.Error(err))
		return nil, ErrProvider
	}

	user, err := s.identity.FindByID(ctx, userID)
	if err != nil {
		logger.Error("[RefreshSession] account lookup failed", zap.Error(err))
		return nil, ErrProvider
	}
	if user == nil {
		return nil, ErrSessionExpired
	}

	session, err := s.sessions.Issue(ctx, user)
	if err != nil {
		logger.Error("[RefreshSession] session issuance failed", zap.Error(err))
		return nil, ErrProvider
	}

	return &VerifyResult{Session: session, User: user}, nil
}
