package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/metrics"
	"alfredoptarigan/job-posting-classifier/internal/models"
)

const (
	msgEmptyFields      = "Please fill in all the fields."
	msgPasswordMismatch = "Passwords do not match."
	msgBadCredentials   = "Invalid username or password."
)

// CredentialVerifier decides whether a username/password pair may log in.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

type staticCredentialVerifier struct {
	username []byte
	password []byte
}

// NewStaticCredentialVerifier accepts exactly one configured pair.
func NewStaticCredentialVerifier(username, password string) CredentialVerifier {
	return &staticCredentialVerifier{
		username: []byte(username),
		password: []byte(password),
	}
}

// Verify implements CredentialVerifier.
func (v *staticCredentialVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare(v.username, []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare(v.password, []byte(password)) == 1
	return userOK && passOK, nil
}

type AccountService interface {
	Login(ctx context.Context, req models.LoginRequest) error
	Register(ctx context.Context, req models.RegisterRequest) error
}

type accountService struct {
	verifier CredentialVerifier
	store    RecordStore
	log      *zap.Logger
	hashCost int
}

func NewAccountService(verifier CredentialVerifier, store RecordStore, log *zap.Logger) AccountService {
	return &accountService{
		verifier: verifier,
		store:    store,
		log:      log,
		hashCost: bcrypt.DefaultCost,
	}
}

// Login implements AccountService.
func (s *accountService) Login(ctx context.Context, req models.LoginRequest) error {
	ok, err := s.verifier.Verify(ctx, req.Username, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !ok {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		s.log.Info("Login rejected", zap.String("username", req.Username))
		return apperrors.Unauthorized(msgBadCredentials)
	}

	metrics.LoginAttempts.WithLabelValues("accepted").Inc()
	s.log.Info("Login accepted", zap.String("username", req.Username))
	return nil
}

// Register implements AccountService. Rows are appended without any
// uniqueness check; the password column holds a bcrypt hash.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) error {
	if isBlank(req.Username, req.Email, req.Password, req.RetypePassword) {
		return apperrors.ValidationFailure(msgEmptyFields)
	}
	if req.Password != req.RetypePassword {
		return apperrors.ValidationFailure(msgPasswordMismatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	row := []string{req.Username, req.Email, string(hash)}
	if err := s.store.Append(ctx, models.DestinationRegistrations, row); err != nil {
		return fmt.Errorf("failed to store registration: %w", err)
	}

	s.log.Info("User registered", zap.String("username", req.Username))
	return nil
}

// isBlank reports whether any value is empty after trimming whitespace.
func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
