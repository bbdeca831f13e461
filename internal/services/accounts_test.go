package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/models"
)

func newTestAccountService(store RecordStore, verifier CredentialVerifier) *accountService {
	svc := NewAccountService(verifier, store, zap.NewNop()).(*accountService)
	svc.hashCost = bcrypt.MinCost
	return svc
}

type failingVerifier struct{}

func (failingVerifier) Verify(context.Context, string, string) (bool, error) {
	return false, errors.New("directory unavailable")
}

func TestStaticCredentialVerifier(t *testing.T) {
	v := NewStaticCredentialVerifier("admin", "secret")
	ctx := context.Background()

	cases := []struct {
		username, password string
		want               bool
	}{
		{"admin", "secret", true},
		{"admin", "Secret", false},
		{"Admin", "secret", false},
		{"", "", false},
		{"admin", "secret ", false},
	}

	for _, c := range cases {
		ok, err := v.Verify(ctx, c.username, c.password)
		assert.NoError(t, err)
		assert.Equal(t, c.want, ok, "%q/%q", c.username, c.password)
	}
}

func TestAccountService_Login(t *testing.T) {
	svc := newTestAccountService(newMemoryStore(), NewStaticCredentialVerifier("admin", "secret"))
	ctx := context.Background()

	assert.NoError(t, svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "secret"}))

	err := svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
	assert.ErrorContains(t, err, "Invalid username or password.")
}

func TestAccountService_Login_VerifierError(t *testing.T) {
	svc := newTestAccountService(newMemoryStore(), failingVerifier{})

	err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "secret"})
	require.Error(t, err)
	assert.False(t, apperrors.Is(err, apperrors.KindUnauthorized))
	assert.ErrorContains(t, err, "directory unavailable")
}

func TestAccountService_Register(t *testing.T) {
	store := newMemoryStore()
	svc := newTestAccountService(store, NewStaticCredentialVerifier("admin", "secret"))

	err := svc.Register(context.Background(), models.RegisterRequest{
		Username:       "jane",
		Email:          "jane@example.com",
		Password:       "hunter2",
		RetypePassword: "hunter2",
	})
	require.NoError(t, err)

	rows := store.Rows(models.DestinationRegistrations)
	require.Len(t, rows, 1)
	assert.Equal(t, "jane", rows[0][0])
	assert.Equal(t, "jane@example.com", rows[0][1])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rows[0][2]), []byte("hunter2")))
}

func TestAccountService_Register_AllowsDuplicates(t *testing.T) {
	store := newMemoryStore()
	svc := newTestAccountService(store, NewStaticCredentialVerifier("admin", "secret"))
	req := models.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: "pw", RetypePassword: "pw"}

	require.NoError(t, svc.Register(context.Background(), req))
	require.NoError(t, svc.Register(context.Background(), req))

	assert.Len(t, store.Rows(models.DestinationRegistrations), 2)
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		msg  string
	}{
		{
			name: "missing email",
			req:  models.RegisterRequest{Username: "jane", Password: "pw", RetypePassword: "pw"},
			msg:  "Please fill in all the fields.",
		},
		{
			name: "blank username",
			req:  models.RegisterRequest{Username: "   ", Email: "j@example.com", Password: "pw", RetypePassword: "pw"},
			msg:  "Please fill in all the fields.",
		},
		{
			name: "password mismatch",
			req:  models.RegisterRequest{Username: "jane", Email: "j@example.com", Password: "pw", RetypePassword: "wp"},
			msg:  "Passwords do not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			svc := newTestAccountService(store, NewStaticCredentialVerifier("admin", "secret"))

			err := svc.Register(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindValidationFailure))
			assert.ErrorContains(t, err, tt.msg)
			assert.Empty(t, store.Rows(models.DestinationRegistrations))
		})
	}
}

func TestAccountService_Register_StoreError(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("disk full")
	svc := newTestAccountService(store, NewStaticCredentialVerifier("admin", "secret"))

	err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "jane", Email: "j@example.com", Password: "pw", RetypePassword: "pw",
	})

	assert.ErrorContains(t, err, "failed to store registration")
	assert.ErrorContains(t, err, "disk full")
}
