package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

func newAuthService(t *testing.T) (*services.AuthService, store.Store) {
	t.Helper()
	s := newTestStore(t)
	return services.NewAuthService(s, newTestJWTService(), zerolog.Nop()), s
}

func TestRegister(t *testing.T) {
	svc, s := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Arun Kumar",
		Email:    "arun@x.edu",
		Password: "Passw0rd!",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "Arun Kumar", resp.User.Name)
	assert.Equal(t, string(models.RoleStudent), resp.User.Role)

	// Students get a welcome notification.
	notifications, err := s.ListNotificationsForUser(ctx, resp.User.ID, false)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Welcome to PlacePort", notifications[0].Title)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr error
	}{
		{
			name:    "invalid email",
			req:     dto.RegisterRequest{Name: "A", Email: "not-an-email", Password: "Passw0rd!", Role: models.RoleStudent},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "weak password",
			req:     dto.RegisterRequest{Name: "A", Email: "a@x.edu", Password: "weak", Role: models.RoleStudent},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown role",
			req:     dto.RegisterRequest{Name: "A", Email: "a@x.edu", Password: "Passw0rd!", Role: "superuser"},
			wantErr: apperrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t)
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Arun Kumar", Email: "arun@x.edu", Password: "Passw0rd!", Role: models.RoleStudent}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Arun Kumar", Email: "arun@x.edu", Password: "Passw0rd!", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "arun@x.edu", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)

	_, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Email: "arun@x.edu", Password: "WrongPass1"})
	_, wrongEmail := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@x.edu", Password: "Passw0rd!"})
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongEmail, apperrors.ErrInvalidCredentials)
}
