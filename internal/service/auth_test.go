package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-builder/internal/domain"
	"github.com/pkordes/trip-builder/internal/service"
)

var goodCreds = domain.Credentials{Email: "mona@example.com", Password: "Secret#123"}

func loginAPI() *mockAuthAPI {
	return &mockAuthAPI{
		login: func(_ context.Context, c domain.Credentials) (domain.Session, error) {
			if c.Password != goodCreds.Password {
				return domain.Session{}, domain.ErrUnauthorized
			}
			return domain.Session{
				Token: "tok-1",
				User:  domain.User{ID: "u1", FirstName: "Mona", LastName: "Adel", Email: c.Email},
			}, nil
		},
		register: func(context.Context, domain.Registration) error { return nil },
	}
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	drafts, r := newDrafts()
	svc := service.NewAuthService(loginAPI(), drafts, discardLogger())
	ctx, scope := context.Background(), uuid.New()

	u, err := svc.Login(ctx, scope, domain.Credentials{Email: "  mona@example.com ", Password: goodCreds.Password})

	require.NoError(t, err)
	assert.Equal(t, "Mona", u.FirstName)
	for _, k := range domain.SessionKeys {
		assert.True(t, r.has(scope, k), "missing %s", k)
	}
	tok, err := svc.Token(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	cur, err := svc.CurrentUser(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, u, cur)
}

func TestAuthService_Login_InvalidInputSkipsBackend(t *testing.T) {
	api := &mockAuthAPI{login: func(context.Context, domain.Credentials) (domain.Session, error) {
		t.Fatal("backend must not be called")
		return domain.Session{}, nil
	}}
	drafts, _ := newDrafts()
	svc := service.NewAuthService(api, drafts, discardLogger())

	_, err := svc.Login(context.Background(), uuid.New(), domain.Credentials{Email: "bad", Password: "x"})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	drafts, r := newDrafts()
	svc := service.NewAuthService(loginAPI(), drafts, discardLogger())
	scope := uuid.New()

	_, err := svc.Login(context.Background(), scope, domain.Credentials{Email: goodCreds.Email, Password: "Wrong#pass1"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, r.has(scope, domain.KeyToken))
}

func TestAuthService_Logout_RemovesOnlySession(t *testing.T) {
	drafts, r := newDrafts()
	svc := service.NewAuthService(loginAPI(), drafts, discardLogger())
	ctx, scope := context.Background(), uuid.New()
	_, err := svc.Login(ctx, scope, goodCreds)
	require.NoError(t, err)
	drafts.SaveConstraint(ctx, scope, completeConstraint())

	svc.Logout(ctx, scope)
	svc.Logout(ctx, scope)

	_, err = svc.Token(ctx, scope)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.CurrentUser(ctx, scope)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.True(t, r.has(scope, domain.KeyProgramData))
}

func TestAuthService_Register(t *testing.T) {
	var got domain.Registration
	api := loginAPI()
	api.register = func(_ context.Context, r domain.Registration) error {
		got = r
		return nil
	}
	drafts, _ := newDrafts()
	svc := service.NewAuthService(api, drafts, discardLogger())
	reg := domain.Registration{
		FirstName: "Mona", LastName: "Adel", City: "Cairo",
		Email: "mona@example.com", Password: "Secret#123", Confirm: "Secret#123",
	}

	require.NoError(t, svc.Register(context.Background(), reg))
	assert.Equal(t, "mona@example.com", got.Email)

	reg.Confirm = "Other#1234"
	require.ErrorIs(t, svc.Register(context.Background(), reg), domain.ErrValidation)
}
