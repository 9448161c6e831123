package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/repositories"
	"travelcms/internal/testutil"
	"travelcms/pkg/utils"
)

func TestAdminLoginFlow(t *testing.T) {
	db := testutil.NewDB(t)
	jwt := utils.NewJWTManager("test-secret", 15*time.Minute)
	svc := NewAccountService(repositories.NewAccountRepository(db), jwt, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, request_models.CreateAdminRequest{
		DisplayName: "Ops", Email: " Ops@Example.com ", Password: "correct-horse",
	}))
	err := svc.CreateAdmin(ctx, request_models.CreateAdminRequest{DisplayName: "Ops", Email: "ops@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "OPS@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, 900, resp.ExpiresIn)
	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, dbm.RoleAdmin, claims.Role)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "ops@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	hash, err := utils.HashPassword("editor-pass")
	require.NoError(t, err)
	require.NoError(t, db.Create(&dbm.Account{Name: "Ed", Email: "ed@example.com", PasswordHash: hash, Role: "editor"}).Error)

	svc := NewAccountService(repositories.NewAccountRepository(db), utils.NewJWTManager("s", time.Minute), zaptest.NewLogger(t))
	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "ed@example.com", Password: "editor-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
