package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	dbm "travelcms/internal/models/db_models"
	"travelcms/internal/models/request_models"
	"travelcms/internal/models/response_models"
	"travelcms/internal/repositories"
	"travelcms/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAdmin(ctx context.Context, request request_models.CreateAdminRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, repoErr("find account", err)
	}
	// Unknown email and wrong password look the same to the caller.
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	if account.Role != dbm.RoleAdmin {
		a.logger.Warn("login rejected for non-admin account", zap.String("account_id", account.ID.String()))
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token:     token,
		ExpiresIn: int(a.jwt.TTL().Seconds()),
	}, nil
}

func (a *AccountService) CreateAdmin(ctx context.Context, request request_models.CreateAdminRequest) error {
	email := normalizeEmail(request.Email)
	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return repoErr("find account", err)
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}
	account := &dbm.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashed,
		Role:         dbm.RoleAdmin,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return repoErr("insert account", err)
	}
	a.logger.Info("admin account created", zap.String("account_id", account.ID.String()))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
