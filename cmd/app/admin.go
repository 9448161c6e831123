package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelcms/internal/config"
	"travelcms/internal/infra"
	"travelcms/internal/models/request_models"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
	"travelcms/pkg/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(cfg *config.Config, db *gorm.DB, logger *zap.Logger) error {
			if err := infra.Migrate(db); err != nil {
				return err
			}
			logger.Info("database migrated")
			return nil
		})
	},
}

var createAdminCmd = &cobra.Command{
	Use:     "create-admin",
	Short:   "Create an admin account",
	Example: `  travelcms create-admin --email ops@example.com --password 's3cret-pass' --name "Ops Team"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")

		req := request_models.CreateAdminRequest{DisplayName: name, Email: email, Password: password}
		validate := validator.New()
		validate.SetTagName("binding")
		if err := validate.Struct(req); err != nil {
			return utils.FromBindingError(err)
		}

		return withDatabase(func(cfg *config.Config, db *gorm.DB, logger *zap.Logger) error {
			jwt := utils.NewJWTManager(cfg.Security.JWTSecret, time.Duration(cfg.Security.JWTTTLMinutes)*time.Minute)
			accounts := services.NewAccountService(repositories.NewAccountRepository(db), jwt, logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := accounts.CreateAdmin(ctx, req); err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", req.Email)
			return nil
		})
	},
}

func init() {
	createAdminCmd.Flags().String("email", "", "admin email (required)")
	createAdminCmd.Flags().String("password", "", "admin password, at least 8 characters (required)")
	createAdminCmd.Flags().String("name", "", "display name (required)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	_ = createAdminCmd.MarkFlagRequired("name")
}

// withDatabase runs fn with a configured logger and gorm connection and
// closes both afterwards.
func withDatabase(fn func(cfg *config.Config, db *gorm.DB, logger *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, logger)

	return fn(cfg, db, logger)
}
