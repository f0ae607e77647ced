package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/payrollpro/payroll-backend-go/internal/config"
	"github.com/payrollpro/payroll-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the bootstrap admin account on first start.
// Password hashing needs bcrypt, so this runs at startup rather than in a
// SQL migration. Idempotent: an existing account is left untouched.
func EnsureAdminUser(ctx context.Context, userRepo user.UserRepository, cfg config.AdminConfig) error {
	if cfg.Password == "" {
		slog.Warn("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	_, err := userRepo.GetByUsername(ctx, cfg.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = userRepo.Create(ctx, user.User{
		Username:     cfg.Username,
		PasswordHash: string(passwordHash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		// A concurrent instance may have created it between the lookup and
		// the insert.
		if errors.Is(err, user.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("Bootstrap admin user created", "username", cfg.Username)
	return nil
}
