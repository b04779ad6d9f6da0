// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/config"
	rolestore "github.com/lotusandpine/studiohub/internal/app/store/roles"
	userstore "github.com/lotusandpine/studiohub/internal/app/store/users"
	"github.com/lotusandpine/studiohub/internal/app/system/normalize"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"github.com/lotusandpine/studiohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// StudioHub uses it to guarantee the seed admin exists: without at least one
// admin, nobody can reach the roster endpoint to add another.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedAdminEmail == "" {
		logger.Warn("seed_admin_email not set; no admin account will be bootstrapped")
		return nil
	}
	return ensureSeedAdmin(ctx, deps, appCfg.SeedAdminEmail, appCfg.SeedAdminPassword, logger)
}

// ensureSeedAdmin creates the seed account if missing and guarantees it
// holds the admin role. The password is only applied on first creation;
// an existing account keeps whatever password it has.
func ensureSeedAdmin(ctx context.Context, deps DBDeps, email, password string, logger *zap.Logger) error {
	users := userstore.New(deps.StudioHubMongoDatabase)
	roles := rolestore.New(deps.StudioHubMongoDatabase)
	email = normalize.Email(email)

	u, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// Account exists; fall through to the role grant.
	case errors.Is(err, mongo.ErrNoDocuments):
		if password == "" {
			return fmt.Errorf("seed admin %s does not exist and seed_admin_password is empty", email)
		}
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return fmt.Errorf("hash seed admin password: %w", herr)
		}
		created, cerr := users.Create(ctx, models.User{
			Email:        email,
			PasswordHash: string(hash),
			Confirmed:    true,
		})
		if cerr != nil && !errors.Is(cerr, userstore.ErrDuplicateEmail) {
			return fmt.Errorf("create seed admin: %w", cerr)
		}
		if cerr == nil {
			u = &created
			logger.Info("created seed admin account", zap.String("email", email))
		} else {
			// Lost a startup race with another replica; reload the winner's row.
			u, err = users.GetByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("reload seed admin: %w", err)
			}
		}
	default:
		return fmt.Errorf("look up seed admin: %w", err)
	}

	if _, err := roles.Grant(ctx, u.ID, models.RoleAdmin); err != nil && !errors.Is(err, apperr.ErrAlreadyAdmin) {
		return fmt.Errorf("grant seed admin role: %w", err)
	}

	logger.Info("seed admin ensured", zap.String("email", email))
	return nil
}
