// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	contactfeature "github.com/lotusandpine/studiohub/internal/app/features/contact"
	contentfeature "github.com/lotusandpine/studiohub/internal/app/features/content"
	healthfeature "github.com/lotusandpine/studiohub/internal/app/features/health"
	loginfeature "github.com/lotusandpine/studiohub/internal/app/features/login"
	rosterfeature "github.com/lotusandpine/studiohub/internal/app/features/roster"
	userinfofeature "github.com/lotusandpine/studiohub/internal/app/features/userinfo"
	contentstore "github.com/lotusandpine/studiohub/internal/app/store/content"
	rolestore "github.com/lotusandpine/studiohub/internal/app/store/roles"
	tokenstore "github.com/lotusandpine/studiohub/internal/app/store/tokens"
	userstore "github.com/lotusandpine/studiohub/internal/app/store/users"
	"github.com/lotusandpine/studiohub/internal/app/system/auth"
	"github.com/lotusandpine/studiohub/internal/app/system/authz"
	"github.com/lotusandpine/studiohub/internal/app/system/mailer"
	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// StudioHub is a JSON API for a studio marketing site: the browser app
// talks to /api/* with a bearer credential, and /health serves load
// balancers. Every store is built once here and shared by the features
// that need it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.StudioHubMongoDatabase

	users := userstore.New(db)
	roles := rolestore.New(db)
	tokens := tokenstore.New(db)
	content := contentstore.New(db)

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	authMgr, err := auth.NewManager(appCfg.TokenKey, tokens, users, logger)
	if err != nil {
		logger.Error("auth manager init failed", zap.Error(err))
		return nil, err
	}
	checker := authz.NewChecker(roles)

	r := chi.NewRouter()

	// The marketing site is served from a different origin than the API.
	r.Use(webapi.CORS(appCfg.CORSAllowedOrigin))

	// Global auth middleware: resolves the bearer credential into context.
	// This makes the current caller available to all handlers via
	// auth.CurrentUser(r).
	r.Use(authMgr.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.StudioHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Credential endpoints
	loginHandler := loginfeature.NewHandler(users, tokens, authMgr, logger)
	loginHandler.SessionTTL = appCfg.TokenTTL
	loginRoutes, logoutRoutes, resetRoutes := loginfeature.Routes(loginHandler)
	r.Mount("/api/login", loginRoutes)
	r.Mount("/api/logout", logoutRoutes)
	r.Mount("/api/password-reset", resetRoutes)

	// Caller identity
	userinfoHandler := userinfofeature.NewHandler(checker, logger)
	userinfofeature.MountRoutes(r, userinfoHandler)

	// Admin roster management
	rosterHandler := rosterfeature.NewHandler(users, roles, tokens, mail, checker,
		appCfg.SeedAdminEmail, appCfg.SiteName, appCfg.BaseURL, logger)
	r.Mount("/api/admins", rosterfeature.Routes(rosterHandler))

	// Contact form notifications
	contactHandler := contactfeature.NewHandler(mail, appCfg.SiteName, appCfg.ContactTo, logger)
	r.Mount("/api/contact", contactfeature.Routes(contactHandler))

	// Editable page content
	contentHandler := contentfeature.NewHandler(content, logger)
	r.Mount("/api/content", contentfeature.Routes(contentHandler, checker))

	return r, nil
}
