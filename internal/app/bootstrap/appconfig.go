// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where you put everything specific to YOUR application.
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// Bearer credential configuration
	TokenKey string        // Secret key for signing bearer envelopes (must be strong in production)
	TokenTTL time.Duration // Lifetime of an issued session credential

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit, email-smtp.us-east-1.amazonaws.com for SES)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty for Mailpit)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@lotusandpine.com)
	MailFromName string // From display name (e.g., Lotus & Pine)

	// Contact form notifications go to this inbox.
	ContactTo string

	// Seed admin bootstrap. The seed account is created (or re-granted the
	// admin role) on startup and never appears in roster listings.
	SeedAdminEmail    string
	SeedAdminPassword string

	// Site identity used in outgoing email.
	SiteName string

	// Base URL for email links (password reset, etc.)
	BaseURL string // e.g., "https://lotusandpine.com" or "http://localhost:3000"

	// CORS origin allowed to call the JSON API ("*" during development).
	CORSAllowedOrigin string
}
