// Package environment defines the deployment environment enum used to tag
// logs and select environment-specific behavior such as the email delivery
// backend.
package environment

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)
