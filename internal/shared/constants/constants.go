// Package constants defines shared constant values used across the application.
package constants

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// DefaultPageSize is the default page size for list endpoints.
const DefaultPageSize = 50

// MaxPageSize is the maximum allowed page size for list endpoints.
const MaxPageSize = 500
