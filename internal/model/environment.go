package model

// Environment is the deployment environment name from config.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether env names the production environment.
func IsProduction(env string) bool {
	return Environment(env) == EnvironmentProduction
}
