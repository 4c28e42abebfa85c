package config

const (
	EnvPrefix = "velora"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv   = "VELORA_APP_ENV"
	EnvPort     = "VELORA_APP_PORT"
	EnvLogLevel = "VELORA_LOG_LEVEL"
	EnvRedisURL = "VELORA_REDIS_URL"
)
