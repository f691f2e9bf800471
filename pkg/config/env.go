package config

const (
	EnvPrefix = "SHIPDESK"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv          = "SHIPDESK_APP_ENV"
	EnvPort            = "SHIPDESK_APP_PORT"
	EnvUpstreamBaseURL = "SHIPDESK_UPSTREAM_BASE_URL"
	EnvRedisURL        = "SHIPDESK_REDIS_URL"
)
