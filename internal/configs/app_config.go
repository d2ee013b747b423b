package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// Telegraf configuration
	TelegrafHost string `mapstructure:"telegraf_host"`
	TelegrafPort string `mapstructure:"telegraf_port"`

	// Model registry configuration
	ModelManifestPath string `mapstructure:"model_manifest_path"`

	// Response logging configuration, sampled percentage in [0,100]
	ResponseLoggingPerc int `mapstructure:"response_logging_perc"`

	// CORS configuration, comma separated origins; empty allows all
	CorsAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

type DynamicConfigs struct{}
