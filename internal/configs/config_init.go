package configs

import (
	"log"

	"github.com/sirenlab/modserve/pkg/config"
	"github.com/spf13/viper"
)

// ConfigHolder interface for app config
type ConfigHolder interface {
	GetStaticConfig() interface{}
	GetDynamicConfig() interface{}
}

// InitConfig loads configuration from the environment, with an optional
// application.env file in the working directory for local runs.
func InitConfig(configHolder ConfigHolder) {
	config.InitEnv()

	viper.SetConfigName("application")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.Println("No application.env found, using environment variables only")
	}

	staticConfig := configHolder.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	// Bind environment variables to config keys
	// This maps APP_NAME (env) -> app_name (config key)
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	applyDefaults(cfg)
}

func applyDefaults(cfg *Configs) {
	if cfg.AppName == "" {
		cfg.AppName = "modserve"
	}
	if cfg.AppPort == 0 {
		cfg.AppPort = 8080
	}
	if cfg.ModelManifestPath == "" {
		cfg.ModelManifestPath = "models/variants.yaml"
	}
}
