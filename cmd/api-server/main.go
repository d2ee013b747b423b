package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sirenlab/modserve/internal/configs"
	"github.com/sirenlab/modserve/internal/model"
	predictHandler "github.com/sirenlab/modserve/internal/predict/handler"
	predictRoute "github.com/sirenlab/modserve/internal/predict/route"
	uiRoute "github.com/sirenlab/modserve/internal/ui/route"
	"github.com/sirenlab/modserve/pkg/httpframework"
	"github.com/sirenlab/modserve/pkg/logger"
	"github.com/sirenlab/modserve/pkg/metric"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Configs        configs.Configs
	DynamicConfigs configs.DynamicConfigs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func (cfg *AppConfig) GetDynamicConfig() interface{} {
	return &cfg.DynamicConfigs
}

func main() {
	var appConfig AppConfig

	configs.InitConfig(&appConfig)
	logger.Init(appConfig.Configs)
	metric.Init(appConfig.Configs)

	registry, err := model.LoadRegistry(appConfig.Configs.ModelManifestPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load model registry")
	}
	predictHandler.InitPredictHandler(registry, appConfig.Configs)

	httpframework.Init(corsMiddleware(appConfig.Configs))
	predictRoute.Init()
	uiRoute.Init()

	address := fmt.Sprintf(":%d", appConfig.Configs.AppPort)
	log.Info().Msgf("modserve started at port on %s", address)
	if err := httpframework.Instance().Run(address); err != nil {
		log.Fatal().Err(err).Msg("Failed to start modserve application!")
	}
}

func corsMiddleware(config configs.Configs) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	corsConfig.MaxAge = 12 * time.Hour
	if config.CorsAllowedOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.CorsAllowedOrigins, ",")
	}
	return cors.New(corsConfig)
}
