package route

import (
	"github.com/rs/zerolog/log"
	"github.com/sirenlab/modserve/internal/ui"
	"github.com/sirenlab/modserve/internal/ui/controller"
	"github.com/sirenlab/modserve/pkg/httpframework"
)

// Init expects http framework to be initialized before calling this function
func Init() {
	tmpl, err := ui.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse ui templates")
	}
	router := httpframework.Instance()
	router.SetHTMLTemplate(tmpl)

	router.GET("/", controller.NewController().Index)
	router.GET("/v/:id", controller.NewController().VariantForm)
	router.POST("/v/:id", controller.NewController().VariantPredict)
}
