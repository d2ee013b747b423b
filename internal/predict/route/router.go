package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sirenlab/modserve/internal/predict/controller"
	"github.com/sirenlab/modserve/pkg/httpframework"
)

// Init expects http framework to be initialized before calling this function
func Init() {
	api := httpframework.Instance().Group("/api/v1")
	{
		api.GET("/variants", controller.NewController().ListVariants)
		api.GET("/variants/:id/schema", controller.NewController().GetSchema)
		api.POST("/variants/:id/predict", controller.NewController().Predict)
	}
	httpframework.Instance().GET("/health", Health)
}

func Health(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Application is up!!!"})
}
