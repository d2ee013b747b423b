package controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sirenlab/modserve/internal/feature"
	"github.com/sirenlab/modserve/internal/predict/handler"
	"github.com/sirenlab/modserve/pkg/api"
)

type Predict interface {
	ListVariants(ctx *gin.Context)
	GetSchema(ctx *gin.Context)
	Predict(ctx *gin.Context)
}

var (
	predict Predict
	once    sync.Once
)

type PredictController struct {
	Predictor handler.Predictor
}

func NewController() Predict {
	if predict == nil {
		once.Do(func() {
			predict = &PredictController{
				Predictor: handler.GetPredictHandler(),
			}
		})
	}
	return predict
}

func (p *PredictController) ListVariants(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"variants": p.Predictor.Variants()})
}

func (p *PredictController) GetSchema(ctx *gin.Context) {
	variant, err := p.Predictor.Variant(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(api.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"variant_id": variant.ID,
		"fields":     feature.Schema(),
	})
}

func (p *PredictController) Predict(ctx *gin.Context) {
	var request handler.PredictRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response, err := p.Predictor.Predict(ctx.Param("id"), &request)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(api.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}
