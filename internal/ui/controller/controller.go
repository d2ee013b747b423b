package controller

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirenlab/modserve/internal/feature"
	"github.com/sirenlab/modserve/internal/model"
	"github.com/sirenlab/modserve/internal/predict/handler"
	"github.com/sirenlab/modserve/internal/ui"
)

type Pages interface {
	Index(ctx *gin.Context)
	VariantForm(ctx *gin.Context)
	VariantPredict(ctx *gin.Context)
}

var (
	pages Pages
	once  sync.Once
)

type PageController struct {
	Predictor handler.Predictor
}

func NewController() Pages {
	if pages == nil {
		once.Do(func() {
			pages = &PageController{
				Predictor: handler.GetPredictHandler(),
			}
		})
	}
	return pages
}

type variantPage struct {
	Variant handler.VariantSummary
	Fields  []feature.Field
	Values  map[string]float64
	Result  *handler.PredictResponse
	Chart   template.HTML
	Error   string
}

func (p *PageController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index", gin.H{"Variants": p.Predictor.Variants()})
}

func (p *PageController) VariantForm(ctx *gin.Context) {
	variant, err := p.Predictor.Variant(ctx.Param("id"))
	if err != nil {
		ctx.String(http.StatusNotFound, "unknown variant %q", ctx.Param("id"))
		return
	}
	ctx.HTML(http.StatusOK, "variant", variantPage{
		Variant: summarize(variant),
		Fields:  feature.Schema(),
		Values:  feature.Defaults(),
	})
}

func (p *PageController) VariantPredict(ctx *gin.Context) {
	variant, err := p.Predictor.Variant(ctx.Param("id"))
	if err != nil {
		ctx.String(http.StatusNotFound, "unknown variant %q", ctx.Param("id"))
		return
	}

	page := variantPage{
		Variant: summarize(variant),
		Fields:  feature.Schema(),
	}

	values, err := parseForm(ctx)
	if err != nil {
		page.Values = feature.Defaults()
		page.Error = err.Error()
		ctx.HTML(http.StatusBadRequest, "variant", page)
		return
	}
	page.Values = values

	response, err := p.Predictor.Predict(variant.ID, &handler.PredictRequest{Features: values})
	if err != nil {
		page.Error = err.Error()
		ctx.HTML(http.StatusBadRequest, "variant", page)
		return
	}
	page.Result = response
	if len(response.Contributions) > 0 {
		page.Chart = ui.AttributionSVG(response.Contributions)
	}
	ctx.HTML(http.StatusOK, "variant", page)
}

func parseForm(ctx *gin.Context) (map[string]float64, error) {
	values := make(map[string]float64, feature.Count)
	for _, f := range feature.Schema() {
		raw := ctx.PostForm(f.Key)
		if raw == "" {
			return nil, fmt.Errorf("missing value for %s", f.Label)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q", f.Label, raw)
		}
		values[f.Key] = value
	}
	return values, nil
}

func summarize(variant *model.Variant) handler.VariantSummary {
	return handler.VariantSummary{
		ID:          variant.ID,
		Name:        variant.Name,
		Description: variant.Description,
		ModelKind:   string(variant.Model.Kind),
		Thresholds:  variant.Thresholds,
		Attribution: variant.Attribution,
	}
}
