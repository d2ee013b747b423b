package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirenlab/modserve/internal/configs"
	"github.com/sirenlab/modserve/internal/feature"
	"github.com/sirenlab/modserve/internal/model"
	"github.com/sirenlab/modserve/internal/predict/handler"
	"github.com/sirenlab/modserve/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArtifactJSON = `{
  "kind": "gbtree",
  "feature_names": ["platelets_min", "riss", "sbp_min", "bun_max", "temperature_max", "admission_age", "renal", "invasive_line_1stday", "mechvent", "sofa_1stday"],
  "base_score": -1.0,
  "trees": [
    {"nodes": [
      {"feature": 9, "threshold": 8, "left": 1, "right": 2, "value": 0.0},
      {"feature": -1, "threshold": 0, "left": 0, "right": 0, "value": -1.5},
      {"feature": -1, "threshold": 0, "left": 0, "right": 0, "value": 1.8}
    ]}
  ]
}`

const testManifest = `
variants:
  - id: xgb
    name: XGBoost
    description: test variant
    artifact: model.json
    thresholds:
      low: 0.1
      high: 0.5
    attribution: true
`

var router *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "ui-controller-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "model.json"), []byte(testArtifactJSON), 0o644); err != nil {
		panic(err)
	}
	manifestPath := filepath.Join(dir, "variants.yaml")
	if err := os.WriteFile(manifestPath, []byte(testManifest), 0o644); err != nil {
		panic(err)
	}

	registry, err := model.LoadRegistry(manifestPath)
	if err != nil {
		panic(err)
	}
	handler.InitPredictHandler(registry, configs.Configs{})

	tmpl, err := ui.Parse()
	if err != nil {
		panic(err)
	}
	router = gin.New()
	router.SetHTMLTemplate(tmpl)
	router.GET("/", NewController().Index)
	router.GET("/v/:id", NewController().VariantForm)
	router.POST("/v/:id", NewController().VariantPredict)

	os.Exit(m.Run())
}

func defaultForm() url.Values {
	form := url.Values{}
	for key, value := range feature.Defaults() {
		form.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return form
}

func postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestIndexPage(t *testing.T) {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "XGBoost")
	assert.Contains(t, recorder.Body.String(), "/v/xgb")
}

func TestVariantForm(t *testing.T) {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v/xgb", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Patient Parameters")
	for _, f := range feature.Schema() {
		assert.Contains(t, body, f.Key)
	}
	assert.Contains(t, body, "Predict MODS Risk")
	assert.Contains(t, body, "DISCLAIMER")
}

func TestVariantFormUnknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v/nope", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestVariantPredict(t *testing.T) {
	recorder := postForm(t, "/v/xgb", defaultForm())

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "MODS Probability")
	assert.Contains(t, body, "Low Risk of MODS")
	assert.Contains(t, body, "<svg")
}

func TestVariantPredictHighRisk(t *testing.T) {
	form := defaultForm()
	form.Set(feature.KeySofa1stDay, "16")
	recorder := postForm(t, "/v/xgb", form)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "High Risk of MODS")
	assert.Contains(t, recorder.Body.String(), "color:red")
}

func TestVariantPredictMissingField(t *testing.T) {
	form := defaultForm()
	form.Del(feature.KeyBunMax)
	recorder := postForm(t, "/v/xgb", form)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "missing value for BUN")
}

func TestVariantPredictInvalidValue(t *testing.T) {
	form := defaultForm()
	form.Set(feature.KeySbpMin, "not-a-number")
	recorder := postForm(t, "/v/xgb", form)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid value for Systolic BP")
}
