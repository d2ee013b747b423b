package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirenlab/modserve/internal/configs"
	"github.com/sirenlab/modserve/internal/model"
	"github.com/sirenlab/modserve/internal/predict/handler"
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

	dir, err := os.MkdirTemp("", "controller-test")
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

	router = gin.New()
	router.GET("/api/v1/variants", NewController().ListVariants)
	router.GET("/api/v1/variants/:id/schema", NewController().GetSchema)
	router.POST("/api/v1/variants/:id/predict", NewController().Predict)

	os.Exit(m.Run())
}

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const validPredictBody = `{
  "features": {
    "platelets_min": 200, "riss": 25, "sbp_min": 110, "bun_max": 20,
    "temperature_max": 37.0, "admission_age": 60, "renal": 0,
    "invasive_line_1stday": 0, "mechvent": 0, "sofa_1stday": 6
  }
}`

func TestListVariants(t *testing.T) {
	recorder := doRequest(t, http.MethodGet, "/api/v1/variants", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Variants []handler.VariantSummary `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Variants, 1)
	assert.Equal(t, "xgb", response.Variants[0].ID)
}

func TestGetSchema(t *testing.T) {
	recorder := doRequest(t, http.MethodGet, "/api/v1/variants/xgb/schema", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		VariantID string `json:"variant_id"`
		Fields    []struct {
			Key string `json:"key"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "xgb", response.VariantID)
	require.Len(t, response.Fields, 10)
	assert.Equal(t, "platelets_min", response.Fields[0].Key)
	assert.Equal(t, "sofa_1stday", response.Fields[9].Key)
}

func TestGetSchemaUnknownVariant(t *testing.T) {
	recorder := doRequest(t, http.MethodGet, "/api/v1/variants/nope/schema", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPredictEndpoint(t *testing.T) {
	recorder := doRequest(t, http.MethodPost, "/api/v1/variants/xgb/predict", validPredictBody)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response handler.PredictResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "xgb", response.VariantID)
	assert.NotEmpty(t, response.TrackingID)
	assert.Equal(t, "low", response.Tier.Name)
	assert.NotEmpty(t, response.Contributions)
}

func TestPredictEndpointUnknownVariant(t *testing.T) {
	recorder := doRequest(t, http.MethodPost, "/api/v1/variants/nope/predict", validPredictBody)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPredictEndpointMalformedBody(t *testing.T) {
	recorder := doRequest(t, http.MethodPost, "/api/v1/variants/xgb/predict", `{"features":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPredictEndpointMissingFeature(t *testing.T) {
	recorder := doRequest(t, http.MethodPost, "/api/v1/variants/xgb/predict", `{
		"features": {"platelets_min": 200}
	}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "missing feature")
}
