package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type stubRecommendationService struct {
	destinations []*response_models.Destination
	mode         string
	err          error
	gotRequest   request_models.RecommendationRequest
}

func (s *stubRecommendationService) GetRecommendations(ctx context.Context, request request_models.RecommendationRequest) ([]*response_models.Destination, string, error) {
	s.gotRequest = request
	return s.destinations, s.mode, s.err
}

func newTestRouter(svc services.RecommendationServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/recommendations", NewRecommendationsController(svc).CreateRecommendations)
	return r
}

func postRecommendations(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRecommendationsSuccess(t *testing.T) {
	svc := &stubRecommendationService{
		destinations: []*response_models.Destination{
			{ID: 1, City: "강릉", MatchScore: 95},
			{ID: 2, City: "속초", MatchScore: 88},
		},
		mode: services.ModeGenerated,
	}

	w := postRecommendations(newTestRouter(svc), `{"keywords":{"테마":["카페"]},"region":"강원"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                           `json:"success"`
		Data    []*response_models.Destination `json:"data"`
		Count   int                            `json:"count"`
		Mode    string                         `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, services.ModeGenerated, resp.Mode)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Data[0].ID)
	assert.Equal(t, "강릉", resp.Data[0].City)

	assert.Equal(t, "강원", svc.gotRequest.Region)
	assert.Equal(t, []string{"카페"}, svc.gotRequest.Keywords.Themes)
}

func TestCreateRecommendationsDefaultsRegion(t *testing.T) {
	svc := &stubRecommendationService{mode: services.ModeGenerated}

	w := postRecommendations(newTestRouter(svc), `{"keywords":{}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.AllRegions, svc.gotRequest.Region)
}

func TestCreateRecommendationsEmptyBody(t *testing.T) {
	svc := &stubRecommendationService{}

	w := postRecommendations(newTestRouter(svc), "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "데이터 없음", resp.Error)
}

func TestCreateRecommendationsGenerationFailure(t *testing.T) {
	svc := &stubRecommendationService{err: utils.ErrGenerationFailed}

	w := postRecommendations(newTestRouter(svc), `{"region":"강원"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "API 키와 모델명을 확인해주세요")
}
