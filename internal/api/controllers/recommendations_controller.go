package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationsController) CreateRecommendations(c *gin.Context) {
	var request request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "데이터 없음")
		return
	}
	if request.Region == "" {
		request.Region = services.AllRegions
	}

	log.Printf("Recommendation request: region=%s keywords=%v", request.Region, request.Keywords.Flatten())

	destinations, mode, err := r.recommendationService.GetRecommendations(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondRecommendations(c, destinations, len(destinations), mode)
}
