package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every /api endpoint returns. The frontend
// checks Success first and reads Error only when it is false.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
	Mode    string      `json:"mode,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondRecommendations(c *gin.Context, data interface{}, count int, mode string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Count:   count,
		Mode:    mode,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   message,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyRequestBody):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "데이터 없음",
		})
	case errors.Is(err, ErrGenerationFailed):
		log.Printf("Generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error:   "여행지 생성 실패. API 키와 모델명을 확인해주세요.",
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}
}
