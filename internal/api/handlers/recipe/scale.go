package recipe

import (
	"net/http"

	"recipe-importer/internal/core/ingredient"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScaleRequest 食譜份量調整請求
type ScaleRequest struct {
	Ingredients []common.Ingredient `json:"ingredients" binding:"required"`
	Multiplier  float64             `json:"multiplier" binding:"required"`
}

// ScaledIngredient 單行食材的調整結果
type ScaledIngredient struct {
	common.Ingredient
	ScaledQuantity string `json:"scaledQuantity,omitempty"` // 調整後的數量文字
	Display        string `json:"display"`                  // 調整後的顯示文字
}

// ScaleResponse 食譜份量調整響應
type ScaleResponse struct {
	Ingredients []ScaledIngredient `json:"ingredients"`
	Multiplier  float64            `json:"multiplier"`
}

// HandleScale 依倍數調整食材份量
// 解析不了的數量原樣保留，顯示文字永遠可用
func (h *Handler) HandleScale(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	if req.Multiplier <= 0 {
		common.LogError("倍數無效",
			zap.Float64("multiplier", req.Multiplier),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multiplier must be positive", "code": common.ErrCodeInvalidRequest})
		return
	}

	scaled := make([]ScaledIngredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		item := ScaledIngredient{
			Ingredient: ing,
			Display:    ingredient.FormatIngredient(ing, req.Multiplier),
		}
		if ing.Quantity != "" {
			item.ScaledQuantity = ingredient.ScaleQuantity(ing.Quantity, req.Multiplier)
		}
		scaled[i] = item
	}

	common.LogInfo("份量調整完成",
		zap.String("request_id", requestID),
		zap.Float64("multiplier", req.Multiplier),
		zap.Int("ingredients", len(scaled)),
	)

	c.JSON(http.StatusOK, ScaleResponse{
		Ingredients: scaled,
		Multiplier:  req.Multiplier,
	})
}
