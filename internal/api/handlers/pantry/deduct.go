package pantry

import (
	"net/http"

	"recipe-importer/internal/core/ingredient"
	"recipe-importer/internal/core/pantry"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProposedMatch 呼叫端預先提供的配對（例如使用者手動指定）
// 內容不可信，一律驗證品項 ID 是否存在
type ProposedMatch struct {
	PantryItemID             string `json:"pantryItemId"`
	RecipeIngredientOriginal string `json:"recipeIngredientOriginal"`
}

// DeductRequest 依食譜食材計算庫存扣減計畫
type DeductRequest struct {
	Ingredients     []common.Ingredient `json:"ingredients" binding:"required"`
	PantryItems     []common.PantryItem `json:"pantryItems"`
	Multiplier      float64             `json:"multiplier"`
	ProposedMatches []ProposedMatch     `json:"proposedMatches,omitempty"`
}

// DeductResponse 扣減計畫響應
type DeductResponse struct {
	Matches []common.DeductionMatch `json:"matches"`
}

// Handler 庫存處理程序
type Handler struct{}

// NewHandler 創建新的庫存處理程序
func NewHandler() *Handler {
	return &Handler{}
}

// HandleDeduct 將食譜食材配對到庫存品項並產生扣減建議
// 只計算、不寫回：每條食材回報配對到的品項與建議動作，由呼叫端決定是否套用
func (h *Handler) HandleDeduct(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req DeductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients are required", "code": common.ErrCodeInvalidRequest})
		return
	}

	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients are required", "code": common.ErrCodeInvalidRequest})
		return
	}

	multiplier := req.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	// 以品項 ID 建索引，並驗證呼叫端提供的配對
	pantryByID := make(map[string]*common.PantryItem, len(req.PantryItems))
	for i := range req.PantryItems {
		pantryByID[req.PantryItems[i].ID] = &req.PantryItems[i]
	}

	proposed := make(map[string]string, len(req.ProposedMatches))
	for _, pm := range req.ProposedMatches {
		if _, ok := pantryByID[pm.PantryItemID]; ok {
			proposed[pm.RecipeIngredientOriginal] = pm.PantryItemID
		}
	}

	matches := make([]common.DeductionMatch, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		matches[i] = h.planDeduction(ing, req.PantryItems, pantryByID, proposed, multiplier)
	}

	common.LogInfo("扣減計畫完成",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("pantry_items", len(req.PantryItems)),
		zap.Float64("multiplier", multiplier),
	)

	c.JSON(http.StatusOK, DeductResponse{Matches: matches})
}

// planDeduction 為單一食材產生扣減計畫
func (h *Handler) planDeduction(
	ing common.Ingredient,
	items []common.PantryItem,
	pantryByID map[string]*common.PantryItem,
	proposed map[string]string,
	multiplier float64,
) common.DeductionMatch {
	scaledQuantity := ""
	if ing.Quantity != "" {
		scaledQuantity = ingredient.ScaleQuantity(ing.Quantity, multiplier)
	}

	// 配對：優先採用呼叫端提供且通過驗證的配對，否則走內建配對器
	var item *common.PantryItem
	if id, ok := proposed[ing.Original]; ok {
		item = pantryByID[id]
	} else {
		name := ing.Name
		if name == "" {
			name = ing.Original
		}
		if m := pantry.MatchIngredient(name, items); m != nil {
			item = m.Item
		}
	}

	if item == nil {
		return common.DeductionMatch{
			RecipeIngredient:   ing.Original,
			IngredientQuantity: scaledQuantity,
			IngredientUnit:     ing.Unit,
			Action:             common.ActionNoMatch,
		}
	}

	suggestion := pantry.SuggestDepletion(item, scaledQuantity, ing.Unit)

	// 配對到了但無可扣減（已見底或微量用量），回報為 no_match 但保留品項資訊
	if suggestion.Action == common.ActionNoChange {
		return common.DeductionMatch{
			PantryItemID:       item.ID,
			PantryItemName:     item.Name,
			RecipeIngredient:   ing.Original,
			IngredientQuantity: scaledQuantity,
			IngredientUnit:     ing.Unit,
			Action:             common.ActionNoMatch,
		}
	}

	return common.DeductionMatch{
		PantryItemID:       item.ID,
		PantryItemName:     item.Name,
		RecipeIngredient:   ing.Original,
		IngredientQuantity: scaledQuantity,
		IngredientUnit:     ing.Unit,
		Action:             suggestion.Action,
		DeductQuantity:     suggestion.DeductQuantity,
		NewBulkQuantity:    suggestion.NewBulkQuantity,
	}
}
