package recipe

import (
	"errors"
	"net/http"
	"net/url"

	"recipe-importer/internal/core/extract"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractRequest 食譜擷取請求
type ExtractRequest struct {
	URL string `json:"url" binding:"required"` // 來源頁面網址
}

// ExtractResponse 食譜擷取響應
type ExtractResponse struct {
	Recipe *common.Recipe `json:"recipe"`
}

// Handler 食譜處理程序
type Handler struct {
	extractService *extract.Service
}

// NewHandler 創建新的食譜處理程序
func NewHandler(extractService *extract.Service) *Handler {
	return &Handler{
		extractService: extractService,
	}
}

// HandleExtract 從來源網址擷取食譜
func (h *Handler) HandleExtract(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜擷取請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required", "code": common.ErrCodeInvalidRequest})
		return
	}

	if !isValidURL(req.URL) {
		common.LogError("網址無效",
			zap.String("request_id", requestID),
			zap.String("url", req.URL),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL", "code": common.ErrCodeInvalidURL})
		return
	}

	recipe, err := h.extractService.ExtractRecipe(c.Request.Context(), req.URL)
	if err != nil {
		status, code, message := classifyExtractError(err)
		common.LogError("食譜擷取失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("url", req.URL),
			zap.String("code", code),
		)
		c.JSON(status, gin.H{"error": message, "code": code})
		return
	}

	common.LogInfo("食譜擷取成功",
		zap.String("request_id", requestID),
		zap.String("url", req.URL),
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(recipe.Ingredients)),
	)

	c.JSON(http.StatusOK, ExtractResponse{Recipe: recipe})
}

// isValidURL 只接受 http/https 的絕對網址
func isValidURL(rawURL string) bool {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// classifyExtractError 將擷取錯誤映射為 HTTP 狀態與錯誤代碼
func classifyExtractError(err error) (int, string, string) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		return customErr.Status, customErr.Code, customErr.Error()
	}
	return http.StatusInternalServerError, common.ErrCodeInternalError, "Failed to extract recipe"
}
