package extract

import (
	"context"
	"fmt"
	"time"

	"recipe-importer/internal/core/extract/cache"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Service 食譜擷取服務
// 抓取頁面後先嘗試結構化資料，失敗再走啟發式擷取
type Service struct {
	config       *config.Config
	client       *resty.Client
	cacheManager *cache.Manager
}

// NewService 創建擷取服務
func NewService(cfg *config.Config, cacheManager *cache.Manager) *Service {
	client := resty.New().
		SetHeader("User-Agent", cfg.Fetch.UserAgent).
		SetHeader("Accept", cfg.Fetch.Accept).
		SetTimeout(cfg.Fetch.Timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &Service{
		config:       cfg,
		client:       client,
		cacheManager: cacheManager,
	}
}

// ExtractRecipe 從來源網址擷取食譜
// 快取以正規化網址為鍵；抓取失敗（非 2xx 或網路錯誤）與兩種擷取皆失敗都回傳錯誤
func (s *Service) ExtractRecipe(ctx context.Context, rawURL string) (*common.Recipe, error) {
	normalizedURL := NormalizeURL(rawURL)

	// 查詢快取
	if cached, err := s.cacheManager.Get(ctx, normalizedURL); err == nil {
		var recipe common.Recipe
		if err := common.ParseJSON(cached, &recipe); err == nil {
			return &recipe, nil
		}
		common.LogWarn("快取內容解析失敗，改走重新擷取",
			zap.String("url", normalizedURL),
		)
	}

	html, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	recipe := s.extract(html, rawURL)
	if recipe == nil {
		common.LogWarn("頁面中找不到可用食譜",
			zap.String("url", rawURL),
			zap.Int("html_length", len(html)),
		)
		return nil, common.ErrNoRecipeFound
	}

	// 實體解碼只在最後套用一次
	decodeRecipeEntities(recipe)

	// 寫入快取，失敗不影響回應
	if serialized, err := common.ToJSON(recipe); err == nil {
		if err := s.cacheManager.Set(ctx, normalizedURL, serialized); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err), zap.String("url", normalizedURL))
		}
	}

	return recipe, nil
}

// fetch 抓取來源頁面
func (s *Service) fetch(ctx context.Context, rawURL string) (string, error) {
	start := time.Now()

	resp, err := s.client.R().
		SetContext(ctx).
		Get(rawURL)

	if err != nil {
		common.LogFetch(rawURL, 0, time.Since(start), err)
		return "", common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("failed to fetch URL: %v", err),
			common.ErrFetchFailed.Status, err)
	}

	common.LogFetch(rawURL, resp.StatusCode(), time.Since(start), nil)

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", common.NewError(common.ErrCodeFetchFailed,
			fmt.Sprintf("failed to fetch URL: %d", resp.StatusCode()),
			common.ErrFetchFailed.Status, nil)
	}

	body := resp.Body()
	if int64(len(body)) > s.config.Fetch.MaxResponseBytes {
		return "", common.NewError(common.ErrCodeFetchFailed,
			"response body too large",
			common.ErrFetchFailed.Status, nil)
	}

	return string(body), nil
}

// extract 依序嘗試兩種擷取方式
func (s *Service) extract(html, sourceURL string) *common.Recipe {
	// 結構化資料優先，最可靠
	if recipe := ExtractFromJSONLD(html, sourceURL); recipe != nil {
		// 結構化資料沒有備註時，改從頁面標記補抓
		if len(recipe.Notes) == 0 {
			if notes := ExtractNotesFromHTML(html); len(notes) > 0 {
				recipe.Notes = notes
			}
		}
		s.attachGroups(recipe, html)
		common.LogInfo("結構化資料擷取成功",
			zap.String("url", sourceURL),
			zap.String("title", recipe.Title),
			zap.Int("ingredients", len(recipe.Ingredients)),
		)
		return recipe
	}

	if recipe := ExtractWithHeuristics(html, sourceURL); recipe != nil {
		s.attachGroups(recipe, html)
		common.LogInfo("啟發式擷取成功",
			zap.String("url", sourceURL),
			zap.String("title", recipe.Title),
			zap.Int("ingredients", len(recipe.Ingredients)),
		)
		return recipe
	}

	return nil
}

// attachGroups 將頁面還原的分組名稱對應到食材上
// 只有在分組數與食材數完全一致時才套用，不做部分對應
func (s *Service) attachGroups(recipe *common.Recipe, html string) {
	groups := ExtractIngredientGroupsFromHTML(html)
	if len(groups) == 0 || len(groups) != len(recipe.Ingredients) {
		return
	}
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].Group = groups[i]
	}
}
