package extract

import (
	"html"
	"net/url"
	"strings"

	"recipe-importer/internal/pkg/common"
)

// decodeRecipeEntities 對所有文字欄位做 HTML 實體解碼
// 只在擷取完成後套用一次，擷取器本身輸出原始文字
func decodeRecipeEntities(recipe *common.Recipe) {
	recipe.Title = html.UnescapeString(recipe.Title)
	recipe.Description = html.UnescapeString(recipe.Description)

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		ing.Original = html.UnescapeString(ing.Original)
		ing.Name = html.UnescapeString(ing.Name)
		ing.Group = html.UnescapeString(ing.Group)
	}

	for i, inst := range recipe.Instructions {
		recipe.Instructions[i] = html.UnescapeString(inst)
	}

	for i, note := range recipe.Notes {
		recipe.Notes[i] = html.UnescapeString(note)
	}
}

// NormalizeURL 正規化來源網址，作為快取鍵與封存鍵
// 移除 fragment 與路徑尾端斜線（根路徑除外）；無法解析時原樣回傳
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	if len(parsed.Path) > 1 && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
