package extract

import (
	"regexp"
	"strings"

	"recipe-importer/internal/core/ingredient"
	"recipe-importer/internal/pkg/common"

	"github.com/PuerkitoBio/goquery"
)

// 無標題時的預設值
const defaultTitle = "Untitled Recipe"

// isoDurationPattern ISO-8601 時長格式（例：PT20M、PT1H30M、P1DT2H）
var isoDurationPattern = regexp.MustCompile(`P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ExtractFromJSONLD 從頁面內嵌的結構化資料擷取食譜
// 逐一掃描每個 ld+json 區塊，第一個 Recipe 型別的物件勝出，不跨物件合併
// 找不到時回傳 nil，由呼叫端改走啟發式擷取
func ExtractFromJSONLD(html, sourceURL string) *common.Recipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var recipe *common.Recipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content := strings.TrimSpace(s.Text())
		if content == "" {
			return true
		}

		var data interface{}
		// 格式錯誤的區塊直接跳過，不視為致命錯誤
		if err := common.ParseJSON(content, &data); err != nil {
			return true
		}

		if node := findRecipeNode(data, 0); node != nil {
			recipe = mapRecipeNode(node, sourceURL)
			return false
		}
		return true
	})

	return recipe
}

// findRecipeNode 在結構化資料中尋找 Recipe 型別的物件
// 支援頂層陣列、@graph 容器，以及一層巢狀
func findRecipeNode(data interface{}, depth int) map[string]interface{} {
	if depth > 1 {
		return nil
	}

	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if node := findRecipeNode(item, depth+1); node != nil {
				return node
			}
		}
	case map[string]interface{}:
		if isRecipeType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			if node := findRecipeNode(graph, depth); node != nil {
				return node
			}
		}
	}

	return nil
}

// isRecipeType 判斷 @type 是否為（或包含）Recipe
func isRecipeType(t interface{}) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

// mapRecipeNode 將 Recipe 物件欄位映射為內部格式
func mapRecipeNode(node map[string]interface{}, sourceURL string) *common.Recipe {
	title := asString(node["name"])
	if title == "" {
		title = defaultTitle
	}

	recipe := &common.Recipe{
		Title:        title,
		Image:        imageURL(node["image"]),
		Description:  asString(node["description"]),
		Ingredients:  mapIngredients(node["recipeIngredient"]),
		Instructions: mapInstructions(node["recipeInstructions"]),
		Notes:        mapNotes(node["notes"]),
		PrepTime:     convertDuration(asString(node["prepTime"])),
		CookTime:     convertDuration(asString(node["cookTime"])),
		TotalTime:    convertDuration(asString(node["totalTime"])),
		Servings:     firstString(node["recipeYield"]),
		SourceURL:    sourceURL,
	}

	return recipe
}

// mapIngredients 將 recipeIngredient 陣列逐行交給食材解析器
func mapIngredients(v interface{}) []common.Ingredient {
	items, ok := v.([]interface{})
	if !ok {
		return []common.Ingredient{}
	}

	ingredients := make([]common.Ingredient, 0, len(items))
	for _, item := range items {
		text := asString(item)
		if text == "" {
			continue
		}
		ingredients = append(ingredients, ingredient.Parse(text))
	}
	return ingredients
}

// mapInstructions 處理字串陣列與 {text} 物件陣列兩種格式
// 無可用文字的物件不產生任何輸出
func mapInstructions(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}

	instructions := make([]string, 0, len(items))
	for _, item := range items {
		switch inst := item.(type) {
		case string:
			if text := strings.TrimSpace(inst); text != "" {
				instructions = append(instructions, text)
			}
		case map[string]interface{}:
			if text := strings.TrimSpace(asString(inst["text"])); text != "" {
				instructions = append(instructions, text)
			}
		}
	}
	return instructions
}

// mapNotes 備註可為單一字串或字串陣列
func mapNotes(v interface{}) []string {
	switch notes := v.(type) {
	case string:
		if text := strings.TrimSpace(notes); text != "" {
			return []string{text}
		}
	case []interface{}:
		result := make([]string, 0, len(notes))
		for _, n := range notes {
			if text := strings.TrimSpace(asString(n)); text != "" {
				result = append(result, text)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return nil
}

// imageURL 處理 image 欄位的三種格式：字串、字串陣列、含 url 的物件陣列
func imageURL(v interface{}) string {
	switch img := v.(type) {
	case string:
		return img
	case []interface{}:
		if len(img) == 0 {
			return ""
		}
		switch first := img[0].(type) {
		case string:
			return first
		case map[string]interface{}:
			return asString(first["url"])
		}
	case map[string]interface{}:
		return asString(img["url"])
	}
	return ""
}

// convertDuration 將 ISO-8601 時長轉為人類可讀文字
// 非 P 開頭視為已是可讀文字，原樣回傳；無法解析也原樣回傳
func convertDuration(duration string) string {
	if duration == "" || !strings.HasPrefix(duration, "P") {
		return duration
	}

	m := isoDurationPattern.FindStringSubmatch(duration)
	if m == nil {
		return duration
	}

	days, hours, minutes, seconds := m[1], m[2], m[3], m[4]
	var parts []string

	if days != "" {
		parts = append(parts, days+" day"+plural(days))
	}
	if hours != "" {
		parts = append(parts, hours+" hr"+plural(hours))
	}
	if minutes != "" {
		parts = append(parts, minutes+" min"+plural(minutes))
	}
	// 秒數只在沒有更大單位時顯示
	if seconds != "" && minutes == "" && hours == "" {
		parts = append(parts, seconds+" sec")
	}

	if len(parts) == 0 {
		return duration
	}
	return strings.Join(parts, " ")
}

func plural(n string) string {
	if n == "1" {
		return ""
	}
	return "s"
}

// asString 取出字串欄位，非字串回傳空字串
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// firstString 欄位可為字串或字串陣列，陣列取第一個元素
func firstString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []interface{}:
		if len(s) > 0 {
			return asString(s[0])
		}
	}
	return ""
}
