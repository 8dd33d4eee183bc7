package extract

import (
	"strings"
	"unicode/utf8"

	"recipe-importer/internal/core/ingredient"
	"recipe-importer/internal/pkg/common"

	"github.com/PuerkitoBio/goquery"
)

// 食材行長度上限，超過多半是整段文字而非單行食材
const maxIngredientLength = 200

// 步驟文字長度下限，太短多半是編號或標籤
const minInstructionLength = 10

// ingredientSelectors 食材清單選擇器，依常見標記排序，第一個有結果的勝出
var ingredientSelectors = []string{
	`[class*="ingredient"] li`,
	`[class*="ingredients"] li`,
	"[data-ingredient]",
	`ul[class*="ingredient"] li`,
	".recipe-ingredients li",
	"#ingredients li",
}

// instructionSelectors 步驟清單選擇器
var instructionSelectors = []string{
	`[class*="instruction"] li`,
	`[class*="instructions"] li`,
	`[class*="direction"] li`,
	`[class*="directions"] li`,
	`[class*="step"] p`,
	".recipe-instructions li",
	".recipe-directions li",
	"#instructions li",
}

// ExtractWithHeuristics 以選擇器啟發式擷取食譜，作為結構化資料缺失時的退路
// 只要找不到任何食材就回傳 nil，光有標題或步驟不足以構成食譜
func ExtractWithHeuristics(html, sourceURL string) *common.Recipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	title := findTitle(doc)
	image := findImage(doc)
	ingredients := findIngredients(doc)
	instructions := findInstructions(doc)
	notes := extractNotes(doc)

	if len(ingredients) == 0 {
		return nil
	}

	return &common.Recipe{
		Title:        title,
		Image:        image,
		Ingredients:  ingredients,
		Instructions: instructions,
		Notes:        notes,
		SourceURL:    sourceURL,
	}
}

// findTitle 依優先序尋找標題：recipe 類標題 → 任一 h1 → og:title → <title>
func findTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find(`h1[class*="recipe"]`).First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if t, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").Text()); t != "" {
		return t
	}
	return defaultTitle
}

// findImage 依優先序尋找主圖：recipe 類圖片 → og:image → article 內第一張圖
func findImage(doc *goquery.Document) string {
	if src, ok := doc.Find(`img[class*="recipe"]`).First().Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && src != "" {
		return src
	}
	if src, ok := doc.Find("article img").First().Attr("src"); ok {
		return src
	}
	return ""
}

func findIngredients(doc *goquery.Document) []common.Ingredient {
	var ingredients []common.Ingredient

	for _, selector := range ingredientSelectors {
		items := doc.Find(selector)
		if items.Length() == 0 {
			continue
		}
		items.Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && utf8.RuneCountInString(text) < maxIngredientLength {
				ingredients = append(ingredients, ingredient.Parse(text))
			}
		})
		break
	}

	return ingredients
}

func findInstructions(doc *goquery.Document) []string {
	var instructions []string

	for _, selector := range instructionSelectors {
		items := doc.Find(selector)
		if items.Length() == 0 {
			continue
		}
		items.Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if utf8.RuneCountInString(text) > minInstructionLength {
				instructions = append(instructions, text)
			}
		})
		break
	}

	return instructions
}
