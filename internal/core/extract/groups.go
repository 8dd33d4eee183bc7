package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractIngredientGroupsFromHTML 從頁面標記還原食材分組（例如「For the sauce:」）
// 回傳與偵測到的食材項目等長的分組名稱序列，未分組的項目為空字串
// 沒有任何策略成功時回傳空序列；長度是否與實際食材數相符由呼叫端驗證
func ExtractIngredientGroupsFromHTML(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	strategies := []func(*goquery.Document) []string{
		tastyStyleGroups,
		wprmStyleGroups,
		genericGroups,
	}

	for _, strategy := range strategies {
		groups, labeled := runGroupStrategy(strategy, doc)
		// 成功條件：至少一個項目，且分組名稱至少出現過一次
		if len(groups) > 0 && labeled {
			return groups
		}
	}

	return nil
}

func runGroupStrategy(strategy func(*goquery.Document) []string, doc *goquery.Document) ([]string, bool) {
	groups := strategy(doc)
	for _, g := range groups {
		if g != "" {
			return groups, true
		}
	}
	return groups, false
}

// tastyStyleGroups Tasty Recipes 外掛的標記：清單前的段落或小標題即為分組名稱
// 逐一掃描容器的直接子元素，遇到標籤就更新目前分組，遇到清單就為每個項目記一筆
func tastyStyleGroups(doc *goquery.Document) []string {
	container := doc.Find(".tasty-recipes-ingredients-body, .tasty-recipes-ingredients").First()
	if container.Length() == 0 {
		return nil
	}

	var groups []string
	current := ""

	container.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "p", "h3", "h4", "h5":
			if text := strings.TrimSpace(child.Text()); text != "" {
				current = text
			}
		case "ul", "ol":
			child.Find("li").Each(func(_ int, _ *goquery.Selection) {
				groups = append(groups, current)
			})
		}
	})

	return groups
}

// wprmStyleGroups WP Recipe Maker 外掛的標記：重複的分組容器內含明確的名稱元素
func wprmStyleGroups(doc *goquery.Document) []string {
	containers := doc.Find(".wprm-recipe-ingredient-group")
	if containers.Length() == 0 {
		return nil
	}

	var groups []string

	containers.Each(func(_ int, group *goquery.Selection) {
		name := strings.TrimSpace(group.Find(".wprm-recipe-ingredient-group-name, .wprm-recipe-group-name").First().Text())
		items := group.Find("li.wprm-recipe-ingredient")
		if items.Length() == 0 {
			items = group.Find("li")
		}
		items.Each(func(_ int, _ *goquery.Selection) {
			groups = append(groups, name)
		})
	})

	return groups
}

// genericGroups 通用標記：任何同時含有小標題與清單項目的食材容器
// 依文件順序走訪，沿途記住最近一次看到的小標題
func genericGroups(doc *goquery.Document) []string {
	var groups []string

	doc.Find(`[class*="ingredient"]`).EachWithBreak(func(_ int, container *goquery.Selection) bool {
		if container.Find("h2, h3, h4, h5, h6").Length() == 0 || container.Find("li").Length() == 0 {
			return true
		}

		current := ""
		container.Find("h2, h3, h4, h5, h6, li").Each(func(_ int, el *goquery.Selection) {
			if goquery.NodeName(el) == "li" {
				groups = append(groups, current)
				return
			}
			if text := strings.TrimSpace(el.Text()); text != "" {
				current = text
			}
		})
		return false
	})

	return groups
}
