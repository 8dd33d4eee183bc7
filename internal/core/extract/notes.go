package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// 備註長度限制，過短多半是標籤文字，過長多半是整段內文
const (
	minNoteLength = 15
	maxNoteLength = 1000
)

// noteSelectorSources 備註/小技巧的選擇器清單，依常見外掛標記與通用容器排序
var noteSelectorSources = []string{
	// Tasty Recipes 外掛（常見），需優先取段落子元素
	".tasty-recipes-notes-body p",
	".tasty-recipes-notes p",
	// class 型選擇器
	`[class*="recipe-note"] p`,
	`[class*="recipe-note"] li`,
	`[class*="recipe-notes"] p`,
	`[class*="recipe-notes"] li`,
	`[class*="recipe-tip"] p`,
	`[class*="recipe-tip"] li`,
	`[class*="recipe-tips"] p`,
	`[class*="recipe-tips"] li`,
	`[class*="wprm-recipe-note"] p`,
	`[class*="wprm-recipe-note"] li`,
	`[class*="mv-recipe-note"] p`,
	`[class*="mv-recipe-note"] li`,
	// 通用 note/tip class
	".notes p",
	".notes li",
	".note p",
	".note li",
	".tips p",
	".tips li",
	".tip p",
	".tip li",
	".recipe-notes p",
	".recipe-notes li",
	".recipe-tips p",
	".recipe-tips li",
	// id 型
	"#notes p",
	"#notes li",
	"#recipe-notes p",
	"#recipe-notes li",
	// data 屬性
	"[data-recipe-notes]",
	"[data-notes]",
	// 標題含 Note / Tip 的區塊
	`section:has(h2:contains("Note")) p`,
	`section:has(h2:contains("Tip")) p`,
	`section:has(h3:contains("Note")) p`,
	`section:has(h3:contains("Tip")) p`,
	`div:has(h2:contains("Note")) p`,
	`div:has(h2:contains("Tip")) p`,
	`div:has(h3:contains("Note")) p`,
	`div:has(h3:contains("Tip")) p`,
	// 常見外掛的整塊備註容器
	".wprm-recipe-notes",
	".tasty-recipes-notes",
	".mv-create-notes",
	".easyrecipe .notes",
}

// noteSelectors 啟動時預編譯，無法編譯的選擇器跳過
var noteSelectors = compileSelectors(noteSelectorSources)

// compileSelectors 預編譯選擇器清單，略過不支援的語法
func compileSelectors(sources []string) []cascadia.Selector {
	selectors := make([]cascadia.Selector, 0, len(sources))
	for _, src := range sources {
		sel, err := cascadia.Compile(src)
		if err != nil {
			continue
		}
		selectors = append(selectors, sel)
	}
	return selectors
}

// ExtractNotesFromHTML 從頁面標記中擷取食譜備註
// 依序嘗試選擇器，第一個有結果的勝出；去除重複並過濾長度不合理的條目
func ExtractNotesFromHTML(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return extractNotes(doc)
}

func extractNotes(doc *goquery.Document) []string {
	var notes []string
	seen := make(map[string]bool)

	for _, sel := range noteSelectors {
		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if n := utf8.RuneCountInString(text); n > minNoteLength && n < maxNoteLength && !seen[text] {
				seen[text] = true
				notes = append(notes, text)
			}
		})
		if len(notes) > 0 {
			break
		}
	}

	return notes
}
