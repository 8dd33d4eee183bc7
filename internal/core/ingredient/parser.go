// Package ingredient 解析食材文字行：數量、單位與名稱
package ingredient

import (
	"regexp"
	"strings"
	"unicode"

	"recipe-importer/internal/pkg/common"
)

// unicodeFraction Unicode 分數字符的數值與十進位展開
// dec 必須與 val 的字串形式一致，展開與還原都依賴它
type unicodeFraction struct {
	val float64
	dec string
}

var unicodeFractions = map[rune]unicodeFraction{
	'½': {0.5, "0.5"},
	'⅓': {1.0 / 3, "0.3333333333333333"},
	'⅔': {2.0 / 3, "0.6666666666666666"},
	'¼': {0.25, "0.25"},
	'¾': {0.75, "0.75"},
	'⅕': {0.2, "0.2"},
	'⅖': {0.4, "0.4"},
	'⅗': {0.6, "0.6"},
	'⅘': {0.8, "0.8"},
	'⅙': {1.0 / 6, "0.16666666666666666"},
	'⅚': {5.0 / 6, "0.8333333333333334"},
	'⅛': {0.125, "0.125"},
	'⅜': {0.375, "0.375"},
	'⅝': {0.625, "0.625"},
	'⅞': {0.875, "0.875"},
}

// units 封閉單位詞彙表，比對時一律小寫並去掉一個結尾的 . 或 ,
var units = map[string]struct{}{
	"cup": {}, "cups": {},
	"tsp": {}, "teaspoon": {}, "teaspoons": {},
	"tbsp": {}, "tablespoon": {}, "tablespoons": {},
	"oz": {}, "ounce": {}, "ounces": {},
	"lb": {}, "lbs": {}, "pound": {}, "pounds": {},
	"g": {}, "gram": {}, "grams": {},
	"kg": {}, "kilogram": {}, "kilograms": {},
	"ml": {}, "milliliter": {}, "milliliters": {},
	"l": {}, "liter": {}, "liters": {},
	"quart": {}, "quarts": {}, "qt": {},
	"pint": {}, "pints": {}, "pt": {},
	"gallon": {}, "gallons": {}, "gal": {},
	"stick": {}, "sticks": {},
	"clove": {}, "cloves": {},
	"slice": {}, "slices": {},
	"piece": {}, "pieces": {},
	"can": {}, "cans": {},
	"bag": {}, "bags": {},
	"bunch": {}, "bunches": {},
	"head": {}, "heads": {},
	"sprig": {}, "sprigs": {},
	"pinch": {}, "pinches": {},
	"dash": {}, "dashes": {},
	"package": {}, "packages": {}, "pkg": {},
	"jar": {}, "jars": {},
	"bottle": {}, "bottles": {},
	"box": {}, "boxes": {},
}

// 數量樣式：整數/小數、分數、帶分數，後面可接 - 與第二段形成範圍
// 例如 "2"、"1/2"、"1 1/2"、"2.5"、"2-3"、"1 1/2 - 2"
var quantityPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+\.?\d*)\s*(?:-\s*(\d+\s+\d+/\d+|\d+/\d+|\d+\.?\d*))?`)

// IsUnit 判斷 token 是否屬於單位詞彙表
func IsUnit(token string) bool {
	_, ok := units[strings.ToLower(stripTrailingPunct(token))]
	return ok
}

// stripTrailingPunct 去掉一個結尾的 . 或 ,
func stripTrailingPunct(s string) string {
	if n := len(s); n > 0 && (s[n-1] == '.' || s[n-1] == ',') {
		return s[:n-1]
	}
	return s
}

// expandFractions 將 Unicode 分數展開為前後帶空格的十進位值
func expandFractions(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if f, ok := unicodeFractions[r]; ok {
			sb.WriteString(" " + f.dec + " ")
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ParseQuantity 解析行首的數量
// 回傳的 value 保留原始寫法（例如 "1½"），rest 為其後的文字；找不到數量時 ok 為 false
func ParseQuantity(text string) (value, rest string, ok bool) {
	// 先展開 Unicode 分數，再在展開後的副本上比對樣式
	normalized := strings.TrimLeftFunc(expandFractions(text), unicode.IsSpace)

	match := quantityPattern.FindString(normalized)
	if match == "" {
		return "", "", false
	}

	// 將展開後副本上的比對範圍映射回原始文字：
	// 每個分數字符在副本中佔「空格+十進位+空格」的長度，原文只佔一個字符
	trimmed := []rune(strings.TrimLeftFunc(text, unicode.IsSpace))
	matchLen := len([]rune(match))

	ni, oi := 0, 0
	for ni < matchLen && oi < len(trimmed) {
		if f, found := unicodeFractions[trimmed[oi]]; found {
			ni += len(f.dec) + 2
			oi++
			continue
		}
		ni++
		oi++
	}

	value = strings.TrimSpace(string(trimmed[:oi]))
	rest = strings.TrimSpace(string(trimmed[oi:]))
	return value, rest, true
}

// Parse 將一行食材文字拆解為結構化欄位
// 解析不出來的部分一律留空，original 永遠保留，不會回傳錯誤
func Parse(text string) common.Ingredient {
	trimmed := strings.TrimSpace(text)
	result := common.Ingredient{Original: trimmed}

	quantity, rest, ok := ParseQuantity(trimmed)
	if !ok {
		return result
	}
	result.Quantity = quantity

	if rest == "" {
		return result
	}

	// 檢查數量後的第一個詞是否為單位
	first, remainder := splitFirstWord(rest)
	if _, isUnit := units[strings.ToLower(stripTrailingPunct(first))]; isUnit {
		result.Unit = stripTrailingPunct(first)
		result.Name = remainder
	} else {
		result.Name = rest
	}

	return result
}

// splitFirstWord 取出第一個非空白 token 與其後的剩餘文字
func splitFirstWord(s string) (first, remainder string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}
