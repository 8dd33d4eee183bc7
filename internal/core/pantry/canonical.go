// Package pantry 提供食材與儲藏品項的比對與扣減規則
package pantry

import (
	"regexp"
	"strings"
)

// 常見的描述性前綴，正規化時剝掉一個開頭出現的
var stripPrefixes = []string{
	"canned",
	"fresh",
	"frozen",
	"dried",
	"organic",
	"chopped",
	"diced",
	"sliced",
	"minced",
	"ground",
	"whole",
}

var (
	// 底線保留在允許集合內，正規化結果再跑一次必須不變
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s_]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// ToCanonicalName 將自由文字的品名轉為正規化鍵
// 小寫、剝描述性前綴、去非英數字符、空白改底線；冪等且永不失敗
func ToCanonicalName(name string) string {
	canonical := strings.TrimSpace(strings.ToLower(name))

	for _, prefix := range stripPrefixes {
		rest, found := strings.CutPrefix(canonical, prefix)
		if !found {
			continue
		}
		// 前綴後必須接空白，避免把 "grounds" 剝成 "s"
		trimmed := strings.TrimLeft(rest, " \t\n\f\r")
		if trimmed == rest {
			continue
		}
		canonical = trimmed
		break
	}

	canonical = nonAlphanumeric.ReplaceAllString(canonical, "")
	canonical = whitespaceRun.ReplaceAllString(canonical, "_")
	canonical = strings.Trim(canonical, "_")

	return canonical
}
