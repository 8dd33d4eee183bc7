package pantry

import (
	"strings"

	"recipe-importer/internal/pkg/common"
)

// MatchStatus 比對到的品項庫存狀態
type MatchStatus string

const (
	StatusStocked MatchStatus = "stocked"
	StatusLow     MatchStatus = "low"
	StatusOut     MatchStatus = "out"
)

// Match 食材與儲藏品項的比對結果
// item 為參照，核心不擁有也不修改
type Match struct {
	Item   *common.PantryItem `json:"item"`
	Status MatchStatus        `json:"status"`
}

func isItemOut(item *common.PantryItem) bool {
	switch item.QuantityType {
	case common.QuantityBulk:
		return item.BulkQuantity == common.BulkOut
	case common.QuantityBinary:
		return item.BinaryQuantity == common.BinaryOut
	case common.QuantityCountable:
		return quantityOrZero(item) == 0
	}
	return false
}

func isItemLow(item *common.PantryItem) bool {
	if item.QuantityType == common.QuantityBulk {
		return item.BulkQuantity == common.BulkLow
	}
	if item.QuantityType == common.QuantityCountable && item.RestockThreshold != nil {
		q := quantityOrZero(item)
		return q > 0 && q <= *item.RestockThreshold
	}
	return false
}

func quantityOrZero(item *common.PantryItem) float64 {
	if item.Quantity == nil {
		return 0
	}
	return *item.Quantity
}

func itemStatus(item *common.PantryItem) MatchStatus {
	if isItemOut(item) {
		return StatusOut
	}
	if isItemLow(item) {
		return StatusLow
	}
	return StatusStocked
}

// MatchIngredient 在儲藏清單中找出與食材名稱最匹配的品項
// 依序嘗試：正規化名稱完全相等、子字串包含（雙向）、字詞重疊
// 找不到時回傳 nil
func MatchIngredient(ingredientName string, items []common.PantryItem) *Match {
	canonical := ToCanonicalName(ingredientName)
	if canonical == "" {
		return nil
	}

	// 第一層：完全相等
	for i := range items {
		if items[i].CanonicalName == canonical {
			return &Match{Item: &items[i], Status: itemStatus(&items[i])}
		}
	}

	// 第二層：子字串包含，任一方向都算
	for i := range items {
		if strings.Contains(items[i].CanonicalName, canonical) || strings.Contains(canonical, items[i].CanonicalName) {
			return &Match{Item: &items[i], Status: itemStatus(&items[i])}
		}
	}

	// 第三層：字詞重疊，只看長度大於 2 的詞
	canonicalWords := significantWords(canonical)
	if len(canonicalWords) == 0 {
		return nil
	}

	var best *common.PantryItem
	bestOverlap := 0

	for i := range items {
		itemWords := significantWords(items[i].CanonicalName)
		overlap := countOverlap(canonicalWords, itemWords)
		// 較短一方的詞必須全部被涵蓋，避免單一弱詞勝出
		// 同分時保留先看到的候選（線性掃描順序）
		if overlap > bestOverlap && overlap >= min(len(canonicalWords), len(itemWords)) {
			bestOverlap = overlap
			best = &items[i]
		}
	}

	if best != nil {
		return &Match{Item: best, Status: itemStatus(best)}
	}

	return nil
}

func significantWords(canonical string) []string {
	var words []string
	for _, w := range strings.Split(canonical, "_") {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func countOverlap(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, w := range b {
		set[w] = struct{}{}
	}
	count := 0
	for _, w := range a {
		if _, ok := set[w]; ok {
			count++
		}
	}
	return count
}
