package pantry

import (
	"regexp"
	"strings"

	"recipe-importer/internal/core/ingredient"
	"recipe-importer/internal/pkg/common"
)

// 這些字樣代表用量微小，不影響粗略庫存等級
var smallAmountPhrases = regexp.MustCompile(`to taste|garnish|as needed|optional`)

type amountSize string

const (
	amountSmall    amountSize = "small"
	amountModerate amountSize = "moderate"
)

// 粗略庫存轉移表：(目前等級, 用量大小) → 新等級
// out 為終態
var bulkDepletionTable = map[common.BulkQuantity]map[amountSize]common.BulkQuantity{
	common.BulkFull: {amountSmall: common.BulkFull, amountModerate: common.BulkHalf},
	common.BulkHalf: {amountSmall: common.BulkHalf, amountModerate: common.BulkLow},
	common.BulkLow:  {amountSmall: common.BulkLow, amountModerate: common.BulkOut},
	common.BulkOut:  {amountSmall: common.BulkOut, amountModerate: common.BulkOut},
}

// parseAmount 將食材數量文字轉為數值，缺漏、解析失敗或非正值一律當 1
func parseAmount(quantity string) float64 {
	if quantity == "" {
		return 1
	}
	low, _, err := ingredient.QuantityToNumbers(quantity)
	if err != nil || low <= 0 {
		return 1
	}
	return low
}

// IsSmallAmount 判斷食譜用量是否屬於「微量」
// 微量：to taste / garnish / as needed / optional、pinch、dash、茶匙，以及 ≤1 的大匙
func IsSmallAmount(quantity, unit string) bool {
	if quantity == "" && unit == "" {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(quantity + " " + unit))

	if smallAmountPhrases.MatchString(text) {
		return true
	}
	if strings.Contains(text, "pinch") || strings.Contains(text, "dash") {
		return true
	}
	if strings.Contains(text, "tsp") || strings.Contains(text, "teaspoon") {
		return true
	}
	if strings.Contains(text, "tbsp") || strings.Contains(text, "tablespoon") {
		return parseAmount(quantity) <= 1
	}

	return false
}

// SuggestDepletion 依品項的追蹤方式決定如何扣減
// 純函數、無 I/O；不負責決定「配對到哪個品項」，只決定「扣多少」
func SuggestDepletion(item *common.PantryItem, ingredientQuantity, ingredientUnit string) common.DepletionSuggestion {
	switch item.QuantityType {
	case common.QuantityBinary:
		// 兩態品項用過即標記為無，沒有部分狀態
		if item.BinaryQuantity == common.BinaryOut {
			return common.DepletionSuggestion{Action: common.ActionNoChange}
		}
		return common.DepletionSuggestion{Action: common.ActionSetBinaryOut}

	case common.QuantityCountable:
		amount := parseAmount(ingredientQuantity)
		if quantityOrZero(item) <= 0 {
			return common.DepletionSuggestion{Action: common.ActionNoChange}
		}
		// 呼叫端負責把結果下限鎖在 0，不得產生負庫存
		return common.DepletionSuggestion{Action: common.ActionDeduct, DeductQuantity: amount}

	case common.QuantityBulk:
		currentLevel := item.BulkQuantity
		if currentLevel == "" {
			currentLevel = common.BulkFull
		}
		if currentLevel == common.BulkOut {
			return common.DepletionSuggestion{Action: common.ActionNoChange}
		}

		size := amountModerate
		if IsSmallAmount(ingredientQuantity, ingredientUnit) {
			size = amountSmall
		}

		newLevel := bulkDepletionTable[currentLevel][size]
		if newLevel == currentLevel {
			return common.DepletionSuggestion{Action: common.ActionNoChange}
		}
		return common.DepletionSuggestion{Action: common.ActionReduceBulk, NewBulkQuantity: newLevel}
	}

	return common.DepletionSuggestion{Action: common.ActionNoChange}
}
