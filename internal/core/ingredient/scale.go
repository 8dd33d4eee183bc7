package ingredient

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipe-importer/internal/pkg/common"
)

// 範圍分隔符，"2-3" 或 "2 - 3" 都視為範圍
var rangeSeparator = regexp.MustCompile(`\s*-\s*`)

// 帶分數："1 1/2" 或展開後的 "1 0.5"
var mixedNumberPattern = regexp.MustCompile(`^(\d+)\s+([\d.]+(?:/\d+)?)$`)

// 顯示時優先使用的常用分數
var displayFractions = []struct {
	val float64
	str string
}{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{1.0 / 3, "1/3"},
	{0.375, "3/8"},
	{0.5, "1/2"},
	{0.625, "5/8"},
	{2.0 / 3, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
}

// fractionToDecimal 將 "a/b" 轉為數值，也接受純數字
func fractionToDecimal(s string) (float64, error) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("division by zero in fraction %q", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseSingle 解析單一數量段：帶分數、分數或純數字
func parseSingle(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if m := mixedNumberPattern.FindStringSubmatch(s); m != nil {
		whole, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, err
		}
		part, err := fractionToDecimal(m[2])
		if err != nil {
			return 0, err
		}
		return whole + part, nil
	}

	return fractionToDecimal(s)
}

// QuantityToNumbers 將數量字串轉為 [low, high] 數值區間
// 非範圍時兩者相等
func QuantityToNumbers(quantity string) (low, high float64, err error) {
	// Unicode 分數先展開成十進位，"1½" 變成帶分數 "1 0.5"
	normalized := strings.TrimSpace(expandFractions(quantity))

	parts := rangeSeparator.Split(normalized, -1)
	low, err = parseSingle(parts[0])
	if err != nil {
		return 0, 0, err
	}

	high = low
	if len(parts) > 1 {
		high, err = parseSingle(parts[1])
		if err != nil {
			return 0, 0, err
		}
	}

	return low, high, nil
}

// FormatNumber 將數值渲染為友善字串，偏好常用分數
func FormatNumber(n float64) string {
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	whole := math.Floor(n)
	frac := n - whole

	for _, f := range displayFractions {
		if math.Abs(frac-f.val) < 0.01 {
			if whole > 0 {
				return fmt.Sprintf("%d %s", int64(whole), f.str)
			}
			return f.str
		}
	}

	// 四捨五入到兩位小數，去掉結尾的零
	rounded := math.Round(n*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// ScaleQuantity 依倍率縮放數量字串
// 解析不出數值時原樣回傳
func ScaleQuantity(quantity string, multiplier float64) string {
	low, high, err := QuantityToNumbers(quantity)
	if err != nil {
		return quantity
	}

	if low == high {
		return FormatNumber(low * multiplier)
	}
	return FormatNumber(low*multiplier) + "-" + FormatNumber(high*multiplier)
}

// FormatIngredient 產生縮放後的顯示文字
// 沒有解析出數量或倍率為 1 時，原樣回傳 original，保留使用者看到的格式
func FormatIngredient(ing common.Ingredient, multiplier float64) string {
	if ing.Quantity == "" || multiplier == 1 {
		return ing.Original
	}

	parts := []string{ScaleQuantity(ing.Quantity, multiplier)}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	if ing.Name != "" {
		parts = append(parts, ing.Name)
	}
	return strings.Join(parts, " ")
}
