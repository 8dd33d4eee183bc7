package pantry

import (
	"testing"

	"recipe-importer/internal/pkg/common"
)

func floatPtr(f float64) *float64 { return &f }

func TestMatchIngredientExact(t *testing.T) {
	items := []common.PantryItem{
		{ID: "1", Name: "Olive Oil", CanonicalName: "olive_oil", QuantityType: common.QuantityBulk, BulkQuantity: common.BulkFull},
		{ID: "2", Name: "Black Beans", CanonicalName: "black_beans", QuantityType: common.QuantityCountable, Quantity: floatPtr(3)},
	}

	m := MatchIngredient("Canned Black Beans", items)
	if m == nil || m.Item.ID != "2" {
		t.Fatalf("expected exact match on black_beans, got %+v", m)
	}
	if m.Status != StatusStocked {
		t.Errorf("status = %q, want stocked", m.Status)
	}
}

func TestMatchIngredientSubstring(t *testing.T) {
	items := []common.PantryItem{
		{ID: "1", Name: "Olive Oil", CanonicalName: "olive_oil", QuantityType: common.QuantityBulk, BulkQuantity: common.BulkFull},
	}

	// 食材名稱包含品項名稱：子字串層應命中
	m := MatchIngredient("extra virgin olive oil", items)
	if m == nil || m.Item.ID != "1" {
		t.Fatalf("expected substring match on olive_oil, got %+v", m)
	}
}

func TestMatchIngredientWordOverlap(t *testing.T) {
	items := []common.PantryItem{
		{ID: "1", Name: "Chicken Breast", CanonicalName: "chicken_breast", QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryHave},
		{ID: "2", Name: "Chicken Thighs", CanonicalName: "chicken_thighs_boneless", QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryHave},
	}

	m := MatchIngredient("boneless chicken thighs", items)
	if m == nil || m.Item.ID != "2" {
		t.Fatalf("expected overlap match on chicken_thighs_boneless, got %+v", m)
	}
}

func TestMatchIngredientOverlapRequiresFullCoverage(t *testing.T) {
	// 只共享一個弱詞不足以成立比對
	items := []common.PantryItem{
		{ID: "1", Name: "Chicken Stock", CanonicalName: "chicken_stock_low_sodium", QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryHave},
	}

	if m := MatchIngredient("chicken thighs bone in", items); m != nil {
		t.Errorf("expected no match, got %+v", m)
	}
}

func TestMatchIngredientTieKeepsFirst(t *testing.T) {
	// 重疊同分時保留先出現的品項
	items := []common.PantryItem{
		{ID: "1", Name: "Tomato Basil Sauce", CanonicalName: "tomato_basil_sauce", QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryHave},
		{ID: "2", Name: "Sauce of Tomato", CanonicalName: "sauce_of_tomato", QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryHave},
	}

	m := MatchIngredient("tomato sauce", items)
	if m == nil || m.Item.ID != "1" {
		t.Fatalf("expected first-seen tie winner, got %+v", m)
	}
}

func TestMatchIngredientNoCandidates(t *testing.T) {
	items := []common.PantryItem{
		{ID: "1", Name: "Olive Oil", CanonicalName: "olive_oil"},
	}

	if m := MatchIngredient("", items); m != nil {
		t.Errorf("empty name should not match, got %+v", m)
	}
	if m := MatchIngredient("!!!", items); m != nil {
		t.Errorf("unmatchable name should return nil, got %+v", m)
	}
}

func TestItemStatus(t *testing.T) {
	tests := []struct {
		name string
		item common.PantryItem
		want MatchStatus
	}{
		{"bulk out", common.PantryItem{QuantityType: common.QuantityBulk, BulkQuantity: common.BulkOut}, StatusOut},
		{"bulk low", common.PantryItem{QuantityType: common.QuantityBulk, BulkQuantity: common.BulkLow}, StatusLow},
		{"bulk full", common.PantryItem{QuantityType: common.QuantityBulk, BulkQuantity: common.BulkFull}, StatusStocked},
		{"binary out", common.PantryItem{QuantityType: common.QuantityBinary, BinaryQuantity: common.BinaryOut}, StatusOut},
		{"countable zero", common.PantryItem{QuantityType: common.QuantityCountable, Quantity: floatPtr(0)}, StatusOut},
		{"countable nil quantity", common.PantryItem{QuantityType: common.QuantityCountable}, StatusOut},
		{"countable under threshold", common.PantryItem{QuantityType: common.QuantityCountable, Quantity: floatPtr(2), RestockThreshold: floatPtr(3)}, StatusLow},
		{"countable above threshold", common.PantryItem{QuantityType: common.QuantityCountable, Quantity: floatPtr(5), RestockThreshold: floatPtr(3)}, StatusStocked},
		{"countable no threshold", common.PantryItem{QuantityType: common.QuantityCountable, Quantity: floatPtr(1)}, StatusStocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemStatus(&tt.item); got != tt.want {
				t.Errorf("itemStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
