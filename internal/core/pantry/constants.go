package pantry

import "recipe-importer/internal/pkg/common"

// CategoryLabels 分類的顯示名稱
var CategoryLabels = map[common.PantryCategory]string{
	common.CategoryProduce:          "Produce",
	common.CategoryDairyEggs:        "Dairy & Eggs",
	common.CategoryProtein:          "Protein",
	common.CategoryGrainsPasta:      "Grains & Pasta",
	common.CategoryCannedJarred:     "Canned & Jarred",
	common.CategoryFrozen:           "Frozen",
	common.CategoryCondimentsSauces: "Condiments & Sauces",
	common.CategorySpices:           "Spices & Seasonings",
	common.CategoryBaking:           "Baking",
	common.CategorySnacks:           "Snacks",
	common.CategoryBeverages:        "Beverages",
	common.CategoryOther:            "Other",
}

// StorageLocationLabels 存放位置的顯示名稱
var StorageLocationLabels = map[common.StorageLocation]string{
	common.LocationPantryShelf: "Pantry Shelf",
	common.LocationFridge:      "Fridge",
	common.LocationFreezer:     "Freezer",
	common.LocationSpiceRack:   "Spice Rack",
}

// 各分類預設的庫存追蹤方式
var defaultQuantityTypes = map[common.PantryCategory]common.QuantityType{
	common.CategoryProduce:          common.QuantityBinary,
	common.CategoryDairyEggs:        common.QuantityCountable,
	common.CategoryProtein:          common.QuantityBinary,
	common.CategoryGrainsPasta:      common.QuantityBinary,
	common.CategoryCannedJarred:     common.QuantityCountable,
	common.CategoryFrozen:           common.QuantityBinary,
	common.CategoryCondimentsSauces: common.QuantityBulk,
	common.CategorySpices:           common.QuantityBinary,
	common.CategoryBaking:           common.QuantityBulk,
	common.CategorySnacks:           common.QuantityBinary,
	common.CategoryBeverages:        common.QuantityCountable,
	common.CategoryOther:            common.QuantityBinary,
}

// 各分類預設的存放位置
var defaultStorageLocations = map[common.PantryCategory]common.StorageLocation{
	common.CategoryProduce:          common.LocationFridge,
	common.CategoryDairyEggs:        common.LocationFridge,
	common.CategoryProtein:          common.LocationFridge,
	common.CategoryGrainsPasta:      common.LocationPantryShelf,
	common.CategoryCannedJarred:     common.LocationPantryShelf,
	common.CategoryFrozen:           common.LocationFreezer,
	common.CategoryCondimentsSauces: common.LocationFridge,
	common.CategorySpices:           common.LocationSpiceRack,
	common.CategoryBaking:           common.LocationPantryShelf,
	common.CategorySnacks:           common.LocationPantryShelf,
	common.CategoryBeverages:        common.LocationFridge,
	common.CategoryOther:            common.LocationPantryShelf,
}

// 特定品項覆寫分類預設的追蹤方式（以正規化名稱為鍵）
var quantityTypeOverrides = map[string]common.QuantityType{
	"eggs":      common.QuantityCountable,
	"egg":       common.QuantityCountable,
	"butter":    common.QuantityCountable,
	"yogurt":    common.QuantityCountable,
	"milk":      common.QuantityBulk,
	"cream":     common.QuantityBulk,
	"oil":       common.QuantityBulk,
	"olive_oil": common.QuantityBulk,
	"flour":     common.QuantityBulk,
	"sugar":     common.QuantityBulk,
	"rice":      common.QuantityBulk,
	"pasta":     common.QuantityBinary,
	"salt":      common.QuantityBulk,
	"pepper":    common.QuantityBulk,
}

// DefaultQuantityType 回傳品項建檔時的預設追蹤方式
// 品項覆寫優先於分類預設
func DefaultQuantityType(category common.PantryCategory, canonicalName string) common.QuantityType {
	if qt, ok := quantityTypeOverrides[canonicalName]; ok {
		return qt
	}
	if qt, ok := defaultQuantityTypes[category]; ok {
		return qt
	}
	return common.QuantityBinary
}

// DefaultStorageLocation 回傳分類的預設存放位置
func DefaultStorageLocation(category common.PantryCategory) common.StorageLocation {
	if loc, ok := defaultStorageLocations[category]; ok {
		return loc
	}
	return common.LocationPantryShelf
}
