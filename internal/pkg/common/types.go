package common

// Ingredient 單行食材
// original 永遠保留原始文字，quantity/unit/name 解析不到時留空
type Ingredient struct {
	Original string `json:"original"`
	Name     string `json:"name,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Group    string `json:"group,omitempty"`
}

// Recipe 擷取後的食譜
// 注意：欄位名稱、型別、可省略性對外不可變動，UI 與購物清單整合依賴此格式
type Recipe struct {
	Title        string       `json:"title"`
	Image        string       `json:"image,omitempty"`
	Description  string       `json:"description,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Notes        []string     `json:"notes,omitempty"`
	PrepTime     string       `json:"prepTime,omitempty"`
	CookTime     string       `json:"cookTime,omitempty"`
	TotalTime    string       `json:"totalTime,omitempty"`
	Servings     string       `json:"servings,omitempty"`
	SourceURL    string       `json:"sourceUrl"`
}

// QuantityType 庫存追蹤方式
type QuantityType string

const (
	QuantityBulk      QuantityType = "bulk"
	QuantityCountable QuantityType = "countable"
	QuantityBinary    QuantityType = "binary"
)

// BulkQuantity 粗略庫存量
type BulkQuantity string

const (
	BulkFull BulkQuantity = "full"
	BulkHalf BulkQuantity = "half"
	BulkLow  BulkQuantity = "low"
	BulkOut  BulkQuantity = "out"
)

// BinaryQuantity 有/無 兩態庫存
type BinaryQuantity string

const (
	BinaryHave BinaryQuantity = "have"
	BinaryOut  BinaryQuantity = "out"
)

// PantryCategory 食品儲藏分類
type PantryCategory string

const (
	CategoryProduce          PantryCategory = "produce"
	CategoryDairyEggs        PantryCategory = "dairy_eggs"
	CategoryProtein          PantryCategory = "protein"
	CategoryGrainsPasta      PantryCategory = "grains_pasta"
	CategoryCannedJarred     PantryCategory = "canned_jarred"
	CategoryFrozen           PantryCategory = "frozen"
	CategoryCondimentsSauces PantryCategory = "condiments_sauces"
	CategorySpices           PantryCategory = "spices_seasonings"
	CategoryBaking           PantryCategory = "baking"
	CategorySnacks           PantryCategory = "snacks"
	CategoryBeverages        PantryCategory = "beverages"
	CategoryOther            PantryCategory = "other"
)

// StorageLocation 存放位置
type StorageLocation string

const (
	LocationPantryShelf StorageLocation = "pantry_shelf"
	LocationFridge      StorageLocation = "fridge"
	LocationFreezer     StorageLocation = "freezer"
	LocationSpiceRack   StorageLocation = "spice_rack"
)

// PantryItem 儲藏室品項（外部系統持有，核心只讀取）
// quantityType 決定 quantity / bulkQuantity / binaryQuantity 三者中哪一個有效
type PantryItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	CanonicalName    string          `json:"canonicalName"`
	Category         PantryCategory  `json:"category"`
	StorageLocation  StorageLocation `json:"storageLocation"`
	QuantityType     QuantityType    `json:"quantityType"`
	Quantity         *float64        `json:"quantity,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	BulkQuantity     BulkQuantity    `json:"bulkQuantity,omitempty"`
	BinaryQuantity   BinaryQuantity  `json:"binaryQuantity,omitempty"`
	RestockThreshold *float64        `json:"restockThreshold,omitempty"`
}

// DepletionAction 扣減動作
type DepletionAction string

const (
	ActionDeduct       DepletionAction = "deduct"
	ActionReduceBulk   DepletionAction = "reduce_bulk"
	ActionSetBinaryOut DepletionAction = "set_binary_out"
	ActionNoChange     DepletionAction = "no_change"
	ActionNoMatch      DepletionAction = "no_match"
)

// DepletionSuggestion 單一品項的扣減建議，核心不負責寫回儲存層
type DepletionSuggestion struct {
	Action          DepletionAction `json:"action"`
	DeductQuantity  float64         `json:"deductQuantity,omitempty"`
	NewBulkQuantity BulkQuantity    `json:"newBulkQuantity,omitempty"`
}

// DeductionMatch 一條食材對應的扣減計畫（deduct API 的輸出單位）
type DeductionMatch struct {
	PantryItemID       string          `json:"pantryItemId,omitempty"`
	PantryItemName     string          `json:"pantryItemName"`
	RecipeIngredient   string          `json:"recipeIngredient"`
	IngredientQuantity string          `json:"ingredientQuantity,omitempty"`
	IngredientUnit     string          `json:"ingredientUnit,omitempty"`
	Action             DepletionAction `json:"action"`
	DeductQuantity     float64         `json:"deductQuantity,omitempty"`
	NewBulkQuantity    BulkQuantity    `json:"newBulkQuantity,omitempty"`
}
