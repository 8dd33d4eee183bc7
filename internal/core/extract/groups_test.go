package extract

import (
	"reflect"
	"testing"
)

func TestExtractIngredientGroupsTastyStyle(t *testing.T) {
	html := `<html><body>
	<div class="tasty-recipes-ingredients-body">
	<h4>For the crust</h4>
	<ul><li>2 cups flour</li><li>1 stick butter</li></ul>
	<h4>For the filling</h4>
	<ul><li>3 apples</li></ul>
	</div>
	</body></html>`

	groups := ExtractIngredientGroupsFromHTML(html)
	want := []string{"For the crust", "For the crust", "For the filling"}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %v, want %v", groups, want)
	}
}

func TestExtractIngredientGroupsWprmStyle(t *testing.T) {
	html := `<html><body>
	<div class="wprm-recipe-ingredients-container">
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">Sauce</h4>
	<ul><li class="wprm-recipe-ingredient">1 cup tomato puree</li></ul>
	</div>
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">Pasta</h4>
	<ul><li class="wprm-recipe-ingredient">1 lb spaghetti</li><li class="wprm-recipe-ingredient">1 tbsp salt</li></ul>
	</div>
	</div>
	</body></html>`

	groups := ExtractIngredientGroupsFromHTML(html)
	want := []string{"Sauce", "Pasta", "Pasta"}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %v, want %v", groups, want)
	}
}

func TestExtractIngredientGroupsGeneric(t *testing.T) {
	html := `<html><body>
	<div class="recipe-ingredients">
	<h3>Marinade</h3>
	<ul><li>2 tbsp soy sauce</li></ul>
	<h3>Stir fry</h3>
	<ul><li>1 lb chicken</li><li>2 bell peppers</li></ul>
	</div>
	</body></html>`

	groups := ExtractIngredientGroupsFromHTML(html)
	want := []string{"Marinade", "Stir fry", "Stir fry"}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups = %v, want %v", groups, want)
	}
}

func TestExtractIngredientGroupsUngroupedList(t *testing.T) {
	// 沒有任何分組標籤時不視為成功
	html := `<html><body>
	<div class="recipe-ingredients">
	<ul><li>1 cup rice</li><li>2 cups water</li></ul>
	</div>
	</body></html>`

	if groups := ExtractIngredientGroupsFromHTML(html); len(groups) != 0 {
		t.Errorf("expected no groups, got %v", groups)
	}
}

func TestExtractIngredientGroupsNone(t *testing.T) {
	if groups := ExtractIngredientGroupsFromHTML(`<html><body><p>hello</p></body></html>`); len(groups) != 0 {
		t.Errorf("expected no groups, got %v", groups)
	}
}
