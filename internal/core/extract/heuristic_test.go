package extract

import (
	"strings"
	"testing"
)

const heuristicFixture = `<!DOCTYPE html>
<html>
<head>
<title>Weeknight Chili - Some Blog</title>
<meta property="og:image" content="https://example.com/chili.jpg">
</head>
<body>
<article>
<h1 class="recipe-title">Weeknight Chili</h1>
<div class="recipe-ingredients">
<ul>
<li>1 lb ground beef</li>
<li>2 cans kidney beans</li>
<li>1 tbsp chili powder</li>
</ul>
</div>
<div class="recipe-instructions">
<ol>
<li>Brown the beef in a large pot.</li>
<li>Add the beans and spices, then simmer for 30 minutes.</li>
</ol>
</div>
<div class="recipe-notes">
<p>Leftovers taste even better the next day after the flavors meld.</p>
<p>Too short</p>
</div>
</article>
</body>
</html>`

func TestExtractWithHeuristics(t *testing.T) {
	recipe := ExtractWithHeuristics(heuristicFixture, "https://example.com/chili")
	if recipe == nil {
		t.Fatal("ExtractWithHeuristics returned nil")
	}

	if recipe.Title != "Weeknight Chili" {
		t.Errorf("Title = %q", recipe.Title)
	}
	if recipe.Image != "https://example.com/chili.jpg" {
		t.Errorf("Image = %q", recipe.Image)
	}

	if len(recipe.Ingredients) != 3 {
		t.Fatalf("len(Ingredients) = %d, want 3", len(recipe.Ingredients))
	}
	first := recipe.Ingredients[0]
	if first.Quantity != "1" || first.Unit != "lb" || first.Name != "ground beef" {
		t.Errorf("Ingredients[0] = %+v", first)
	}

	if len(recipe.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(recipe.Instructions))
	}
	if !strings.HasPrefix(recipe.Instructions[0], "Brown the beef") {
		t.Errorf("Instructions[0] = %q", recipe.Instructions[0])
	}

	// 過短的備註被過濾
	if len(recipe.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1: %+v", len(recipe.Notes), recipe.Notes)
	}
}

func TestExtractWithHeuristicsNoIngredients(t *testing.T) {
	html := `<html><body><h1>Just a story about soup</h1><p>No recipe here.</p></body></html>`
	if recipe := ExtractWithHeuristics(html, "https://example.com/story"); recipe != nil {
		t.Errorf("expected nil, got %+v", recipe)
	}
}

func TestExtractWithHeuristicsTitleFallback(t *testing.T) {
	html := `<html><head><title>Fallback Title</title></head><body>
	<div class="ingredients"><ul><li>1 cup lentils</li></ul></div>
	</body></html>`

	recipe := ExtractWithHeuristics(html, "https://example.com/lentils")
	if recipe == nil {
		t.Fatal("ExtractWithHeuristics returned nil")
	}
	if recipe.Title != "Fallback Title" {
		t.Errorf("Title = %q", recipe.Title)
	}
}

func TestExtractWithHeuristicsMultibyteLengths(t *testing.T) {
	// 長度門檻以字元計，中文等多位元組文字不因位元組數被誤判
	longIngredient := strings.Repeat("蒜末", 60)
	html := `<html><body>
	<div class="ingredients"><ul><li>` + longIngredient + `</li><li>2 cups rice</li></ul></div>
	<div class="instructions"><ol><li>攪拌均勻</li><li>小火慢燉三十分鐘直到湯汁收乾</li></ol></div>
	</body></html>`

	recipe := ExtractWithHeuristics(html, "https://example.com/rice")
	if recipe == nil {
		t.Fatal("ExtractWithHeuristics returned nil")
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("len(Ingredients) = %d, want 2", len(recipe.Ingredients))
	}
	if len(recipe.Instructions) != 1 {
		t.Fatalf("len(Instructions) = %d, want 1: %+v", len(recipe.Instructions), recipe.Instructions)
	}
	if recipe.Instructions[0] != "小火慢燉三十分鐘直到湯汁收乾" {
		t.Errorf("Instructions[0] = %q", recipe.Instructions[0])
	}
}

func TestExtractNotesFromHTML(t *testing.T) {
	html := `<html><body>
	<div class="wprm-recipe-notes-container">
	<ul>
	<li>Swap the cream for coconut milk to keep it dairy free.</li>
	<li>Swap the cream for coconut milk to keep it dairy free.</li>
	</ul>
	</div>
	</body></html>`

	notes := ExtractNotesFromHTML(html)
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1 (duplicates removed): %+v", len(notes), notes)
	}
}

func TestExtractNotesFromHTMLMultibyte(t *testing.T) {
	// 八個中文字是 24 個位元組，長度以字元計時仍算過短
	html := `<html><body><div class="recipe-notes">
	<p>隔夜冷藏風味更佳</p>
	<p>冷藏可保存三天，食用前以小火加熱即可恢復口感</p>
	</div></body></html>`

	notes := ExtractNotesFromHTML(html)
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1: %+v", len(notes), notes)
	}
	if notes[0] != "冷藏可保存三天，食用前以小火加熱即可恢復口感" {
		t.Errorf("notes[0] = %q", notes[0])
	}
}

func TestExtractNotesFromHTMLNone(t *testing.T) {
	if notes := ExtractNotesFromHTML(`<html><body><p>nothing</p></body></html>`); len(notes) != 0 {
		t.Errorf("expected no notes, got %+v", notes)
	}
}
