package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-importer/internal/core/extract/cache"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"
)

func testConfig() *config.Config {
	return &config.Config{
		Fetch: config.FetchConfig{
			UserAgent:        "test-agent",
			Accept:           "text/html",
			Timeout:          5 * time.Second,
			MaxResponseBytes: 10 * 1024 * 1024,
		},
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

func TestExtractRecipeFromStructuredData(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{
	  "@type": "Recipe",
	  "name": "Mac &amp; Cheese",
	  "recipeIngredient": ["8 oz macaroni", "2 cups cheddar"],
	  "recipeInstructions": ["Boil the macaroni until al dente.", "Stir in the cheese."],
	  "cookTime": "PT20M"
	}
	</script></head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	recipe, err := svc.ExtractRecipe(context.Background(), server.URL+"/mac")
	if err != nil {
		t.Fatalf("ExtractRecipe: %v", err)
	}

	// 標題中的 HTML 實體已解碼
	if recipe.Title != "Mac & Cheese" {
		t.Errorf("Title = %q", recipe.Title)
	}
	if recipe.CookTime != "20 mins" {
		t.Errorf("CookTime = %q", recipe.CookTime)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("len(Ingredients) = %d", len(recipe.Ingredients))
	}
}

func TestExtractRecipeHeuristicFallback(t *testing.T) {
	page := `<html><head><title>Garden Salad</title></head><body>
	<h1>Garden Salad</h1>
	<div class="ingredients"><ul><li>2 cups lettuce</li><li>1 tomato</li></ul></div>
	<div class="instructions"><ol><li>Chop everything and toss together.</li></ol></div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	recipe, err := svc.ExtractRecipe(context.Background(), server.URL+"/salad")
	if err != nil {
		t.Fatalf("ExtractRecipe: %v", err)
	}
	if recipe.Title != "Garden Salad" {
		t.Errorf("Title = %q", recipe.Title)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("len(Ingredients) = %d", len(recipe.Ingredients))
	}
}

func TestExtractRecipeAttachesGroups(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{
	  "@type": "Recipe",
	  "name": "Layered Pasta",
	  "recipeIngredient": ["8 oz pasta", "1 tsp salt", "2 cups tomatoes", "1 clove garlic"],
	  "recipeInstructions": ["Cook the pasta until al dente.", "Blend the sauce and combine."]
	}
	</script></head><body>
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">For the pasta</h4>
	<ul><li class="wprm-recipe-ingredient">8 oz pasta</li><li class="wprm-recipe-ingredient">1 tsp salt</li></ul>
	</div>
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">For the sauce</h4>
	<ul><li class="wprm-recipe-ingredient">2 cups tomatoes</li><li class="wprm-recipe-ingredient">1 clove garlic</li></ul>
	</div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	recipe, err := svc.ExtractRecipe(context.Background(), server.URL+"/pasta")
	if err != nil {
		t.Fatalf("ExtractRecipe: %v", err)
	}
	if len(recipe.Ingredients) != 4 {
		t.Fatalf("len(Ingredients) = %d, want 4", len(recipe.Ingredients))
	}

	wantGroups := []string{"For the pasta", "For the pasta", "For the sauce", "For the sauce"}
	for i, want := range wantGroups {
		if got := recipe.Ingredients[i].Group; got != want {
			t.Errorf("Ingredients[%d].Group = %q, want %q", i, got, want)
		}
	}
}

func TestExtractRecipeGroupCountMismatchDiscarded(t *testing.T) {
	// 頁面標記比結構化資料多一個項目，分組整批捨棄而非部分套用
	page := `<html><head><script type="application/ld+json">
	{
	  "@type": "Recipe",
	  "name": "Layered Pasta",
	  "recipeIngredient": ["8 oz pasta", "2 cups tomatoes", "1 clove garlic"],
	  "recipeInstructions": ["Cook the pasta until al dente."]
	}
	</script></head><body>
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">For the pasta</h4>
	<ul><li class="wprm-recipe-ingredient">8 oz pasta</li><li class="wprm-recipe-ingredient">1 tsp salt</li></ul>
	</div>
	<div class="wprm-recipe-ingredient-group">
	<h4 class="wprm-recipe-ingredient-group-name">For the sauce</h4>
	<ul><li class="wprm-recipe-ingredient">2 cups tomatoes</li><li class="wprm-recipe-ingredient">1 clove garlic</li></ul>
	</div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	recipe, err := svc.ExtractRecipe(context.Background(), server.URL+"/pasta")
	if err != nil {
		t.Fatalf("ExtractRecipe: %v", err)
	}
	for i, ing := range recipe.Ingredients {
		if ing.Group != "" {
			t.Errorf("Ingredients[%d].Group = %q, want empty", i, ing.Group)
		}
	}
}

func TestExtractRecipeSupplementsNotesFromMarkup(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{
	  "@type": "Recipe",
	  "name": "Overnight Dough",
	  "recipeIngredient": ["3 cups flour"],
	  "recipeInstructions": ["Mix and let rest overnight."]
	}
	</script></head><body>
	<div class="tasty-recipes-notes-body">
	<p>Letting the dough rest overnight deepens the flavor.</p>
	</div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	recipe, err := svc.ExtractRecipe(context.Background(), server.URL+"/dough")
	if err != nil {
		t.Fatalf("ExtractRecipe: %v", err)
	}
	if len(recipe.Notes) != 1 || recipe.Notes[0] != "Letting the dough rest overnight deepens the flavor." {
		t.Errorf("Notes = %+v", recipe.Notes)
	}
}

func TestExtractRecipeFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	_, err := svc.ExtractRecipe(context.Background(), server.URL+"/missing")
	if err == nil {
		t.Fatal("expected error")
	}

	var customErr *common.CustomError
	if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeFetchFailed {
		t.Errorf("err = %v, want code %s", err, common.ErrCodeFetchFailed)
	}
}

func TestExtractRecipeNoRecipeFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>just an article</p></body></html>`))
	}))
	defer server.Close()

	svc := NewService(testConfig(), nil)
	_, err := svc.ExtractRecipe(context.Background(), server.URL+"/article")
	if !errors.Is(err, common.ErrNoRecipeFound) {
		t.Errorf("err = %v, want ErrNoRecipeFound", err)
	}
}

func TestExtractRecipeCaching(t *testing.T) {
	fetchCount := 0
	page := `<html><head><script type="application/ld+json">
	{"@type": "Recipe", "name": "Cached Soup", "recipeIngredient": ["1 onion"], "recipeInstructions": ["Simmer until soft."]}
	</script></head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetchCount++
		w.Write([]byte(page))
	}))
	defer server.Close()

	cfg := testConfig()
	manager := cache.NewManager(cfg)
	defer manager.Close()

	svc := NewService(cfg, manager)

	// 同一網址的不同寫法（fragment、尾端斜線）應命中同一快取條目
	urls := []string{
		server.URL + "/soup",
		server.URL + "/soup#comments",
		server.URL + "/soup/",
	}
	for _, u := range urls {
		recipe, err := svc.ExtractRecipe(context.Background(), u)
		if err != nil {
			t.Fatalf("ExtractRecipe(%q): %v", u, err)
		}
		if recipe.Title != "Cached Soup" {
			t.Errorf("Title = %q", recipe.Title)
		}
	}

	if fetchCount != 1 {
		t.Errorf("fetchCount = %d, want 1", fetchCount)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/recipe/", "https://example.com/recipe"},
		{"https://example.com/recipe#reviews", "https://example.com/recipe"},
		{"https://example.com/", "https://example.com/"},
		{"https://example.com/a/b?scale=2", "https://example.com/a/b?scale=2"},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
