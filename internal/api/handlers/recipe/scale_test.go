package recipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupScaleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(nil)
	router.POST("/api/v1/recipe/scale", h.HandleScale)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleScale(t *testing.T) {
	router := setupScaleRouter()

	body := `{
		"multiplier": 2,
		"ingredients": [
			{"original": "1/2 cup sugar", "name": "sugar", "quantity": "1/2", "unit": "cup"},
			{"original": "2-3 cups broth", "name": "broth", "quantity": "2-3", "unit": "cups"},
			{"original": "Salt to taste"}
		]
	}`

	w := postJSON(t, router, "/api/v1/recipe/scale", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ScaleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Ingredients) != 3 {
		t.Fatalf("len(Ingredients) = %d", len(resp.Ingredients))
	}

	first := resp.Ingredients[0]
	if first.ScaledQuantity != "1" || first.Display != "1 cup sugar" {
		t.Errorf("first = %+v", first)
	}

	second := resp.Ingredients[1]
	if second.ScaledQuantity != "4-6" {
		t.Errorf("second.ScaledQuantity = %q", second.ScaledQuantity)
	}

	// 沒有數量的食材原樣保留
	third := resp.Ingredients[2]
	if third.Display != "Salt to taste" || third.ScaledQuantity != "" {
		t.Errorf("third = %+v", third)
	}
}

func TestHandleScaleUnitMultiplierPassThrough(t *testing.T) {
	router := setupScaleRouter()

	body := `{
		"multiplier": 1,
		"ingredients": [{"original": "1½ tsp vanilla", "quantity": "1½", "unit": "tsp", "name": "vanilla"}]
	}`

	w := postJSON(t, router, "/api/v1/recipe/scale", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ScaleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Ingredients[0].Display != "1½ tsp vanilla" {
		t.Errorf("Display = %q", resp.Ingredients[0].Display)
	}
}

func TestHandleScaleInvalidMultiplier(t *testing.T) {
	router := setupScaleRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale", `{"multiplier": -1, "ingredients": [{"original": "1 cup rice"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestHandleScaleMissingBody(t *testing.T) {
	router := setupScaleRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}
