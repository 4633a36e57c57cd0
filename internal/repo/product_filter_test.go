package repo

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/models"
)

var (
	filterA = models.Product{ID: 1, Name: "A", Price: 100, Category: "Shoes", Brand: "Acme"}
	filterB = models.Product{ID: 2, Name: "B", Price: 200, Category: "Bags", Brand: "Zed"}
	filterC = models.Product{ID: 3, Name: "C", Price: 300, Category: "Shoes", Brand: "Zed"}
)

func ids(products []models.Product) []int {
	out := []int{}
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts_PriceRange(t *testing.T) {
	pf := DefaultProductFilter(300)
	pf.SetPriceRange(0, 150)

	got := FilterProducts([]models.Product{filterA, filterB}, pf)
	if !reflect.DeepEqual(ids(got), []int{1}) {
		t.Errorf("expected [1], got %v", ids(got))
	}
}

func TestFilterProducts_BoundsInclusive(t *testing.T) {
	pf := DefaultProductFilter(300)
	pf.SetPriceRange(100, 200)

	got := FilterProducts([]models.Product{filterA, filterB, filterC}, pf)
	if !reflect.DeepEqual(ids(got), []int{1, 2}) {
		t.Errorf("expected [1 2], got %v", ids(got))
	}
}

func TestFilterProducts_Dimensions(t *testing.T) {
	all := []models.Product{filterA, filterB, filterC}

	tests := []struct {
		name       string
		categories []string
		brands     []string
		want       []int
	}{
		{name: "no restriction", want: []int{1, 2, 3}},
		{name: "one category", categories: []string{"Shoes"}, want: []int{1, 3}},
		{name: "categories widen", categories: []string{"Bags", "Shoes"}, want: []int{1, 2, 3}},
		{name: "one brand", brands: []string{"Zed"}, want: []int{2, 3}},
		{name: "category and brand narrow", categories: []string{"Shoes"}, brands: []string{"Zed"}, want: []int{3}},
		{name: "no match", categories: []string{"Bags"}, brands: []string{"Acme"}, want: []int{}},
		{name: "unknown category", categories: []string{"Hats"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := DefaultProductFilter(300)
			pf.Categories = tt.categories
			pf.Brands = tt.brands

			got := FilterProducts(all, pf)
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestFilterProducts_EmptySelectionEqualsAllSelected(t *testing.T) {
	r := NewDefaultCatalogRepository()
	all := r.GetAll()

	none := DefaultProductFilter(r.PriceCeiling(100))
	every := none.Clone()
	every.Categories = r.Categories()
	every.Brands = r.Brands()

	if !reflect.DeepEqual(FilterProducts(all, none), FilterProducts(all, every)) {
		t.Error("empty selection should behave like selecting every value")
	}
	if len(FilterProducts(all, none)) != len(all) {
		t.Error("default filter should keep the full catalog")
	}
}

func TestFilterProducts_SubsetAndPredicate(t *testing.T) {
	r := NewDefaultCatalogRepository()
	all := r.GetAll()
	categories := r.Categories()
	brands := r.Brands()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		pf := DefaultProductFilter(r.PriceCeiling(100))
		pf.SetPriceRange(rng.Intn(14000), rng.Intn(14000))
		for _, c := range categories {
			if rng.Intn(3) == 0 {
				pf.ToggleCategory(c)
			}
		}
		for _, b := range brands {
			if rng.Intn(3) == 0 {
				pf.ToggleBrand(b)
			}
		}

		got := FilterProducts(all, pf)

		var want []int
		for _, p := range all {
			ok := p.Price >= pf.MinPrice && p.Price <= pf.MaxPrice &&
				(len(pf.Categories) == 0 || slices.Contains(pf.Categories, p.Category)) &&
				(len(pf.Brands) == 0 || slices.Contains(pf.Brands, p.Brand))
			if ok {
				want = append(want, p.ID)
			}
		}
		if want == nil {
			want = []int{}
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("filter %+v: expected %v, got %v", pf, want, ids(got))
		}
	}
}

func TestSetPriceRange_ClampsAndOrders(t *testing.T) {
	tests := []struct {
		name             string
		min, max         int
		wantMin, wantMax int
	}{
		{name: "inside", min: 100, max: 900, wantMin: 100, wantMax: 900},
		{name: "negative min", min: -50, max: 900, wantMin: 0, wantMax: 900},
		{name: "over ceiling", min: 100, max: 5000, wantMin: 100, wantMax: 1000},
		{name: "reversed", min: 800, max: 200, wantMin: 200, wantMax: 800},
		{name: "equal", min: 500, max: 500, wantMin: 500, wantMax: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := DefaultProductFilter(1000)
			pf.SetPriceRange(tt.min, tt.max)
			if pf.MinPrice != tt.wantMin || pf.MaxPrice != tt.wantMax {
				t.Errorf("expected [%d, %d], got [%d, %d]", tt.wantMin, tt.wantMax, pf.MinPrice, pf.MaxPrice)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	pf := DefaultProductFilter(1000)
	pf.ToggleCategory("Shoes")
	pf.ToggleCategory("Bags")
	pf.ToggleCategory("Shoes")
	if !reflect.DeepEqual(pf.Categories, []string{"Bags"}) {
		t.Errorf("expected [Bags], got %v", pf.Categories)
	}

	pf.ToggleBrand("Zed")
	pf.ToggleBrand("Zed")
	if pf.Brands != nil {
		t.Errorf("expected no brands, got %v", pf.Brands)
	}
}

func TestReset_RestoresDefault(t *testing.T) {
	pf := DefaultProductFilter(13000)
	pf.SetPriceRange(2000, 4000)
	pf.ToggleCategory("Обувь")
	pf.ToggleCategory("Одежда")
	pf.ToggleCategory("Обувь")
	pf.ToggleBrand("SoundMax")

	pf.Reset()

	if !reflect.DeepEqual(pf, DefaultProductFilter(13000)) {
		t.Errorf("expected default filter, got %+v", pf)
	}
}

func TestClone_DoesNotShareSelections(t *testing.T) {
	pf := DefaultProductFilter(1000)
	pf.ToggleCategory("Shoes")
	c := pf.Clone()
	c.Categories[0] = "Bags"
	if pf.Categories[0] != "Shoes" {
		t.Error("clone shares the categories slice")
	}
}
