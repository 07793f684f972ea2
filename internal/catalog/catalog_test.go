package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Kavirubc/shopcopy/internal/config"
)

func TestMockProducts(t *testing.T) {
	products, err := MockSource{}.Products(context.Background())
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[0].ID != "prod_001" || products[1].ID != "prod_002" {
		t.Errorf("ids = %s, %s", products[0].ID, products[1].ID)
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			t.Errorf("fixture %s invalid: %v", p.ID, err)
		}
	}

	// Callers get independent copies
	products[0].Tags[0] = "changed"
	if MockProducts()[0].Tags[0] != "organic" {
		t.Errorf("MockProducts() shares state between calls")
	}
}

func TestGetByID(t *testing.T) {
	p, err := GetByID(context.Background(), MockSource{}, "prod_002")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p.Title != "Anti-Aging Serum Premium Formula" {
		t.Errorf("Title = %q", p.Title)
	}

	if _, err := GetByID(context.Background(), MockSource{}, "prod_999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(context.Background(), MockSource{}, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("Select(nil) = %d products, err %v", len(all), err)
	}

	picked, err := Select(context.Background(), MockSource{}, []string{"prod_002", "prod_001"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if picked[0].ID != "prod_002" || picked[1].ID != "prod_001" {
		t.Errorf("Select() order = %s, %s", picked[0].ID, picked[1].ID)
	}

	if _, err := Select(context.Background(), MockSource{}, []string{"nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Select(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.CatalogConfig
		wantErr bool
	}{
		{"mock", config.CatalogConfig{Source: "mock"}, false},
		{"default", config.CatalogConfig{}, false},
		{"file", config.CatalogConfig{Source: "file", Path: "products.json"}, false},
		{"file without path", config.CatalogConfig{Source: "file"}, true},
		{"unknown", config.CatalogConfig{Source: "shopify"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSource() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseProducts_PlainArray(t *testing.T) {
	data := `[
		{"id": "p1", "title": "Night Cream", "description": "Rich cream.", "vendor": "Acme",
		 "product_type": "Skincare", "tags": ["night"], "seo_title": "", "seo_description": "", "price": 19.5}
	]`

	products, err := ParseProducts([]byte(data))
	if err != nil {
		t.Fatalf("ParseProducts() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	p := products[0]
	if p.ID != "p1" || p.Title != "Night Cream" || p.Description != "Rich cream." || p.Price != 19.5 {
		t.Errorf("product = %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"night"}) {
		t.Errorf("Tags = %v", p.Tags)
	}
}

func TestParseProducts_StorefrontExport(t *testing.T) {
	data := `{"products": [{
		"id": 632910392,
		"title": "Rose Serum",
		"body_html": "<p>Hydrating <strong>rose</strong> serum.</p><ul><li>Vegan</li><li>Gentle</li></ul><script>track()</script>",
		"vendor": "Petal",
		"product_type": "Skincare",
		"tags": "rose, serum, ",
		"metafields_global_title_tag": "Rose Serum | Petal",
		"variants": [{"price": "42.00"}]
	}]}`

	products, err := ParseProducts([]byte(data))
	if err != nil {
		t.Fatalf("ParseProducts() error = %v", err)
	}
	p := products[0]
	if p.ID != "632910392" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Description != "Hydrating rose serum. Vegan Gentle" {
		t.Errorf("Description = %q", p.Description)
	}
	if !reflect.DeepEqual(p.Tags, []string{"rose", "serum"}) {
		t.Errorf("Tags = %v", p.Tags)
	}
	if p.SEOTitle != "Rose Serum | Petal" {
		t.Errorf("SEOTitle = %q", p.SEOTitle)
	}
	if p.Price != 42 {
		t.Errorf("Price = %v", p.Price)
	}
}

func TestParseProducts_NormalizesText(t *testing.T) {
	// "Crème" spelled with a combining grave accent
	data := `[{"id": "p1", "title": "Cre\u0300me Riche"}]`

	products, err := ParseProducts([]byte(data))
	if err != nil {
		t.Fatalf("ParseProducts() error = %v", err)
	}
	if products[0].Title != "Cr\u00e8me Riche" {
		t.Errorf("Title = %q, want NFC form", products[0].Title)
	}
}

func TestParseProducts_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "nope"},
		{"bad wrapper", `{"products": 3}`},
		{"bad tags", `[{"id": "p", "tags": 5}]`},
		{"negative price", `[{"id": "p", "price": -1}]`},
		{"bad id", `[{"id": {"x": 1}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProducts([]byte(tt.input)); err == nil {
				t.Errorf("ParseProducts(%s) expected error", tt.input)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`[{"id": "p1", "title": "Body Oil"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	products, err := NewFileSource(path).Products(context.Background())
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 1 || products[0].Title != "Body Oil" {
		t.Errorf("products = %+v", products)
	}

	if _, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Products(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"<p>One</p><p>Two</p>", "One Two"},
		{"Line<br>break", "Line break"},
		{"<style>p{}</style><div>  spaced   out </div>", "spaced out"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractText(tt.input); got != tt.expect {
			t.Errorf("ExtractText(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
