package vectordb

import (
	"reflect"
	"testing"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

func TestParseHostPort(t *testing.T) {
	tests := []struct {
		input string
		host  string
		port  int
	}{
		{"localhost", "localhost", 6334},
		{"localhost:6335", "localhost", 6335},
		{"http://qdrant:6334", "qdrant", 6334},
		{"https://abc.cloud.qdrant.io:6334/", "abc.cloud.qdrant.io", 6334},
		{"qdrant:notaport", "qdrant", 6334},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			host, port := parseHostPort(tt.input)
			if host != tt.host || port != tt.port {
				t.Errorf("parseHostPort(%q) = %s, %d; want %s, %d", tt.input, host, port, tt.host, tt.port)
			}
		})
	}
}

func TestIsCloudHost(t *testing.T) {
	if !isCloudHost("abc.eu-central.aws.cloud.qdrant.io") {
		t.Error("expected cloud host")
	}
	if isCloudHost("localhost") {
		t.Error("localhost is not a cloud host")
	}
}

func TestProductPayloadRoundTrip(t *testing.T) {
	p := models.Product{
		ID:             "prod_001",
		Title:          "Organic Face Cream",
		Description:    "Rich cream.",
		Vendor:         "LuxeBeauty",
		ProductType:    "Skincare",
		Tags:           []string{"organic", "face"},
		SEOTitle:       "Organic Face Cream",
		SEODescription: "",
		Price:          49.99,
	}

	payload := productPayload("demo", &p)
	if got := payload["store"].GetStringValue(); got != "demo" {
		t.Errorf("store = %q", got)
	}
	if got := payload["content_hash"].GetStringValue(); got != p.ContentHash() {
		t.Errorf("content_hash = %q, want %q", got, p.ContentHash())
	}

	if got := payloadToProduct(payload); !reflect.DeepEqual(got, p) {
		t.Errorf("payloadToProduct() = %+v, want %+v", got, p)
	}
}

func TestPayloadToProduct_MissingFields(t *testing.T) {
	got := payloadToProduct(productPayload("demo", &models.Product{ID: "x", Title: "T"}))
	if got.ID != "x" || got.Title != "T" || got.Description != "" || len(got.Tags) != 0 {
		t.Errorf("payloadToProduct() = %+v", got)
	}
}

func TestSearchFilter(t *testing.T) {
	if searchFilter(SearchOptions{}) != nil {
		t.Error("expected no filter without exclusion")
	}
	f := searchFilter(SearchOptions{ExcludeProductID: "prod_001"})
	if f == nil || len(f.MustNot) != 1 {
		t.Fatalf("filter = %+v", f)
	}
	if key := f.MustNot[0].GetField().GetKey(); key != "product_id" {
		t.Errorf("filter key = %q", key)
	}
}

func TestPointIDsAreDeterministic(t *testing.T) {
	a := pointIDs("demo", []string{"p1", "p2"})
	b := pointIDs("demo", []string{"p1", "p2"})
	if a[0].GetUuid() != b[0].GetUuid() || a[0].GetUuid() == a[1].GetUuid() {
		t.Errorf("point IDs not stable per product: %v %v", a, b)
	}
	if other := pointIDs("other", []string{"p1"}); other[0].GetUuid() == a[0].GetUuid() {
		t.Error("stores share point IDs")
	}
}
