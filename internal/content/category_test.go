package content

import (
	"testing"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		productType string
		wantKind    Kind
		wantDesc    Kind
	}{
		{"cream title", "Organic Face Cream", "", KindCream, KindCream},
		{"serum title", "Night Serum", "Beauty", KindSerum, KindSerum},
		{"serum title skincare type", "Anti-Aging Serum Premium Formula", "Skincare", KindSerum, KindCream},
		{"cream wins over serum", "Cream Serum Hybrid", "", KindCream, KindCream},
		{"general skincare type", "Jade Roller", "skincare tools", KindGeneral, KindCream},
		{"general", "Silk Pillowcase", "Home", KindGeneral, KindGeneral},
		{"case insensitive", "HAND CREAM", "", KindCream, KindCream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Classify(&models.Product{Title: tt.title, ProductType: tt.productType})
			if cat.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", cat.Kind, tt.wantKind)
			}
			if got := cat.DescriptionKind(); got != tt.wantDesc {
				t.Errorf("DescriptionKind() = %v, want %v", got, tt.wantDesc)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindCream.String() != "cream" || KindSerum.String() != "serum" || KindGeneral.String() != "general" {
		t.Errorf("unexpected kind names: %s %s %s", KindCream, KindSerum, KindGeneral)
	}
}
