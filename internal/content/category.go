package content

import (
	"strings"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// Kind is the template branch a product's title selects
type Kind int

const (
	KindGeneral Kind = iota
	KindCream
	KindSerum
)

func (k Kind) String() string {
	switch k {
	case KindCream:
		return "cream"
	case KindSerum:
		return "serum"
	default:
		return "general"
	}
}

// Category is the resolved content category of a product
type Category struct {
	// Kind comes from the title only; the first match in cream, serum order wins
	Kind Kind
	// Skincare is set when the product type mentions skincare
	Skincare bool
}

// Classify resolves the content category used by every template builder
func Classify(p *models.Product) Category {
	title := strings.ToLower(p.Title)

	cat := Category{Kind: KindGeneral}
	switch {
	case strings.Contains(title, "cream"):
		cat.Kind = KindCream
	case strings.Contains(title, "serum"):
		cat.Kind = KindSerum
	}
	cat.Skincare = strings.Contains(strings.ToLower(p.ProductType), "skincare")

	return cat
}

// DescriptionKind is the branch for the description benefit paragraph.
// A skincare product type selects the cream paragraph even when the title says serum.
func (c Category) DescriptionKind() Kind {
	if c.Kind == KindCream || c.Skincare {
		return KindCream
	}
	return c.Kind
}
