package content

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	defaultTitle       = "Product"
	defaultProductType = "item"
)

var benefitParagraphs = map[Kind]string{
	KindCream: "\n\nExperience transformative results with our carefully formulated blend of " +
		"natural ingredients. This luxurious formula deeply nourishes your skin, " +
		"promoting a radiant, healthy complexion while reducing the visible signs of aging.",
	KindSerum: "\n\nThis professional-grade serum delivers powerful anti-aging benefits through " +
		"a concentrated blend of scientifically-proven ingredients. Enhances skin elasticity, " +
		"reduces fine lines, and restores your skin's natural luminosity.",
	KindGeneral: "\n\nMeticulously designed to deliver exceptional results, this product combines " +
		"premium ingredients with expert craftsmanship to exceed your expectations.",
}

const keyBenefits = "\n\n**Key Benefits:**\n" +
	"• Premium, professionally-formulated ingredients\n" +
	"• Visible results you can see and feel\n" +
	"• Suitable for all skin types\n" +
	"• Cruelty-free and ethically sourced"

const closingCTA = "\n\nElevate your skincare routine today. Experience the difference that premium quality makes."

var seoTitleBenefits = map[Kind]string{
	KindCream:   "Nourishing & Anti-Aging",
	KindSerum:   "Professional Anti-Aging Treatment",
	KindGeneral: "Premium Quality",
}

var seoDescriptionTemplates = map[Kind]string{
	KindCream: "Experience premium %s with natural ingredients. " +
		"Nourishes, protects, and rejuvenates your skin. Shop our luxury skincare collection.",
	KindSerum: "Professional-grade %s delivers powerful anti-aging results. " +
		"Reduce fine lines and restore radiance. Premium quality guaranteed.",
	KindGeneral: "Discover our premium %s - exceptional quality and results. " +
		"Trusted by customers worldwide. Shop now for exclusive offers.",
}

// buildDescription assembles hook, benefit paragraph, key benefits, trust line and closing CTA
func buildDescription(title, productType string, kind Kind) string {
	if title == "" {
		title = defaultTitle
	}
	if productType == "" {
		productType = defaultProductType
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Discover the exceptional quality of our %s, "+
		"a premium %s crafted for those who appreciate excellence.", title, strings.ToLower(productType))
	b.WriteString(benefitParagraphs[kind])
	b.WriteString(keyBenefits)
	fmt.Fprintf(&b, "\n\nTrusted by discerning customers worldwide, our %s represents "+
		"the perfect balance of luxury and effectiveness.", title)
	b.WriteString(closingCTA)
	return b.String()
}

// buildSEOTitle formats "title | benefit | vendor", dropping the vendor when over maxLen.
// The shortened form is not truncated further.
func buildSEOTitle(title, vendor string, kind Kind, maxLen int) string {
	base := title + " | " + seoTitleBenefits[kind]
	if vendor == "" {
		return base
	}
	full := base + " | " + vendor
	if utf8.RuneCountInString(full) > maxLen {
		return base
	}
	return full
}

func buildSEODescription(title string, kind Kind) string {
	return fmt.Sprintf(seoDescriptionTemplates[kind], strings.ToLower(title))
}

// truncateRunes shortens s to maxLen characters, ending with "..." when cut
func truncateRunes(s string, maxLen int) string {
	if maxLen <= 3 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}
