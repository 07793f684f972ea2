package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"

	"github.com/Kavirubc/shopcopy/pkg/models"
)

// FileSource reads products from a JSON file
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Products(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	products, err := ParseProducts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return products, nil
}

// exportProduct accepts both the plain product shape and a storefront
// admin export (body_html, numeric ids, comma-separated tags, variant prices).
type exportProduct struct {
	ID             json.RawMessage `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	BodyHTML       string          `json:"body_html"`
	Vendor         string          `json:"vendor"`
	ProductType    string          `json:"product_type"`
	Tags           json.RawMessage `json:"tags"`
	SEOTitle       string          `json:"seo_title"`
	SEODescription string          `json:"seo_description"`
	TitleTag       string          `json:"metafields_global_title_tag"`
	DescriptionTag string          `json:"metafields_global_description_tag"`
	Price          json.RawMessage `json:"price"`
	Variants       []struct {
		Price json.RawMessage `json:"price"`
	} `json:"variants"`
}

// ParseProducts decodes a JSON array of products or an object with a "products" array
func ParseProducts(data []byte) ([]models.Product, error) {
	data = bytes.TrimSpace(data)

	var raw []exportProduct
	if len(data) > 0 && data[0] == '{' {
		var wrapper struct {
			Products []exportProduct `json:"products"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		raw = wrapper.Products
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]models.Product, 0, len(raw))
	for i, rp := range raw {
		p, err := rp.toModel()
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (rp *exportProduct) toModel() (models.Product, error) {
	id, err := scalarString(rp.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("id: %w", err)
	}

	description := rp.Description
	if description == "" && rp.BodyHTML != "" {
		description = ExtractText(rp.BodyHTML)
	}

	tags, err := parseTags(rp.Tags)
	if err != nil {
		return models.Product{}, fmt.Errorf("tags: %w", err)
	}

	price, err := rp.price()
	if err != nil {
		return models.Product{}, fmt.Errorf("price: %w", err)
	}

	return models.Product{
		ID:             id,
		Title:          normalize(rp.Title),
		Description:    normalize(description),
		Vendor:         normalize(rp.Vendor),
		ProductType:    normalize(rp.ProductType),
		Tags:           tags,
		SEOTitle:       normalize(firstNonEmpty(rp.SEOTitle, rp.TitleTag)),
		SEODescription: normalize(firstNonEmpty(rp.SEODescription, rp.DescriptionTag)),
		Price:          price,
	}, nil
}

func (rp *exportProduct) price() (float64, error) {
	raw := rp.Price
	if len(raw) == 0 && len(rp.Variants) > 0 {
		raw = rp.Variants[0].Price
	}
	s, err := scalarString(raw)
	if err != nil || s == "" {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price %v", v)
	}
	return v, nil
}

// scalarString reads a JSON string or number as a string
func scalarString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", raw)
	}
	return n.String(), nil
}

// parseTags accepts a list of strings or a single comma-separated string
func parseTags(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		var joined string
		if err := json.Unmarshal(raw, &joined); err != nil {
			return nil, fmt.Errorf("expected list or string, got %s", raw)
		}
		list = strings.Split(joined, ",")
	}

	tags := make([]string, 0, len(list))
	for _, t := range list {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, normalize(t))
		}
	}
	return tags, nil
}

// ExtractText converts product body HTML to plain text
func ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript, iframe").Remove()
	// Keep words in adjacent blocks apart
	doc.Find("br, p, li, div, h1, h2, h3, h4, h5, h6, tr").AfterHtml(" ")

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// normalize puts text in NFC so composed and decomposed accents compare and count the same
func normalize(s string) string {
	return norm.NFC.String(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
