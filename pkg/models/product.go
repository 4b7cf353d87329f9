package models

import (
	"fmt"
	"strings"
)

// NotSpecified is the placeholder rendered into prompts for fields the
// caller did not provide.
const NotSpecified = "not specified"

// ProductRecord represents one scraped product as received from an
// upstream agent. Every field except Title is optional; numeric and
// boolean fields use pointers so that "absent" and "zero" stay distinct.
type ProductRecord struct {
	Title          string   `json:"title"`
	Price          *float64 `json:"price,omitempty"`
	MaxPrice       *float64 `json:"max_price,omitempty"`
	Available      *bool    `json:"available,omitempty"`
	TotalInventory *int     `json:"total_inventory,omitempty"`
	ProductType    string   `json:"product_type,omitempty"`
	Vendor         string   `json:"vendor,omitempty"`
	Description    string   `json:"description,omitempty"`
	VariantCount   *int     `json:"variant_count,omitempty"`
	ImageCount     *int     `json:"image_count,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Categories     []string `json:"categories,omitempty"`
}

// DisplayTitle returns the product title or the placeholder.
func (p *ProductRecord) DisplayTitle() string {
	if strings.TrimSpace(p.Title) == "" {
		return NotSpecified
	}
	return p.Title
}

// DisplayPrice formats the price for prompt text, e.g. "$19.99".
func (p *ProductRecord) DisplayPrice() string {
	if p.Price == nil {
		return NotSpecified
	}
	return fmt.Sprintf("$%.2f", *p.Price)
}

// DisplayAvailability renders availability as Yes/No.
func (p *ProductRecord) DisplayAvailability() string {
	if p.Available == nil {
		return NotSpecified
	}
	if *p.Available {
		return "Yes"
	}
	return "No"
}

// DisplayType returns the product type or the placeholder.
func (p *ProductRecord) DisplayType() string {
	if strings.TrimSpace(p.ProductType) == "" {
		return NotSpecified
	}
	return p.ProductType
}

// DisplayVendor returns the vendor name or the placeholder.
func (p *ProductRecord) DisplayVendor() string {
	if strings.TrimSpace(p.Vendor) == "" {
		return NotSpecified
	}
	return p.Vendor
}

// DisplayVariantCount renders the variant count or the placeholder.
func (p *ProductRecord) DisplayVariantCount() string {
	return displayCount(p.VariantCount)
}

// DisplayImageCount renders the image count or the placeholder.
func (p *ProductRecord) DisplayImageCount() string {
	return displayCount(p.ImageCount)
}

// DisplayTags joins the tag list, or returns the placeholder when empty.
func (p *ProductRecord) DisplayTags() string {
	if len(p.Tags) == 0 {
		return NotSpecified
	}
	return strings.Join(p.Tags, ", ")
}

func displayCount(n *int) string {
	if n == nil {
		return NotSpecified
	}
	return fmt.Sprintf("%d", *n)
}
