package handlers

import (
	"net/url"
	"strings"

	"darpanwears/internal/models"
)

type productImageInput struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Hint string `json:"hint"`
}

type productInput struct {
	Name                      string              `json:"name"`
	Description               string              `json:"description"`
	Category                  string              `json:"category"`
	OriginalPrice             int                 `json:"originalPrice"`
	SalePrice                 int                 `json:"salePrice"`
	Images                    []productImageInput `json:"images"`
	Sizes                     []string            `json:"sizes"`
	IsCashOnDeliveryAvailable *bool               `json:"isCashOnDeliveryAvailable"`
	ProductLink               string              `json:"productLink"`
	VideoURL                  string              `json:"videoUrl"`
}

func isValidURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

// validateProductInput applies the admin form rules and returns per-field
// messages. An inverted sale price is rejected outright: the admin form is
// the only writer and a salePrice above originalPrice is always a data-entry
// mistake.
func validateProductInput(input productInput) map[string]string {
	fields := map[string]string{}

	if len(strings.TrimSpace(input.Name)) < 3 {
		fields["name"] = "Product name must be at least 3 characters."
	}
	if len(strings.TrimSpace(input.Description)) < 10 {
		fields["description"] = "Description must be at least 10 characters."
	}
	if input.OriginalPrice < 0 {
		fields["originalPrice"] = "Original price must be a positive number."
	}
	if input.SalePrice < 0 {
		fields["salePrice"] = "Sale price must be a positive number."
	} else if input.SalePrice > input.OriginalPrice && input.OriginalPrice >= 0 {
		fields["salePrice"] = "Sale price cannot exceed the original price."
	}

	if len(input.Images) == 0 {
		fields["images"] = "Please add at least one image."
	} else {
		for _, img := range input.Images {
			if !isValidURL(img.URL) {
				fields["images"] = "Please enter a valid image URL."
				break
			}
		}
	}

	if len(normalizeSizes(input.Sizes)) == 0 {
		fields["sizes"] = "Please enter at least one size."
	}

	if input.ProductLink != "" && !isValidURL(input.ProductLink) {
		fields["productLink"] = "Please enter a valid URL for the product link."
	}
	if input.VideoURL != "" && !isValidURL(input.VideoURL) {
		fields["videoUrl"] = "Please enter a valid video URL."
	}

	return fields
}

// normalizeSizes trims and dedupes size labels while keeping their order.
// A single comma-joined entry (the shape the admin form submits) is split.
func normalizeSizes(values []string) models.SizeList {
	return models.SizeList(models.SplitSizes(strings.Join(values, ",")))
}
