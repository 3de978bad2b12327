package handlers

import "testing"

func validInput() productInput {
	return productInput{
		Name:          "Denim Jacket",
		Description:   "A timeless denim jacket for any outfit.",
		Category:      "Jackets",
		OriginalPrice: 3499,
		SalePrice:     2999,
		Images:        []productImageInput{{URL: "https://example.com/jacket.jpg"}},
		Sizes:         []string{"S", "M", "L"},
	}
}

func TestValidateProductInputAccepted(t *testing.T) {
	if fields := validateProductInput(validInput()); len(fields) != 0 {
		t.Fatalf("expected no validation errors, got %v", fields)
	}
}

func TestValidateProductInputShortName(t *testing.T) {
	input := validInput()
	input.Name = "Ab"
	fields := validateProductInput(input)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected name error, got %v", fields)
	}
}

func TestValidateProductInputShortDescription(t *testing.T) {
	input := validInput()
	input.Description = "too short"
	fields := validateProductInput(input)
	if _, ok := fields["description"]; !ok {
		t.Fatalf("expected description error, got %v", fields)
	}
}

func TestValidateProductInputSalePriceAboveOriginal(t *testing.T) {
	input := validInput()
	input.SalePrice = input.OriginalPrice + 1
	fields := validateProductInput(input)
	if _, ok := fields["salePrice"]; !ok {
		t.Fatalf("expected salePrice error, got %v", fields)
	}
}

func TestValidateProductInputNegativePrices(t *testing.T) {
	input := validInput()
	input.OriginalPrice = -1
	input.SalePrice = -5
	fields := validateProductInput(input)
	if _, ok := fields["originalPrice"]; !ok {
		t.Fatalf("expected originalPrice error, got %v", fields)
	}
	if _, ok := fields["salePrice"]; !ok {
		t.Fatalf("expected salePrice error, got %v", fields)
	}
}

func TestValidateProductInputImages(t *testing.T) {
	input := validInput()
	input.Images = nil
	fields := validateProductInput(input)
	if _, ok := fields["images"]; !ok {
		t.Fatalf("expected images error for empty list, got %v", fields)
	}

	input = validInput()
	input.Images = []productImageInput{{URL: "not-a-url"}}
	fields = validateProductInput(input)
	if _, ok := fields["images"]; !ok {
		t.Fatalf("expected images error for bad URL, got %v", fields)
	}
}

func TestValidateProductInputOptionalLinks(t *testing.T) {
	input := validInput()
	input.ProductLink = ""
	input.VideoURL = ""
	if fields := validateProductInput(input); len(fields) != 0 {
		t.Fatalf("empty optional links should pass, got %v", fields)
	}

	input.ProductLink = "ftp://example.com/file"
	fields := validateProductInput(input)
	if _, ok := fields["productLink"]; !ok {
		t.Fatalf("expected productLink error, got %v", fields)
	}
}

func TestNormalizeSizes(t *testing.T) {
	got := normalizeSizes([]string{"S, M", " L ", "M", ""})
	want := []string{"S", "M", "L"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
