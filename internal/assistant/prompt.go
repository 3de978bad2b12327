package assistant

import (
	"fmt"
	"strings"

	"darpanwears/internal/models"
)

// RenderPrompt builds the full prompt for one assistant call: the base
// instruction block, the current catalog, the optional uploaded image, and
// the user's question. Every call is stateless, so all context the answer
// should reflect is re-supplied here.
func RenderPrompt(basePrompt string, products []models.Product, question, photoDataURI string) string {
	var b strings.Builder

	b.WriteString(basePrompt)
	b.WriteString("\n\nCurrent Product Catalog:\n---\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- **%s** (ID: %s): %s Price: ₹%d. Available sizes: %s.\n",
			p.Name, p.ID, p.Description, p.SalePrice, strings.Join(p.Sizes, ", "))
	}
	b.WriteString("---\n")

	if photoDataURI != "" {
		b.WriteString("\nUser's Uploaded Image: ")
		b.WriteString(photoDataURI)
		b.WriteString("\n")
	}

	b.WriteString("\nNow, please answer the following user question.\n\nUser Question: ")
	b.WriteString(question)

	return b.String()
}
