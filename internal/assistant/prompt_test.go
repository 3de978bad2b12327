package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darpanwears/internal/models"
)

func TestRenderPromptIncludesCatalogAndQuestion(t *testing.T) {
	products := []models.Product{
		{ID: "prod_1", Name: "Denim Jacket", Description: "A timeless denim jacket.", SalePrice: 2999, Sizes: models.SizeList{"S", "M"}},
	}

	got := RenderPrompt("You are a helpful assistant.", products, "Do you have jackets?", "")

	assert.Contains(t, got, "You are a helpful assistant.")
	assert.Contains(t, got, "- **Denim Jacket** (ID: prod_1): A timeless denim jacket. Price: ₹2999. Available sizes: S, M.")
	assert.Contains(t, got, "User Question: Do you have jackets?")
	assert.NotContains(t, got, "User's Uploaded Image")
}

func TestRenderPromptIncludesPhotoWhenPresent(t *testing.T) {
	got := RenderPrompt("base", nil, "what is this?", "data:image/png;base64,AAAA")
	assert.Contains(t, got, "User's Uploaded Image: data:image/png;base64,AAAA")
}

func TestRenderPromptIsDeterministic(t *testing.T) {
	products := []models.Product{{ID: "prod_1", Name: "Tee", SalePrice: 899}}
	first := RenderPrompt("base", products, "q", "")
	second := RenderPrompt("base", products, "q", "")
	assert.Equal(t, first, second)
}

func TestClientAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"Yes, we have jackets!"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", 5*time.Second, func() string { return "base" })
	answer, err := client.Ask(context.Background(), "Do you have jackets?", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Yes, we have jackets!", answer)
}

func TestClientAskServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, "", 5*time.Second, func() string { return "base" })
	_, err := client.Ask(context.Background(), "q", nil, "")
	assert.ErrorIs(t, err, ErrUnavailable)
}
