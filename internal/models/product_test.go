// internal/models/product_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURLsPrefersGallery(t *testing.T) {
	p := Product{
		Thumbnail: "https://cdn.example.com/thumb.png",
		Images:    pq.StringArray{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
	}

	assert.Equal(t, []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}, p.ImageURLs())
}

func TestImageURLsFallsBackToThumbnail(t *testing.T) {
	p := Product{Thumbnail: "https://cdn.example.com/thumb.png"}

	assert.Equal(t, []string{"https://cdn.example.com/thumb.png"}, p.ImageURLs())
}

func TestImageURLsEmptyWithoutThumbnail(t *testing.T) {
	p := Product{}

	assert.Empty(t, p.ImageURLs())
	assert.NotNil(t, p.ImageURLs())
}

func TestProductJSONAppliesThumbnailFallback(t *testing.T) {
	p := Product{
		Title:     "Notebook",
		Thumbnail: "https://cdn.example.com/thumb.png",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var payload struct {
		Images []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, []string{"https://cdn.example.com/thumb.png"}, payload.Images)
}
