// internal/handlers/catalog_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonmart/storefront-backend/internal/config"
	"github.com/neonmart/storefront-backend/internal/services"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage, err := services.NewStorageService(&config.Config{})
	require.NoError(t, err)
	handler := NewCatalogHandler(services.NewCatalogService(nil), storage)

	r := gin.New()
	r.DELETE("/product-images", handler.DeleteProductImage)
	return r
}

func TestDeleteProductImageRequiresKey(t *testing.T) {
	r := setupCatalogRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/product-images", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductImageRejectsTraversalKey(t *testing.T) {
	r := setupCatalogRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/product-images?key=products%2F..%2F..%2Fetc%2Fpasswd", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductImageMissingFileSucceeds(t *testing.T) {
	r := setupCatalogRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/product-images?key=products%2Fnever-uploaded.png", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
