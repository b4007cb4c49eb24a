package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SeedProducts(c *gin.Context) {
	res, err := h.products.Seed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListProducts serves GET /products?category=<exact category>.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
