package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// TestDatabase always answers 200; problems are described in the body.
func (h *Handler) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, h.prober.Probe(c.Request.Context()))
}

func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.schemas)
}
