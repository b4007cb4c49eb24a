package handler

import (
	"context"

	"priyansh-be/internal/diagnostics"
	"priyansh-be/internal/order"
	"priyansh-be/internal/product"
	"priyansh-be/internal/schema"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Priyansh Dryfruits & Spices Backend Running"

type Prober interface {
	Probe(ctx context.Context) diagnostics.Report
}

type Handler struct {
	products product.Service
	orders   order.Service
	prober   Prober
	schemas  schema.Registry
}

func New(products product.Service, orders order.Service, prober Prober, schemas schema.Registry) *Handler {
	return &Handler{
		products: products,
		orders:   orders,
		prober:   prober,
		schemas:  schemas,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", h.Schema)

	r.POST("/seed", h.SeedProducts)
	r.GET("/products", h.ListProducts)

	r.POST("/checkout", h.Checkout)
	r.GET("/orders/:id", h.GetOrder)
}
