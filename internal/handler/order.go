package handler

import (
	"net/http"

	"priyansh-be/internal/order"
	"priyansh-be/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Checkout(c *gin.Context) {
	var input order.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, validation.FromDecodeError("checkout", err))
		return
	}

	res, err := h.orders.Checkout(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
