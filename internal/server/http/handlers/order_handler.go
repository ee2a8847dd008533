package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "orders.xlsx"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeMessage(c, http.StatusBadRequest, "Invalid")
		return
	}

	if _, err := h.facade.PlaceOrder(c.Request.Context(), req.Items, req.Total, req.Address); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Order placed")
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus handles POST /update-order/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		writeMessage(c, http.StatusBadRequest, "Invalid")
		return
	}

	if _, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Updated")
}

// Export handles GET /export-orders.
func (h *OrderHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.facade.ExportOrders(c.Request.Context(), &buf); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
