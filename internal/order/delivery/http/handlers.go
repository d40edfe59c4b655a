package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"test-data-assistant/internal/order"
)

// Create godoc
// @Summary     Create a test order
// @Description Synthesizes a test order for the given SKU. Order numbers are millisecond timestamps.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body body createOrderReq true "Order data"
// @Success     200 {object} createOrderResp
// @Failure     400 {object} createOrderResp "Bad Request - missing skuId"
// @Failure     500 {object} createOrderResp "Internal Server Error"
// @Router      /api/orders/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failedOrderResp("skuId is required"))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, order.ErrEmptySKU) {
			c.JSON(http.StatusBadRequest, failedOrderResp("skuId is required"))
			return
		}
		h.l.Errorf(ctx, "uc.Create: %v", err)
		c.JSON(http.StatusInternalServerError, failedOrderResp("failed to create order"))
		return
	}

	c.JSON(http.StatusOK, h.newCreateOrderResp(output))
}
