package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/service"
	resp "go-commerce-api/internal/transport/http/response"
)

type CartHandler struct {
	svc *service.CartService
}

func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
}

// GET /api/cart/get-items?userid=
func (h *CartHandler) GetItems(c *gin.Context) {
	items, err := h.svc.GetCart(c.Request.Context(), c.Query("userid"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/cart/?userid=
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.svc.AddItem(c.Request.Context(), c.Query("userid"), req.ProductID, req.Quantity, req.Name)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/cart/clear?userid=
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.svc.ClearCart(c.Request.Context(), c.Query("userid")); err != nil {
		resp.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/cart/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.svc.RemoveItem(c.Request.Context(), c.Param("itemId")); err != nil {
		resp.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/cart/:itemId/quantity?quantity=
// A quantity of zero or below removes the line; that comes back as 204.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	qty, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "quantity must be an integer")
		return
	}
	item, err := h.svc.UpdateQuantity(c.Request.Context(), c.Param("itemId"), qty)
	if err != nil {
		resp.Err(c, err)
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item)
}
