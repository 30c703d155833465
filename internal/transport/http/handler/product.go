package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/domain"
	"go-commerce-api/internal/service"
	resp "go-commerce-api/internal/transport/http/response"
)

// ProductHandler serves both the public catalog routes and the admin
// management routes; the router decides which methods sit behind the
// admin gate.
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type productRequest struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageURL"`
}

// GET /api/products/
func (h *ProductHandler) List(c *gin.Context) {
	ps, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/products/search?name=
func (h *ProductHandler) Search(c *gin.Context) {
	ps, err := h.svc.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// POST /api/admin/products/create
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Create(c.Request.Context(), domain.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/admin/products/getAll
func (h *ProductHandler) GetAll(c *gin.Context) {
	ps, err := h.svc.List(c.Request.Context())
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// PUT /api/admin/products/update
func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Update(c.Request.Context(), &domain.Product{
		ID:          req.ProductID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/admin/products/delete — deletion is id-keyed; the body
// only needs productId.
func (h *ProductHandler) Delete(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), req.ProductID); err != nil {
		resp.Err(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
