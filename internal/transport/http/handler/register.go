package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/domain"
	"go-commerce-api/internal/service"
	resp "go-commerce-api/internal/transport/http/response"
)

type RegisterHandler struct {
	svc *service.RegisterService
}

func NewRegisterHandler(svc *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type registerResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Message   string    `json:"message"`
}

// POST /register/user
func (h *RegisterHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Register(c.Request.Context(), domain.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, registerResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Message:   fmt.Sprintf("user %s registered successfully", u.Username),
	})
}
