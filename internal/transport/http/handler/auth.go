package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/service"
	resp "go-commerce-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse keeps the field names of the contract as shipped,
// misspelling included.
type authResponse struct {
	AcessToken string `json:"acess_token"`
	ExpiresIn  string `json:"expires_in"` // expiry as stringified epoch millis
	Username   string `json:"username"`
	Role       string `json:"role"`
	UserID     string `json:"userId"`
}

// POST /auth/user
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrMsg(c, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		resp.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{
		AcessToken: res.Token,
		ExpiresIn:  strconv.FormatInt(res.ExpiresAt.UnixMilli(), 10),
		Username:   res.Username,
		Role:       res.Role.String(),
		UserID:     res.UserID,
	})
}
