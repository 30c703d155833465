package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/domain"
)

type errBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// Err maps a domain error onto its HTTP status. Anything unrecognized is
// a 500 with a generic body so internals do not leak.
func Err(c *gin.Context, err error) {
	var fe domain.FieldErrors
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, errBody{Error: "validation failed", Fields: fe})
	case errors.Is(err, domain.ErrMalformedID):
		c.JSON(http.StatusBadRequest, errBody{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, errBody{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errBody{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errBody{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errBody{Error: "internal error"})
	}
}

func ErrMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, errBody{Error: msg})
}

func AbortMsg(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errBody{Error: msg})
}
