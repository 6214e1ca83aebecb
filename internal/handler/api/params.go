package api

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// productIDParam reads a positive integer path parameter, aborting with 400
// otherwise.
func productIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, ErrInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
