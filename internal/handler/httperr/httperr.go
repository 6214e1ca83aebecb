package httperr

import (
	"net/http"

	"storefront-engine/internal/domain/reward"
	"storefront-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError picks the status from the error: lookups that miss
// are 404, domain validation is 422, anything else 500.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrProductNotFound),
		errs.Is(err, errs.ErrOrderNotFound),
		errs.Is(err, errs.ErrReservationNotFound),
		errs.Is(err, reward.ErrRewardNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", err.Error())
	case errs.Is(err, errs.ErrDomainValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationDetail(err))
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// validationDetail is the innermost message, without the mark.
func validationDetail(err error) string {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err.Error()
		}
		next := u.Unwrap()
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
