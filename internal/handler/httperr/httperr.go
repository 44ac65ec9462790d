package httperr

import (
	"net/http"

	"storefront-cart/internal/pkg/errs"

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

// StatusOf maps the shared sentinel errors onto HTTP statuses.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrOutOfStock), errs.Is(err, errs.ErrStockLimit), errs.Is(err, errs.ErrLineIDConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrCartNotFound), errs.Is(err, errs.ErrCartItemNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrStorageOperationFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
