package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	OwnerHeader = "X-User-ID"
	ctxOwnerKey = "owner_id"
)

var errInvalidOwner = errors.New("invalid owner id")

// OwnerMiddleware decides whose cart a request addresses. Identity is asserted by the
// upstream gateway through X-User-ID; without it the configured default owner is used.
type OwnerMiddleware struct {
	defaultOwner string
}

func NewOwnerMiddleware(cfg config.Config) *OwnerMiddleware {
	return &OwnerMiddleware{defaultOwner: cfg.Cart.DefaultOwner}
}

func (m *OwnerMiddleware) ResolveOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if owner == "" {
			owner = m.defaultOwner
		}
		if !cart.ValidOwner(owner) {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidOwner, "Invalid "+OwnerHeader+" header", nil)
			return
		}

		c.Set(ctxOwnerKey, owner)
		c.Next()
	}
}

func GetOwner(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOwnerKey)
	if !exists {
		return "", false
	}
	owner, ok := v.(string)
	return owner, ok && owner != ""
}
