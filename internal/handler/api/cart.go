package api

import (
	"log/slog"
	"net/http"

	"storefront-cart/internal/domain/cart"
	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/patch"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

var rejectionMessages = map[cart.Reason]string{
	cart.ReasonOutOfStock:    "Item is out of stock",
	cart.ReasonStockLimit:    "Stock limit reached for this item",
	cart.ReasonNoCart:        "No cart",
	cart.ReasonItemNotFound:  "Item not found in cart",
	cart.ReasonDuplicateLine: "Item id already used by another product",
}

type CartHandler struct {
	sessions usecase.CartSessions
}

func NewCartHandler(sessions usecase.CartSessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// @Summary Get cart
// @Description Current cart of the caller; cart is null when none exists
// @Tags cart
// @Produce json
// @Param X-User-ID header string false "Cart owner"
// @Success 200 {object} resdto.CartStateResponse
// @Failure 503 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	res, err := resdto.FromStoreState(store.State())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add item
// @Description Add one unit of a product; creates the cart on first add
// @Tags cart
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Cart owner"
// @Param request body reqdto.AddItemRequest true "Candidate item"
// @Success 201 {object} resdto.MutationResponse
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item", nil)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	result := store.Add(c.Request.Context(), item)
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.respond(c, status, result, store)
}

// @Summary Set quantity
// @Description Set a line's quantity, clamped to [1, stock]
// @Tags cart
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Cart owner"
// @Param id path string true "Line ID"
// @Param request body reqdto.SetQuantityRequest true "Target quantity"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, store.SetQuantity(c.Request.Context(), c.Param("id"), patch.Coalesce(req.Quantity, 1)), store)
}

// @Summary Remove item
// @Description Remove a line; removing the last line deletes the cart
// @Tags cart
// @Produce json
// @Param X-User-ID header string false "Cart owner"
// @Param id path string true "Line ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, store.Remove(c.Request.Context(), c.Param("id")), store)
}

// @Summary Clear cart
// @Description Discard the cart and its snapshot; idempotent
// @Tags cart
// @Produce json
// @Param X-User-ID header string false "Cart owner"
// @Success 200 {object} resdto.MutationResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, store.Clear(c.Request.Context()), store)
}

func (h *CartHandler) store(c *gin.Context) (usecase.CartStore, bool) {
	owner, _ := middleware.GetOwner(c)
	store, err := h.sessions.For(c.Request.Context(), owner)
	if err != nil {
		slog.Error("failed to open cart", "owner", owner, "error", err)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Cart storage unavailable", nil)
		return nil, false
	}
	return store, true
}

func (h *CartHandler) respond(c *gin.Context, status int, result cart.Result, store usecase.CartStore) {
	state := store.State()
	if !result.IsApplied() {
		current, err := resdto.FromCartState(state.Cart)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
			return
		}
		detail := resdto.RejectionDetail{Reason: result.Reason.String(), Cart: current}
		httperr.AbortWithError(c, httperr.StatusOf(result.Err()), result.Err(), rejectionMessages[result.Reason], detail)
		return
	}

	res, err := resdto.FromMutation(result, state)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return
	}
	c.JSON(status, res)
}
