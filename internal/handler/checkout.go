package handler

import (
	"errors"
	"net/http"

	"github.com/LandLandeiro/oba-moda-afro/internal/apierror"
	"github.com/LandLandeiro/oba-moda-afro/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct{ svc service.CheckoutService }

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), sid)
	if err != nil {
		var stockErr *service.StockError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, apierror.New(stockErr.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao finalizar o pedido"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}
