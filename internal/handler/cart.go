package handler

import (
	"errors"
	"net/http"

	"github.com/LandLandeiro/oba-moda-afro/internal/apierror"
	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"
	"github.com/LandLandeiro/oba-moda-afro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct{ svc service.CartService }

func NewCartHandler(svc service.CartService) *CartHandler { return &CartHandler{svc: svc} }

func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar o carrinho"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Add(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), sid, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVariationNotFound),
			errors.Is(err, service.ErrVariationMismatch):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, repository.ErrInsufficientStock):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Update(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.UpdateCartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), sid, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Remove(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	variationID, err := uuid.Parse(c.Param("variationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Remove(c.Request.Context(), sid, variationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao remover o item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.svc.Clear(c.Request.Context(), sid); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao limpar o carrinho"))
		return
	}
	c.Status(http.StatusNoContent)
}
