package handler

import (
	"net/http"

	"github.com/LandLandeiro/oba-moda-afro/internal/apierror"
	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the anonymous storefront: product listings,
// product pages, categories and content blocks.
type CatalogHandler struct {
	products   service.ProductService
	categories service.CategoryService
	content    service.ContentService
}

func NewCatalogHandler(
	products service.ProductService,
	categories service.CategoryService,
	content service.ContentService,
) *CatalogHandler {
	return &CatalogHandler{products: products, categories: categories, content: content}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.products.ListActive(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	resp, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	resp, err := h.categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetCategoryBySlug(c *gin.Context) {
	resp, err := h.categories.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Categoria não encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListBanners(c *gin.Context) {
	resp, err := h.content.ListBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar banners"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListHeaderLinks(c *gin.Context) {
	resp, err := h.content.ListHeaderLinks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar links"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListFooterLinks(c *gin.Context) {
	resp, err := h.content.ListFooterLinks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar links"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetTextSection(c *gin.Context) {
	resp, err := h.content.GetTextSection(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Seção não encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
