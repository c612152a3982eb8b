package handlers

import (
	"fmt"
	"net/http"
	"time"

	"vendlink/internal/middleware"
	"vendlink/internal/services"
	"vendlink/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultListKey = "products:list:default"

	defaultListLimit = 20
	maxListLimit     = 100
)

type ProductHandler struct {
	products *services.ProductService
	cache    *utils.Cache
}

func NewProductHandler(products *services.ProductService, cache *utils.Cache) *ProductHandler {
	return &ProductHandler{products: products, cache: cache}
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Description string `json:"description"`
	IsAvailable *bool  `json:"is_available"`
}

func (r productRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		IsAvailable: r.IsAvailable,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	} else if limit > maxListLimit {
		limit = maxListLimit
	}
	skip := intQuery(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}
	search := c.Query("search")

	// Only the default query is cached; anything parameterized goes to the
	// store directly.
	isDefault := limit == defaultListLimit && skip == 0 && search == ""
	if isDefault {
		if cached := h.cache.Get(defaultListKey); cached != nil {
			if out, ok := cached.([]ProductOut); ok {
				c.JSON(http.StatusOK, out)
				return
			}
		}
	}

	products, err := h.products.List(limit, skip, search)
	if err != nil {
		respondError(c, err)
		return
	}

	out := newProductOuts(products)
	if isDefault {
		h.cache.Set(defaultListKey, out, 1*time.Minute)
	}
	c.JSON(http.StatusOK, out)
}

// productDetail extends the list payload with the rendered description.
type productDetail struct {
	ProductOut
	DescriptionHTML string `json:"description_html"`
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cacheKey := detailKey(id)
	if cached := h.cache.Get(cacheKey); cached != nil {
		if out, ok := cached.(productDetail); ok {
			c.JSON(http.StatusOK, out)
			return
		}
	}

	product, err := h.products.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	out := productDetail{
		ProductOut:      newProductOut(*product),
		DescriptionHTML: utils.RenderMarkdown(product.Description),
	}
	h.cache.Set(cacheKey, out, 5*time.Minute)
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	product, err := h.products.Create(middleware.CurrentUser(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(defaultListKey)
	c.JSON(http.StatusCreated, newProductOut(*product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	product, err := h.products.Update(middleware.CurrentUser(c), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(detailKey(id))
	h.cache.Delete(defaultListKey)
	c.JSON(http.StatusAccepted, newProductOut(*product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.products.Delete(middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(detailKey(id))
	h.cache.Delete(defaultListKey)
	c.Status(http.StatusNoContent)
}

func detailKey(id uint) string {
	return fmt.Sprintf("products:detail:%d", id)
}
