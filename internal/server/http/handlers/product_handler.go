package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

const imageField = "image"

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	facade        ProductFacade
	maxUploadSize int64
}

// NewProductHandler constructs ProductHandler. Images above maxUploadSize bytes are rejected.
func NewProductHandler(facade ProductFacade, maxUploadSize int64) *ProductHandler {
	return &ProductHandler{facade: facade, maxUploadSize: maxUploadSize}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Add handles POST /add-product.
func (h *ProductHandler) Add(c *gin.Context) {
	image, err := readImage(c, imageField, h.maxUploadSize)
	if err != nil {
		writeError(c, err)
		return
	}
	if image.Empty() {
		writeError(c, domainErrors.ErrImageRequired)
		return
	}

	form, price, ok := h.bindForm(c)
	if !ok {
		return
	}

	if _, err := h.facade.AddProduct(c.Request.Context(), form.Name, price, image); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Product added")
}

// Edit handles POST /edit-product/:id.
func (h *ProductHandler) Edit(c *gin.Context) {
	form, price, ok := h.bindForm(c)
	if !ok {
		return
	}

	image, err := readImage(c, imageField, h.maxUploadSize)
	if err != nil {
		writeError(c, err)
		return
	}

	if _, err := h.facade.EditProduct(c.Request.Context(), c.Param("id"), form.Name, price, image); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Product updated")
}

// Delete handles DELETE /delete-product/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Deleted")
}

func (h *ProductHandler) bindForm(c *gin.Context) (dto.ProductForm, float64, bool) {
	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		writeMessage(c, http.StatusBadRequest, "Invalid")
		return form, 0, false
	}
	price, err := form.PriceValue()
	if err != nil {
		writeError(c, domainErrors.ErrInvalidPrice)
		return form, 0, false
	}
	return form, price, true
}
