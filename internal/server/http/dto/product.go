package dto

import (
	"strconv"
	"strings"
)

// ProductForm holds the text fields of the multipart product form.
type ProductForm struct {
	Name  string `form:"name"`
	Price string `form:"price"`
}

// PriceValue parses the submitted price.
func (f ProductForm) PriceValue() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
}
