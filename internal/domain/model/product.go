package model

// Product describes a catalog entry offered in the storefront.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ImageUpload carries an uploaded image payload with the client supplied file name.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// Empty reports whether the upload carries no payload.
func (u *ImageUpload) Empty() bool {
	return u == nil || len(u.Data) == 0
}
