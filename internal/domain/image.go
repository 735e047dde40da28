package domain

// Image is raster image content, either produced by an image provider or
// rendered by a client and submitted for hosting.
type Image struct {
	Data     []byte
	MIMEType string
}

// StoredImage is the durable location of an uploaded image.
type StoredImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
