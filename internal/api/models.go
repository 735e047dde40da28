package api

// Common request/response structures

// SaveImageRequest defines the payload for the snapshot upload endpoint.
type SaveImageRequest struct {
	// ImageData is a data URL, e.g. "data:image/png;base64,iVBOR..."
	ImageData string `json:"imageData" validate:"required"`
}

// SaveImageResponse defines the successful response for the snapshot upload endpoint.
type SaveImageResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
