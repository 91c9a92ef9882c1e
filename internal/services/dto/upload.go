package dto

// UploadResponse matches the shape the document forms expect.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Key     string `json:"key"`
}
