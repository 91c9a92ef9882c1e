package models

// Upload records one stored object. The bytes themselves live in the
// configured storage backend under Key.
type Upload struct {
	BaseModel
	Key          string `gorm:"size:500;uniqueIndex;not null" json:"key"`
	OriginalName string `gorm:"size:500;not null" json:"original_name"`
	ContentType  string `gorm:"size:255" json:"content_type"`
	Size         int64  `gorm:"not null" json:"size"`
	URL          string `gorm:"size:1000" json:"url"`
	UploadedBy   uint   `gorm:"index" json:"uploaded_by"`
}
