package entities

// ArtworkVariant is one stylized rendering of the uploaded pet photo.
//
// Generation may partially fail per style: a variant with no image carries
// the reason instead. Checkout only accepts variants that have an image.
type ArtworkVariant struct {
	StyleName   string `json:"style_name"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	ErrorReason string `json:"error_reason,omitempty"`
}

func (v ArtworkVariant) HasImage() bool { return v.ImageBase64 != "" }
