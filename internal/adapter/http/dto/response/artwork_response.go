package response

import "pawart_studio/internal/domain/entities"

type ArtworkVariantResponse struct {
	StyleName   string `json:"style_name"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	ErrorReason string `json:"error_reason,omitempty"`
}

type ArtworkBatchResponse struct {
	Variants []ArtworkVariantResponse `json:"variants"`
}

func FromArtworkVariants(variants []entities.ArtworkVariant) ArtworkBatchResponse {
	out := make([]ArtworkVariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, ArtworkVariantResponse{
			StyleName:   v.StyleName,
			Description: v.Description,
			ImageBase64: v.ImageBase64,
			MimeType:    v.MimeType,
			ErrorReason: v.ErrorReason,
		})
	}
	return ArtworkBatchResponse{Variants: out}
}
