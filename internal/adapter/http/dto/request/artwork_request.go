package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrEmptyPhotoPayload   = errors.New("photo payload is empty")
	ErrInvalidPhotoPayload = errors.New("photo payload is not valid base64")
)

// ArtworkRequest uploads a pet photo for variant generation. PhotoBase64
// accepts both a bare base64 string and a full data URI; a data URI's mime
// type wins over the MimeType field.
type ArtworkRequest struct {
	PhotoBase64   string   `json:"photo_base64" binding:"required"`
	MimeType      string   `json:"mime_type"`
	ExcludeStyles []string `json:"exclude_styles"`
}

func (r ArtworkRequest) DecodePhoto() ([]byte, string, error) {
	data := strings.TrimSpace(r.PhotoBase64)
	mimeType := strings.TrimSpace(r.MimeType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	if strings.HasPrefix(data, "data:") {
		idx := strings.Index(data, ",")
		if idx < 0 {
			return nil, "", ErrInvalidPhotoPayload
		}
		header := strings.TrimPrefix(data[:idx], "data:")
		if parts := strings.SplitN(header, ";", 2); parts[0] != "" {
			mimeType = parts[0]
		}
		data = data[idx+1:]
	}
	if data == "" {
		return nil, "", ErrEmptyPhotoPayload
	}

	photo, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", ErrInvalidPhotoPayload
	}
	return photo, mimeType, nil
}
