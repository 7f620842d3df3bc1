package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pawart_studio/internal/adapter/http/dto/request"
	response "pawart_studio/internal/adapter/http/dto/response"
	"pawart_studio/internal/usecase"
	"pawart_studio/pkg"

	"github.com/gin-gonic/gin"
)

// ArtworkHandler handles HTTP requests for artwork generation.

type ArtworkHandler struct {
	usecase usecase.IArtworkUseCase
}

func NewArtworkHandler(uc usecase.IArtworkUseCase) *ArtworkHandler {
	return &ArtworkHandler{usecase: uc}
}

// GenerateVariants produces stylized variants for an uploaded pet photo.
func (h *ArtworkHandler) GenerateVariants(c *gin.Context) {
	var payload request.ArtworkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	photo, mimeType, err := payload.DecodePhoto()
	if err != nil {
		log.Printf("[artwork][handler] invalid photo payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PHOTO", "Photo payload is missing or not valid base64", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[artwork][handler] generate start mime=%s size=%d exclude=%d", mimeType, len(photo), len(payload.ExcludeStyles))

	variants, err := h.usecase.GenerateVariants(c.Request.Context(), photo, mimeType, payload.ExcludeStyles)
	if err != nil {
		log.Printf("[artwork][handler] generate failed err=%v", err)
		appErr := mapArtworkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[artwork][handler] generate success variants=%d", len(variants))

	c.JSON(http.StatusOK, response.FromArtworkVariants(variants))
}

func mapArtworkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPhoto), errors.Is(err, usecase.ErrUnsupportedPhotoMime):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO", "Photo is empty or has an unsupported mime type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoVariantsGenerated):
		return pkg.NewDomainErrorSimple("ARTWORK_GENERATION_FAILED", "No artwork variants could be generated", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
