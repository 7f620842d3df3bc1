package usecase

import (
	"context"
	"errors"
	"log"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"
)

var (
	ErrEmptyPhoto           = errors.New("photo is empty")
	ErrUnsupportedPhotoMime = errors.New("unsupported photo mime type")
	ErrNoVariantsGenerated  = errors.New("no artwork variants generated")
)

var allowedPhotoMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// IArtworkUseCase produces stylized art variants for an uploaded pet photo.
type IArtworkUseCase interface {
	GenerateVariants(ctx context.Context, photo []byte, mimeType string, excludeStyles []string) ([]entities.ArtworkVariant, error)
}

type ArtworkUseCase struct {
	generator interfaces.IArtworkGenerator
}

var _ IArtworkUseCase = (*ArtworkUseCase)(nil)

func NewArtworkUseCase(generator interfaces.IArtworkGenerator) *ArtworkUseCase {
	return &ArtworkUseCase{generator: generator}
}

// GenerateVariants validates the upload and delegates to the generator.
// Per-style failures are tolerated: a variant may come back without an
// image, and the caller offers only variants that carry one. The batch
// fails only when every style failed.
func (u *ArtworkUseCase) GenerateVariants(ctx context.Context, photo []byte, mimeType string, excludeStyles []string) ([]entities.ArtworkVariant, error) {
	if len(photo) == 0 {
		return nil, ErrEmptyPhoto
	}
	if !allowedPhotoMimes[mimeType] {
		return nil, ErrUnsupportedPhotoMime
	}
	if u.generator == nil {
		return nil, errors.New("artwork generator not configured")
	}

	variants, err := u.generator.GenerateVariants(ctx, photo, mimeType, excludeStyles)
	if err != nil {
		return nil, err
	}

	usable := 0
	for _, v := range variants {
		if v.HasImage() {
			usable++
		}
	}
	log.Printf("[artwork][usecase] generated variants total=%d usable=%d", len(variants), usable)
	if usable == 0 {
		return nil, ErrNoVariantsGenerated
	}
	return variants, nil
}
