package interfaces

import (
	"context"

	"pawart_studio/internal/domain/entities"
)

// IArtworkGenerator abstracts the generative-art collaborator. Generation
// may partially fail per style: failed variants come back with no image and
// an error reason instead of failing the whole batch.
type IArtworkGenerator interface {
	GenerateVariants(ctx context.Context, photo []byte, mimeType string, excludeStyles []string) ([]entities.ArtworkVariant, error)
}
