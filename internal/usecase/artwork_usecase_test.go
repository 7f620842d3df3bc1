package usecase

import (
	"context"
	"errors"
	"testing"

	"pawart_studio/internal/domain/entities"
	mock_interfaces "pawart_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestArtworkUseCase_GenerateVariants(t *testing.T) {
	ctx := context.Background()
	photo := []byte{0xFF, 0xD8, 0xFF}

	t.Run("empty photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewArtworkUseCase(mock_interfaces.NewMockIArtworkGenerator(ctrl))

		if _, err := uc.GenerateVariants(ctx, nil, "image/jpeg", nil); !errors.Is(err, ErrEmptyPhoto) {
			t.Fatalf("expected ErrEmptyPhoto, got %v", err)
		}
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewArtworkUseCase(mock_interfaces.NewMockIArtworkGenerator(ctrl))

		if _, err := uc.GenerateVariants(ctx, photo, "application/pdf", nil); !errors.Is(err, ErrUnsupportedPhotoMime) {
			t.Fatalf("expected ErrUnsupportedPhotoMime, got %v", err)
		}
	})

	t.Run("generator failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		generator := mock_interfaces.NewMockIArtworkGenerator(ctrl)
		generator.EXPECT().GenerateVariants(gomock.Any(), photo, "image/png", nil).Return(nil, errors.New("upstream unavailable"))

		uc := NewArtworkUseCase(generator)
		if _, err := uc.GenerateVariants(ctx, photo, "image/png", nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("all styles failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		generator := mock_interfaces.NewMockIArtworkGenerator(ctrl)
		generator.EXPECT().GenerateVariants(gomock.Any(), photo, "image/jpeg", nil).Return([]entities.ArtworkVariant{
			{StyleName: "Acuarela Vibrante", ErrorReason: "blocked"},
			{StyleName: "Pop Art Retro", ErrorReason: "timeout"},
		}, nil)

		uc := NewArtworkUseCase(generator)
		if _, err := uc.GenerateVariants(ctx, photo, "image/jpeg", nil); !errors.Is(err, ErrNoVariantsGenerated) {
			t.Fatalf("expected ErrNoVariantsGenerated, got %v", err)
		}
	})

	t.Run("partial success is still a success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		generator := mock_interfaces.NewMockIArtworkGenerator(ctrl)
		generator.EXPECT().GenerateVariants(gomock.Any(), photo, "image/webp", []string{"Sticker Kawaii"}).Return([]entities.ArtworkVariant{
			{StyleName: "Acuarela Vibrante", ImageBase64: "aW1n", MimeType: "image/png"},
			{StyleName: "Pop Art Retro", ErrorReason: "timeout"},
		}, nil)

		uc := NewArtworkUseCase(generator)
		variants, err := uc.GenerateVariants(ctx, photo, "image/webp", []string{"Sticker Kawaii"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Failed variants stay in the batch with their reason attached.
		if len(variants) != 2 {
			t.Fatalf("expected both variants back, got %d", len(variants))
		}
		if !variants[0].HasImage() || variants[1].HasImage() {
			t.Fatalf("unexpected image flags: %+v", variants)
		}
	})
}
