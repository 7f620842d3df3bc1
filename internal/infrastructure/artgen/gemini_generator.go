package artgen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pawart_studio/internal/domain/entities"
	"pawart_studio/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash-image"
	variantsPerBatch     = 4
)

const negativePrompt = "Do NOT include any human. Do NOT add text, watermarks or logos. " +
	"Do NOT distort the animal's anatomy or change its species. The animal must look exactly " +
	"like the one in the reference photo. The artwork must be isolated on a clean empty background."

// artStyle is one entry of the style catalog. Prompts embed the reference
// photo; style identity is carried by the name, which is also what the
// exclusion list matches against.
type artStyle struct {
	Name        string
	Description string
	Prompt      string
}

var styleCatalog = []artStyle{
	{
		Name:        "Acuarela Vibrante",
		Description: "Pinceladas suaves y colores fluidos para un look artístico y moderno.",
		Prompt:      "Create a vibrant watercolor painting of the pet in this photo, with soft brushstrokes and fluid color washes.",
	},
	{
		Name:        "Pop Art Retro",
		Description: "Inspirado en los años 60, con colores audaces y contrastes fuertes.",
		Prompt:      "Create a bold pop art portrait of the pet in this photo, with vibrant contrasting colors, bold outlines and halftone dots.",
	},
	{
		Name:        "Óleo Clásico",
		Description: "Texturas profundas y un acabado elegante que nunca pasa de moda.",
		Prompt:      "Create a classic oil painting portrait of the pet in this photo, with rich textures and dramatic lighting.",
	},
	{
		Name:        "Ilustración Digital Fantasía",
		Description: "Estilo cinematográfico con colores brillantes y detalles mágicos.",
		Prompt:      "Create a magical digital fantasy illustration of the pet in this photo, with glowing lights and cinematic detail.",
	},
	{
		Name:        "Sticker Kawaii",
		Description: "Estilo sticker adorable con ojos grandes y colores pastel.",
		Prompt:      "Create a cute kawaii sticker illustration of the pet in this photo, with chibi proportions, pastel colors and a thick white die-cut outline.",
	},
	{
		Name:        "Neon Cyberpunk",
		Description: "Estética futurista con luces neón, circuitos y atmósfera cyber.",
		Prompt:      "Create a cyberpunk neon portrait of the pet in this photo, with glowing pink and blue lights and futuristic circuit patterns.",
	},
}

// GeminiGenerator produces stylized variants through the Gemini
// generateContent REST endpoint. Styles fail independently: a per-style
// error becomes a variant without an image, never a failed batch.
type GeminiGenerator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

var _ interfaces.IArtworkGenerator = (*GeminiGenerator)(nil)

func NewGeminiGenerator() (*GeminiGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	model := strings.TrimSpace(os.Getenv("GEMINI_IMAGE_MODEL"))
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiGenerator{
		client:  &http.Client{Timeout: 90 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}, nil
}

func (g *GeminiGenerator) GenerateVariants(ctx context.Context, photo []byte, mimeType string, excludeStyles []string) ([]entities.ArtworkVariant, error) {
	excluded := make(map[string]bool, len(excludeStyles))
	for _, name := range excludeStyles {
		excluded[name] = true
	}

	variants := make([]entities.ArtworkVariant, 0, variantsPerBatch)
	for _, style := range styleCatalog {
		if excluded[style.Name] {
			continue
		}
		if len(variants) == variantsPerBatch {
			break
		}

		v := entities.ArtworkVariant{StyleName: style.Name, Description: style.Description}
		image, imageMime, err := g.generateOne(ctx, photo, mimeType, style.Prompt)
		if err != nil {
			log.Printf("[artwork][gemini] style failed style=%q err=%v", style.Name, err)
			v.ErrorReason = err.Error()
		} else {
			v.ImageBase64 = image
			v.MimeType = imageMime
		}
		variants = append(variants, v)
	}
	return variants, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobData `json:"inline_data,omitempty"`
}

type geminiBlobData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGenerator) generateOne(ctx context.Context, photo []byte, mimeType, prompt string) (imageBase64, imageMime string, err error) {
	body := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: prompt + " " + negativePrompt},
				{InlineData: &geminiBlobData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(photo)}},
			},
		}},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("gemini generateContent: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out geminiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", "", err
	}
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData.Data, part.InlineData.MimeType, nil
			}
		}
	}
	return "", "", errors.New("gemini returned no image data")
}
