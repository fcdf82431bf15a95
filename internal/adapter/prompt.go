package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-summary-news/models"
)

const promptTemplate = `Título: %s
Descripción: %s

Traduce ambos al español. Haz que el título tenga un máximo de 75 caracteres y mínimo 50 y la descripción entre 40 y 50 palabras. Además, sugiere una categoría general que sea "Política, Deportes, Tecnología, Salud, Economía, Ciencia, Cultura, Opinión. Solo puede ser una de esas, no puede ser otra categoría que no esté en esa lista.

Devuélvelo en formato JSON así:
{
  "titulo": "...",
  "resumen": "...",
  "categoria": "..."
}`

func buildPrompt(title, description string) string {
	return fmt.Sprintf(promptTemplate, title, description)
}

// stripFences removes the markdown code fences the model wraps JSON in.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// completionPayload uses pointers so that missing keys can be told apart
// from empty values.
type completionPayload struct {
	Title    *string `json:"titulo"`
	Summary  *string `json:"resumen"`
	Category *string `json:"categoria"`
}

// parseCompletion decodes the model answer. A category outside the fixed set
// is stored as uncategorized.
func parseCompletion(text string) (models.Enrichment, error) {
	var payload completionPayload
	if err := json.Unmarshal([]byte(stripFences(text)), &payload); err != nil {
		return models.Enrichment{}, fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
	}

	if payload.Title == nil || payload.Summary == nil || payload.Category == nil {
		return models.Enrichment{}, fmt.Errorf("%w: missing titulo, resumen or categoria", ErrMalformedCompletion)
	}

	return models.Enrichment{
		Title:    strings.TrimSpace(*payload.Title),
		Summary:  strings.TrimSpace(*payload.Summary),
		Category: models.ParseCategory(*payload.Category),
	}, nil
}
