package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"

	"stylist/models"
)

// AI is the slice of the platform client the engine needs. Kept small so
// tests can drop in a fake.
type AI interface {
	GenerateReply(ctx context.Context, systemPrompt, query string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// CaptionStore lists the cached captions with their embeddings.
type CaptionStore interface {
	List() ([]models.Caption, error)
}

// Engine ranks catalog items against a user profile by embedding a
// model-written preference description and scoring every cached caption
// embedding with cosine similarity.
type Engine struct {
	ai       AI
	captions CaptionStore
	items    []models.CatalogItem
	topN     int
}

func NewEngine(ai AI, captions CaptionStore, items []models.CatalogItem, topN int) *Engine {
	if topN <= 0 {
		topN = 3
	}
	return &Engine{ai: ai, captions: captions, items: items, topN: topN}
}

// Cosine is the normalized dot product of two vectors, in [-1, 1]. A zero
// vector, empty input, or a length mismatch (embeddings from different
// models are not comparable) scores 0 rather than erroring.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

type scoredItem struct {
	index      int
	similarity float64
}

// Recommend returns, per clothing category, up to topN downloaded-table row
// indices ordered by descending similarity to the profile's preference
// description. Ties keep the original table order. A missing caption cache or
// a failed platform call degrades to an empty mapping, never an error page.
func (e *Engine) Recommend(ctx context.Context, profile models.UserProfile, topN int) models.Recommendation {
	if topN <= 0 {
		topN = e.topN
	}

	captions, err := e.captions.List()
	if err != nil {
		log.Printf("recommend: caption cache unavailable: %v (run `stylist enrich` first)", err)
		return models.Recommendation{}
	}
	if len(captions) == 0 {
		log.Printf("recommend: caption cache empty, run `stylist enrich` first")
		return models.Recommendation{}
	}

	preference, err := e.preferenceDescription(ctx, profile)
	if err != nil {
		log.Printf("recommend: preference description: %v", err)
		return models.Recommendation{}
	}

	preferenceVec, err := e.ai.EmbedText(ctx, preference)
	if err != nil {
		log.Printf("recommend: embed preference: %v", err)
		return models.Recommendation{}
	}

	// Join captions back onto the downloaded table, walking the table in
	// row order so equal similarities keep the original catalog order
	// regardless of how the cache happens to be ordered.
	captionByProduct := make(map[string]models.Caption, len(captions))
	for _, row := range captions {
		captionByProduct[row.ProductID] = row
	}

	byCategory := map[string][]scoredItem{}
	for idx, item := range e.items {
		row, ok := captionByProduct[item.ProductID]
		if !ok || row.Caption == "" {
			continue
		}
		vec, err := row.Vector()
		if err != nil {
			log.Printf("recommend: %v, skipping", err)
			continue
		}
		byCategory[item.Category] = append(byCategory[item.Category], scoredItem{
			index:      idx,
			similarity: Cosine(preferenceVec, vec),
		})
	}

	recommendation := models.Recommendation{}
	for category, scored := range byCategory {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].similarity > scored[j].similarity
		})
		if len(scored) > topN {
			scored = scored[:topN]
		}
		indices := make([]int, 0, len(scored))
		for _, s := range scored {
			indices = append(indices, s.index)
		}
		recommendation[category] = indices
	}
	return recommendation
}

// preferenceDescription asks the LLM for a short natural-language summary of
// what clothing the profile is likely to want.
func (e *Engine) preferenceDescription(ctx context.Context, profile models.UserProfile) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", err
	}
	exampleJSON, err := json.MarshalIndent(models.AllProfiles["Leo Nguyen"], "", "  ")
	if err != nil {
		return "", err
	}

	systemPrompt := fmt.Sprintf(`You're a fashion stylist who's a master at picking out the types of clothes
someone might like.

Taking as input JSON data of a user's online clothes shopping profile, give
a brief suggestion of what clothing the user may like.

Example:
    USER INPUT:
    %s

    RESPONSE:
    Leo Nguyen is looking for an outfit with a smart casual aesthetic, appropriate
    for the work environment. He has a preference for slim-fitting navy whites, though
    other colors are likely to match his style too, such as light gray and beige.

Context:

The fields of the user profile you will take as input: name, age, gender,
aesthetic, size, budget, event_type, browsing_data, purchase_history
(item/price pairs), preferences.`, exampleJSON)

	return e.ai.GenerateReply(ctx, systemPrompt, string(profileJSON))
}
