package controllers

import (
	"context"

	"stylist/models"
)

// Recommender is implemented by recommend.Engine; controllers only need the
// one call.
type Recommender interface {
	Recommend(ctx context.Context, profile models.UserProfile, topN int) models.Recommendation
}

// App carries the wired dependencies into the handlers instead of package
// globals, so the web layer stays testable with a stub engine.
type App struct {
	Engine Recommender
	Items  []models.CatalogItem
	TopN   int
}

func NewApp(engine Recommender, items []models.CatalogItem, topN int) *App {
	return &App{Engine: engine, Items: items, TopN: topN}
}
