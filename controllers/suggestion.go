package controllers

import (
	"net/http"

	"stylist/models"

	"github.com/gin-gonic/gin"
)

// OutfitPiece is one rendered slot of the suggested outfit.
type OutfitPiece struct {
	Category    string
	ProductID   string
	ClothesImg  string
	ModelImg    string
	ProductLink string
}

// Suggestion serves the outfit page. The recommendation is computed once on
// first entry and cached in the session; swap and new-outfit actions only
// move cursors and redirect back here.
func (a *App) Suggestion(c *gin.Context) {
	st := LoadState(c)

	if c.Request.Method == http.MethodPost {
		if c.PostForm("new_outfit") == "yes" {
			st.Bump(models.CategoryTops)
			st.Bump(models.CategoryBottoms)
		} else if category := c.PostForm("swap"); category != "" {
			st.Bump(category)
		}
		SaveState(c, st)
		c.Redirect(http.StatusFound, "/suggestion")
		return
	}

	if st.Recommendation == nil {
		profile := models.ProfileByName(st.ProfileName)
		st.Recommendation = a.Engine.Recommend(c.Request.Context(), profile, a.TopN)
		SaveState(c, st)
	}

	if st.Recommendation.Empty() {
		c.HTML(http.StatusOK, "suggestion.html", gin.H{
			"Profile":           models.ProfileByName(st.ProfileName),
			"NoRecommendations": true,
		})
		return
	}

	var outfit []OutfitPiece
	for _, category := range []string{models.CategoryTops, models.CategoryBottoms, models.CategoryOuterwear} {
		idx, ok := st.Recommendation.At(category, st.Cursor(category))
		if !ok || idx < 0 || idx >= len(a.Items) {
			continue
		}
		item := a.Items[idx]
		outfit = append(outfit, OutfitPiece{
			Category:    category,
			ProductID:   item.ProductID,
			ClothesImg:  "/static/images/clothes/" + item.ProductID + ".jpg",
			ModelImg:    "/static/images/models/" + item.ProductID + ".jpg",
			ProductLink: item.ProductLink,
		})
	}

	c.HTML(http.StatusOK, "suggestion.html", gin.H{
		"Profile": models.ProfileByName(st.ProfileName),
		"Outfit":  outfit,
	})
}
