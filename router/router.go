package router

import (
	"log"

	"stylist/config"
	"stylist/controllers"
	dbpkg "stylist/db"
	"stylist/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Initialize wires middlewares, templates and the two demo routes.
func Initialize(r *gin.Engine, cfg config.Configuration, database *gorm.DB, app *controllers.App) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(dbpkg.SetDBtoContext(database))

	// Session data is signed with the secret key. Not important for a
	// simple demo.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("stylist_session", store))

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/", Logger(), app.Index)
	r.POST("/", Logger(), app.Index)
	r.GET("/suggestion", Logger(), app.Suggestion)
	r.POST("/suggestion", Logger(), app.Suggestion)

	log.Printf("Routes initialized")
}
