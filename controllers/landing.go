package controllers

import (
	"log"
	"net/http"
	"strings"

	dbpkg "stylist/db"
	"stylist/models"

	"github.com/gin-gonic/gin"
)

// Index serves the landing page: profile selection plus the feedback prompt.
//
// GET resets the session to a clean landing state. POST handles the three
// landing actions (ask for feedback form, submit feedback, switch profile);
// any other submission moves on to /suggestion.
func (a *App) Index(c *gin.Context) {
	st := LoadState(c)
	st.Reset()

	if c.Request.Method == http.MethodPost {
		switch {
		case c.PostForm("gave_feedback") == "yes":
			// re-render with the feedback box, no transition
			st.GaveFeedback = true
			SaveState(c, st)
			a.renderLanding(c, st)
			return

		case c.PostForm("gave_feedback") == "submit":
			a.storeFeedback(c, st.ProfileName, c.PostForm("feedback_text"))
			SaveState(c, st)
			c.Redirect(http.StatusFound, "/suggestion")
			return

		case c.PostForm("do_profile_switch") == "yes":
			st.ProfileName = models.OtherProfile(st.ProfileName).Name
			SaveState(c, st)
			a.renderLanding(c, st)
			return

		default:
			SaveState(c, st)
			c.Redirect(http.StatusFound, "/suggestion")
			return
		}
	}

	SaveState(c, st)
	a.renderLanding(c, st)
}

func (a *App) renderLanding(c *gin.Context, st SessionState) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Profile":          models.ProfileByName(st.ProfileName),
		"ShowFeedbackForm": st.GaveFeedback,
	})
}

// storeFeedback persists a feedback submission. The demo keeps going when
// storage fails; losing a feedback row is not worth an error page.
func (a *App) storeFeedback(c *gin.Context, profileName, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		log.Printf("feedback: db not configured, dropping message")
		return
	}
	fb := models.Feedback{ProfileName: profileName, Message: message}
	if err := db.Create(&fb).Error; err != nil {
		log.Printf("feedback: store: %v", err)
	}
}
