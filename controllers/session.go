package controllers

import (
	"encoding/json"
	"log"

	"stylist/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const stateKey = "state"

// SessionState is all per-browser state the demo keeps, serialized as one
// JSON blob in the cookie session.
type SessionState struct {
	ProfileName    string                `json:"profile_name"`
	GaveFeedback   bool                  `json:"gave_feedback"`
	Recommendation models.Recommendation `json:"recommendation"`
	Cursors        map[string]int        `json:"cursors"`
}

// Reset clears everything except the active profile. Called on every entry
// to the landing page.
func (s *SessionState) Reset() {
	s.GaveFeedback = false
	s.Recommendation = nil
	s.Cursors = nil
}

// Cursor returns the swap cursor for a category, zero when never bumped.
func (s *SessionState) Cursor(category string) int {
	return s.Cursors[category]
}

// Bump advances a category's swap cursor. Cursors only ever grow; indexing
// is done modulo the recommendation list length.
func (s *SessionState) Bump(category string) {
	if s.Cursors == nil {
		s.Cursors = map[string]int{}
	}
	s.Cursors[category]++
}

// LoadState reads the session state, defaulting to the Ava Chen profile on
// first visit or on a blob that fails to decode.
func LoadState(c *gin.Context) SessionState {
	st := SessionState{ProfileName: models.DefaultProfileName}

	raw := sessions.Default(c).Get(stateKey)
	blob, ok := raw.(string)
	if !ok || blob == "" {
		return st
	}
	if err := json.Unmarshal([]byte(blob), &st); err != nil {
		log.Printf("session: bad state blob, resetting: %v", err)
		return SessionState{ProfileName: models.DefaultProfileName}
	}
	if st.ProfileName == "" {
		st.ProfileName = models.DefaultProfileName
	}
	return st
}

// SaveState writes the session state back to the cookie.
func SaveState(c *gin.Context, st SessionState) {
	blob, err := json.Marshal(st)
	if err != nil {
		log.Printf("session: encode state: %v", err)
		return
	}
	s := sessions.Default(c)
	s.Set(stateKey, string(blob))
	if err := s.Save(); err != nil {
		log.Printf("session: save: %v", err)
	}
}
