package models

import "time"

// Feedback is a message a user typed into the landing page feedback box.
type Feedback struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ProfileName string     `gorm:"not null;index" json:"profile_name"`
	Message     string     `gorm:"type:text" json:"message" form:"feedback_text"`
	CreatedAt   *time.Time `json:"created_at"`
}
