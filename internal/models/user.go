// internal/models/user.go
package models

// User is owned by the user-management service; only the fields needed to
// populate review authors live here.
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100"`
	Email string `json:"email" gorm:"size:255;uniqueIndex"`
	Image string `json:"image" gorm:"size:500"`
}
