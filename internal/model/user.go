package model

// User is created on first login for a username. There is no password:
// the username is the whole identity.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	IsPremium bool   `gorm:"column:is_premium;not null;default:false" json:"isPremium"`
}
