package entity

// User is an operator account. Access is restricted to emails of the
// corporate domain; the check happens at registration time.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"not null;uniqueIndex"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"not null"`
	LastLogin    int64  `gorm:"autoUpdateTime:false"`
}
