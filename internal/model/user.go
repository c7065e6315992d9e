package model

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	FullName       string
	HashedPassword string `gorm:"not null"`
}
