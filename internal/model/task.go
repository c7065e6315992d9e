package model

// Task lives in exactly one column. Moving it between columns is a
// plain reassignment of ColumnID.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Content     string `gorm:"not null"`
	Description string
	ColumnID    uint  `gorm:"not null;index"`
	OwnerID     *uint `gorm:"index"`
}
