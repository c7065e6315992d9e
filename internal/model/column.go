package model

// Column is a board lane. Position drives the display order of the
// whole board; ties fall back to id so the ordering stays stable.
type Column struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Position int    `gorm:"not null;default:0"`

	Tasks []Task `gorm:"foreignKey:ColumnID"`
}
