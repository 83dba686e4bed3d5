package model

type Category struct {
	ID    string `gorm:"type:varchar(64);primaryKey" json:"_id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Photo string `gorm:"type:text" json:"photo"`
}
