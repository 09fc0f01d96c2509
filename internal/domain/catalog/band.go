package catalog

import "time"

type Band struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:120;not null" json:"name"`
	Country     string  `gorm:"size:80;not null" json:"country"`
	FormedYear  int     `gorm:"not null" json:"formed_year"`
	Description string  `gorm:"type:text;not null" json:"description"`
	ImageURL    *string `gorm:"size:255" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Albums []Album `gorm:"foreignKey:BandID" json:"albums,omitempty"`
}
