package catalog

import "time"

type Album struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	BandID      uint    `gorm:"not null;index" json:"band_id"`
	Title       string  `gorm:"size:150;not null" json:"title"`
	ReleaseYear int     `gorm:"not null" json:"release_year"`
	Genre       string  `gorm:"size:80;not null" json:"genre"`
	CoverURL    *string `gorm:"size:255" json:"cover_url,omitempty"`
	Description string  `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Band *Band `gorm:"foreignKey:BandID" json:"band,omitempty"`
}
