package catalog

import "time"

// Event is independent of bands and albums; comments attach to it through
// the polymorphic (target_kind, target_id) pair in the community package.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:150;not null" json:"title"`
	Venue       string    `gorm:"size:150;not null" json:"venue"`
	City        string    `gorm:"size:100;not null" json:"city"`
	EventDate   time.Time `gorm:"not null" json:"event_date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	LinkURL     *string   `gorm:"size:255" json:"link_url,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
