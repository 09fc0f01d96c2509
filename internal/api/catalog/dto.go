package catalog

// Requests for the admin-guarded catalog mutations. Optional URL fields are
// allowed to arrive empty; the domain layer normalizes "" to NULL.

type BandRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Country     string `json:"country" binding:"required,max=80"`
	FormedYear  int    `json:"formed_year" binding:"required,min=1950,max=2100"`
	Description string `json:"description" binding:"required,min=20,max=2000"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=255"`
}

type AlbumRequest struct {
	BandID      uint   `json:"band_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=150"`
	ReleaseYear int    `json:"release_year" binding:"required,min=1950,max=2100"`
	Genre       string `json:"genre" binding:"required,max=80"`
	Description string `json:"description" binding:"required,min=20,max=2000"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=255"`
}

type EventRequest struct {
	Title       string `json:"title" binding:"required,max=150"`
	Venue       string `json:"venue" binding:"required,max=150"`
	City        string `json:"city" binding:"required,max=100"`
	EventDate   string `json:"event_date" binding:"required"`
	Description string `json:"description" binding:"required,min=20,max=2000"`
	LinkURL     string `json:"link_url" binding:"omitempty,url,max=255"`
}
