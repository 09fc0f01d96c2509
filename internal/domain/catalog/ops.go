package catalog

import (
	"rock-music-hub/internal/domain/community"

	"gorm.io/gorm"
)

// BandInput carries every editable band field. Updates are full-replace:
// each field overwrites the stored value, and an empty optional URL becomes
// NULL rather than an empty string.
type BandInput struct {
	Name        string
	Country     string
	FormedYear  int
	Description string
	ImageURL    string
}

type AlbumInput struct {
	BandID      uint
	Title       string
	ReleaseYear int
	Genre       string
	Description string
	CoverURL    string
}

type EventInput struct {
	Title       string
	Venue       string
	City        string
	EventDate   string // "2006-01-02"
	Description string
	LinkURL     string
}

func optionalURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func CreateBand(db *gorm.DB, in BandInput) (*Band, error) {
	band := Band{
		Name:        in.Name,
		Country:     in.Country,
		FormedYear:  in.FormedYear,
		Description: in.Description,
		ImageURL:    optionalURL(in.ImageURL),
	}
	if err := db.Create(&band).Error; err != nil {
		return nil, err
	}
	return &band, nil
}

func UpdateBand(db *gorm.DB, id uint, in BandInput) (*Band, error) {
	var band Band
	if err := db.First(&band, id).Error; err != nil {
		return nil, err
	}
	band.Name = in.Name
	band.Country = in.Country
	band.FormedYear = in.FormedYear
	band.Description = in.Description
	band.ImageURL = optionalURL(in.ImageURL)
	if err := db.Save(&band).Error; err != nil {
		return nil, err
	}
	return &band, nil
}

// DeleteBand hard-deletes a band and everything hanging off it: albums, the
// playlist items and album favorites of those albums, band favorites, plus
// the comments targeting the band or its albums. One transaction.
func DeleteBand(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var band Band
		if err := tx.First(&band, id).Error; err != nil {
			return err
		}

		var albumIDs []uint
		if err := tx.Model(&Album{}).Where("band_id = ?", id).Pluck("id", &albumIDs).Error; err != nil {
			return err
		}
		if len(albumIDs) > 0 {
			if err := tx.Where("album_id IN ?", albumIDs).Delete(&community.PlaylistItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("album_id IN ?", albumIDs).Delete(&community.FavoriteAlbum{}).Error; err != nil {
				return err
			}
			if err := community.DeleteCommentsFor(tx, community.TargetAlbum, albumIDs...); err != nil {
				return err
			}
			if err := tx.Where("band_id = ?", id).Delete(&Album{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("band_id = ?", id).Delete(&community.FavoriteBand{}).Error; err != nil {
			return err
		}
		if err := community.DeleteCommentsFor(tx, community.TargetBand, id); err != nil {
			return err
		}
		return tx.Delete(&band).Error
	})
}

func CreateAlbum(db *gorm.DB, in AlbumInput) (*Album, error) {
	if err := db.First(&Band{}, in.BandID).Error; err != nil {
		return nil, err
	}
	album := Album{
		BandID:      in.BandID,
		Title:       in.Title,
		ReleaseYear: in.ReleaseYear,
		Genre:       in.Genre,
		CoverURL:    optionalURL(in.CoverURL),
		Description: in.Description,
	}
	if err := db.Create(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func UpdateAlbum(db *gorm.DB, id uint, in AlbumInput) (*Album, error) {
	var album Album
	if err := db.First(&album, id).Error; err != nil {
		return nil, err
	}
	if err := db.First(&Band{}, in.BandID).Error; err != nil {
		return nil, err
	}
	album.BandID = in.BandID
	album.Title = in.Title
	album.ReleaseYear = in.ReleaseYear
	album.Genre = in.Genre
	album.CoverURL = optionalURL(in.CoverURL)
	album.Description = in.Description
	if err := db.Save(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// DeleteAlbum hard-deletes an album with its playlist items, favorites and
// comments.
func DeleteAlbum(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var album Album
		if err := tx.First(&album, id).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&community.PlaylistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("album_id = ?", id).Delete(&community.FavoriteAlbum{}).Error; err != nil {
			return err
		}
		if err := community.DeleteCommentsFor(tx, community.TargetAlbum, id); err != nil {
			return err
		}
		return tx.Delete(&album).Error
	})
}

func CreateEvent(db *gorm.DB, in EventInput) (*Event, error) {
	date, err := ParseEventDate(in.EventDate)
	if err != nil {
		return nil, err
	}
	event := Event{
		Title:       in.Title,
		Venue:       in.Venue,
		City:        in.City,
		EventDate:   date,
		Description: in.Description,
		LinkURL:     optionalURL(in.LinkURL),
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func UpdateEvent(db *gorm.DB, id uint, in EventInput) (*Event, error) {
	var event Event
	if err := db.First(&event, id).Error; err != nil {
		return nil, err
	}
	date, err := ParseEventDate(in.EventDate)
	if err != nil {
		return nil, err
	}
	event.Title = in.Title
	event.Venue = in.Venue
	event.City = in.City
	event.EventDate = date
	event.Description = in.Description
	event.LinkURL = optionalURL(in.LinkURL)
	if err := db.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent hard-deletes an event and sweeps its comments.
func DeleteEvent(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		if err := community.DeleteCommentsFor(tx, community.TargetEvent, id); err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
}
