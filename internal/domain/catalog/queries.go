package catalog

import (
	"strings"
	"time"

	"rock-music-hub/internal/domain/community"

	"gorm.io/gorm"
)

// likePattern lowercases the term for the LOWER(col) LIKE comparisons below,
// which behave the same on postgres and sqlite.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// FilterBands lists bands ordered by name, optionally narrowed by
// case-insensitive substring match on name and country.
func FilterBands(db *gorm.DB, name, country string) ([]Band, error) {
	q := db.Model(&Band{})
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(name))
	}
	if country != "" {
		q = q.Where("LOWER(country) LIKE ?", likePattern(country))
	}
	var bands []Band
	err := q.Order("name ASC").Find(&bands).Error
	return bands, err
}

// FilterAlbums lists albums newest release first, optionally narrowed by
// substring match on title and genre.
func FilterAlbums(db *gorm.DB, title, genre string) ([]Album, error) {
	q := db.Model(&Album{}).Preload("Band")
	if title != "" {
		q = q.Where("LOWER(title) LIKE ?", likePattern(title))
	}
	if genre != "" {
		q = q.Where("LOWER(genre) LIKE ?", likePattern(genre))
	}
	var albums []Album
	err := q.Order("release_year DESC").Find(&albums).Error
	return albums, err
}

// FilterEvents lists events by date, optionally narrowed by city substring
// and a lower date bound.
func FilterEvents(db *gorm.DB, city string, after *time.Time) ([]Event, error) {
	q := db.Model(&Event{})
	if city != "" {
		q = q.Where("LOWER(city) LIKE ?", likePattern(city))
	}
	if after != nil {
		q = q.Where("event_date >= ?", *after)
	}
	var events []Event
	err := q.Order("event_date ASC").Find(&events).Error
	return events, err
}

func FindBand(db *gorm.DB, id uint) (*Band, error) {
	var band Band
	err := db.Preload("Albums", func(db *gorm.DB) *gorm.DB {
		return db.Order("release_year DESC")
	}).First(&band, id).Error
	if err != nil {
		return nil, err
	}
	return &band, nil
}

func FindAlbum(db *gorm.DB, id uint) (*Album, error) {
	var album Album
	if err := db.Preload("Band").First(&album, id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func FindEvent(db *gorm.DB, id uint) (*Event, error) {
	var event Event
	if err := db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// TargetExists checks the referenced row behind a polymorphic comment
// target. The (kind, id) pair has no storage-level foreign key, so this is
// the integrity check.
func TargetExists(db *gorm.DB, kind community.TargetKind, id uint) (bool, error) {
	var count int64
	var err error
	switch kind {
	case community.TargetBand:
		err = db.Model(&Band{}).Where("id = ?", id).Count(&count).Error
	case community.TargetAlbum:
		err = db.Model(&Album{}).Where("id = ?", id).Count(&count).Error
	case community.TargetEvent:
		err = db.Model(&Event{}).Where("id = ?", id).Count(&count).Error
	}
	return count > 0, err
}

// Home feed queries.

func FeaturedBands(db *gorm.DB, limit int) ([]Band, error) {
	var bands []Band
	err := db.Order("created_at DESC").Limit(limit).Find(&bands).Error
	return bands, err
}

func RecentAlbums(db *gorm.DB, limit int) ([]Album, error) {
	var albums []Album
	err := db.Preload("Band").Order("release_year DESC").Limit(limit).Find(&albums).Error
	return albums, err
}

func UpcomingEvents(db *gorm.DB, limit int) ([]Event, error) {
	var events []Event
	err := db.Order("event_date ASC").Limit(limit).Find(&events).Error
	return events, err
}

// AlbumsByIDs loads albums with their band for favorite listings.
func AlbumsByIDs(db *gorm.DB, ids []uint) ([]Album, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var albums []Album
	err := db.Preload("Band").Where("id IN ?", ids).Order("release_year DESC").Find(&albums).Error
	return albums, err
}

// BandsByIDs loads bands for favorite listings.
func BandsByIDs(db *gorm.DB, ids []uint) ([]Band, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var bands []Band
	err := db.Where("id IN ?", ids).Order("name ASC").Find(&bands).Error
	return bands, err
}
