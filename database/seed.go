package database

import (
	"time"

	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/users"

	"gorm.io/gorm"
)

// AdminCredentials are the bootstrap values for the first administrator.
type AdminCredentials struct {
	Username string
	Email    string
	Password string
}

// Seed populates an empty store with the demo catalog. If any user row
// already exists the whole routine is a no-op, so running it on every start
// is safe.
func Seed(db *gorm.DB, admin AdminCredentials) error {
	var count int64
	if err := db.Model(&users.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		root := users.User{
			Username: admin.Username,
			Email:    users.NormalizeEmail(admin.Email),
			IsAdmin:  true,
		}
		if err := root.SetPassword(admin.Password); err != nil {
			return err
		}
		if err := tx.Create(&root).Error; err != nil {
			return err
		}

		bands := seedBands()
		if err := tx.Create(&bands).Error; err != nil {
			return err
		}
		albums := seedAlbums(bands)
		if err := tx.Create(&albums).Error; err != nil {
			return err
		}
		events := seedEvents()
		return tx.Create(&events).Error
	})
}

func url(s string) *string { return &s }

func seedBands() []catalog.Band {
	return []catalog.Band{
		{
			Name:        "The Rolling Stones",
			Country:     "United Kingdom",
			FormedYear:  1962,
			Description: "Iconic rock innovators known for blues-infused swagger and legendary tours.",
			ImageURL:    url("https://images.unsplash.com/photo-1459749411175-04bf5292ceea"),
		},
		{
			Name:        "Nirvana",
			Country:     "United States",
			FormedYear:  1987,
			Description: "Grunge pioneers who redefined rock with raw emotion and explosive energy.",
			ImageURL:    url("https://images.unsplash.com/photo-1485579149621-3123dd979885"),
		},
		{
			Name:        "Queen",
			Country:     "United Kingdom",
			FormedYear:  1970,
			Description: "Theatrical rock legends blending operatic ambition with stadium anthems.",
			ImageURL:    url("https://images.unsplash.com/photo-1507878866276-a947ef722fee"),
		},
		{
			Name:        "Foo Fighters",
			Country:     "United States",
			FormedYear:  1994,
			Description: "Arena-ready rock with melodic hooks and massive drum-driven energy.",
			ImageURL:    url("https://images.unsplash.com/photo-1500530855697-b586d89ba3ee"),
		},
		{
			Name:        "Led Zeppelin",
			Country:     "United Kingdom",
			FormedYear:  1968,
			Description: "Hard rock pioneers blending blues, folk, and mythic storytelling.",
			ImageURL:    url("https://images.unsplash.com/photo-1511379938547-c1f69419868d"),
		},
		{
			Name:        "Arctic Monkeys",
			Country:     "United Kingdom",
			FormedYear:  2002,
			Description: "Indie rock storytellers with sharp riffs and moody crooning.",
			ImageURL:    url("https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3"),
		},
	}
}

func seedAlbums(bands []catalog.Band) []catalog.Album {
	return []catalog.Album{
		{
			BandID:      bands[0].ID,
			Title:       "Let It Bleed",
			ReleaseYear: 1969,
			Genre:       "Classic Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f"),
			Description: "A landmark album filled with swaggering riffs and bluesy grit.",
		},
		{
			BandID:      bands[0].ID,
			Title:       "Sticky Fingers",
			ReleaseYear: 1971,
			Genre:       "Classic Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1485579149621-3123dd979885"),
			Description: "Soulful grooves and anthemic rock that defined the Stones' peak.",
		},
		{
			BandID:      bands[1].ID,
			Title:       "Nevermind",
			ReleaseYear: 1991,
			Genre:       "Grunge",
			CoverURL:    url("https://images.unsplash.com/photo-1459749411175-04bf5292ceea"),
			Description: "The record that brought grunge to the mainstream with raw power.",
		},
		{
			BandID:      bands[1].ID,
			Title:       "In Utero",
			ReleaseYear: 1993,
			Genre:       "Grunge",
			CoverURL:    url("https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3"),
			Description: "A darker, more abrasive follow-up filled with emotional intensity.",
		},
		{
			BandID:      bands[2].ID,
			Title:       "A Night at the Opera",
			ReleaseYear: 1975,
			Genre:       "Classic Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1511379938547-c1f69419868d"),
			Description: "Operatic ambition and intricate songwriting defined by 'Bohemian Rhapsody'.",
		},
		{
			BandID:      bands[2].ID,
			Title:       "News of the World",
			ReleaseYear: 1977,
			Genre:       "Classic Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1487180144351-b8472da7d491"),
			Description: "Stadium anthems and heavier riffs fuel Queen's global domination.",
		},
		{
			BandID:      bands[3].ID,
			Title:       "The Colour and the Shape",
			ReleaseYear: 1997,
			Genre:       "Alternative Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1500530855697-b586d89ba3ee"),
			Description: "Melodic grit and powerful hooks that propelled Foo Fighters forward.",
		},
		{
			BandID:      bands[4].ID,
			Title:       "Led Zeppelin IV",
			ReleaseYear: 1971,
			Genre:       "Hard Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1506157786151-b8491531f063"),
			Description: "Epic compositions and the immortal 'Stairway to Heaven'.",
		},
		{
			BandID:      bands[5].ID,
			Title:       "AM",
			ReleaseYear: 2013,
			Genre:       "Indie Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3"),
			Description: "Dark grooves and confident swagger define Arctic Monkeys' evolution.",
		},
		{
			BandID:      bands[5].ID,
			Title:       "Whatever People Say I Am, That's What I'm Not",
			ReleaseYear: 2006,
			Genre:       "Indie Rock",
			CoverURL:    url("https://images.unsplash.com/photo-1500530855697-b586d89ba3ee"),
			Description: "A sharp, witty debut packed with storytelling and kinetic riffs.",
		},
	}
}

func seedEvents() []catalog.Event {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []catalog.Event{
		{
			Title:       "Classic Rock Revival Night",
			Venue:       "Apollo Theater",
			City:        "New York",
			EventDate:   day(2025, time.March, 22),
			Description: "A multi-band tribute celebrating the legends of classic rock.",
			LinkURL:     url("https://example.com/rock-revival"),
		},
		{
			Title:       "Festival of Sound",
			Venue:       "Echo Park",
			City:        "Los Angeles",
			EventDate:   day(2025, time.May, 14),
			Description: "An outdoor festival featuring modern rock and indie headliners.",
			LinkURL:     url("https://example.com/festival-sound"),
		},
		{
			Title:       "Grunge & Grit",
			Venue:       "The Crocodile",
			City:        "Seattle",
			EventDate:   day(2025, time.April, 2),
			Description: "A night dedicated to the raw energy of 90s Seattle bands.",
			LinkURL:     url("https://example.com/grunge-grit"),
		},
		{
			Title:       "Vinyl Listening Lounge",
			Venue:       "Soundwave Cafe",
			City:        "Austin",
			EventDate:   day(2025, time.February, 15),
			Description: "Community listening party featuring deep cuts and rare pressings.",
			LinkURL:     url("https://example.com/vinyl-night"),
		},
		{
			Title:       "Stadium Singalong",
			Venue:       "Wembley Stadium",
			City:        "London",
			EventDate:   day(2025, time.September, 5),
			Description: "A massive singalong celebrating iconic rock anthems.",
			LinkURL:     url("https://example.com/stadium-singalong"),
		},
	}
}
