package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// seedEntry is one row of the starter catalog.
type seedEntry struct {
	id       string
	name     string
	duration string
	price    float64
	category string
	address  string
	images   []string
}

// starterCatalog is loaded on first attach so a fresh install has
// something to browse before a catalog service is configured.
var starterCatalog = []seedEntry{
	{
		id: "seed-city-walking-tour", name: "Old town walking tour",
		duration: "2 hours", price: 25, category: "sightseeing",
		address: "1 Market Square",
	},
	{
		id: "seed-museum-of-art", name: "Museum of art",
		duration: "3 hours", price: 18, category: "culture",
		address: "45 Gallery St",
	},
	{
		id: "seed-harbor-kayak", name: "Harbor kayak rental",
		duration: "1.5 hours", price: 40, category: "outdoors",
		address: "Pier 9",
	},
	{
		id: "seed-night-market", name: "Night market food crawl",
		duration: "2 hours", price: 30, category: "food",
		address: "Lantern Alley",
	},
	{
		id: "seed-botanical-garden", name: "Botanical garden",
		duration: "1 hour", price: 0, category: "outdoors",
		address: "200 Garden Rd",
	},
	{
		id: "seed-cooking-class", name: "Regional cooking class",
		duration: "3 hours", price: 65, category: "food",
		address: "12 Chef's Lane",
	},
	{
		id: "seed-observation-deck", name: "Tower observation deck",
		duration: "1 hour", price: 22, category: "sightseeing",
		address: "500 Skyline Ave",
	},
	{
		id: "seed-river-cruise", name: "Evening river cruise",
		duration: "2 hours", price: 35, category: "sightseeing",
		address: "Dock 3",
	},
}

// seedExperiences loads the starter catalog when the experiences table
// is empty. Re-attaching an existing database is a no-op.
func seedExperiences(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM experiences`).Scan(&count); err != nil {
		return fmt.Errorf("counting experiences: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, e := range starterCatalog {
		images := e.images
		if images == nil {
			images = []string{}
		}
		encoded, err := json.Marshal(images)
		if err != nil {
			return fmt.Errorf("encoding seed images: %w", err)
		}
		_, err = db.Exec(
			`INSERT INTO experiences (experience_id, name, duration, price, category, is_location, address, images)
             VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
			e.id, e.name, e.duration, e.price, e.category, e.address, string(encoded))
		if err != nil {
			return fmt.Errorf("inserting seed experience %s: %w", e.id, err)
		}
	}
	return nil
}
