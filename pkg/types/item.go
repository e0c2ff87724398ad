package types

import (
	"encoding/json"
	"time"
)

// ItineraryItem is a single scheduled activity: one calendar day plus a
// clock-hour interval [StartTime, EndTime). Times are decimal hours
// (9.5 = 9:30).
type ItineraryItem struct {
	ID             string       `json:"id"`
	LegacyID       string       `json:"_id,omitempty"`
	Day            time.Time    `json:"day"`
	StartTime      float64      `json:"startTime"`
	EndTime        float64      `json:"endTime"`
	ExperienceID   string       `json:"experienceId,omitempty"`
	ExperienceName string       `json:"experienceName"`
	Price          float64      `json:"price"`
	Duration       string       `json:"duration,omitempty"`
	Category       string       `json:"category,omitempty"`
	Media          Media        `json:"media"`
	Location       *LocationRef `json:"locationRef,omitempty"`
}

// DurationHours returns the item's scheduled length in hours.
func (it ItineraryItem) DurationHours() float64 {
	return it.EndTime - it.StartTime
}

// Validate checks the item-level interval invariant.
func (it ItineraryItem) Validate() error {
	if it.EndTime <= it.StartTime {
		return ErrInvalidInterval
	}
	return nil
}

// Media holds an item's image references. Images is always a non-nil
// slice of plain URL strings; decoding drops anything else rather than
// carrying a broken reference through serialization.
type Media struct {
	Image  string   `json:"image,omitempty"`
	Images []string `json:"images"`
}

// mediaWire mirrors Media with Images left loose so malformed entries
// can be filtered instead of failing the whole decode.
type mediaWire struct {
	Image  string            `json:"image"`
	Images []json.RawMessage `json:"images"`
}

// UnmarshalJSON decodes media defensively: non-string entries in the
// images array are dropped and a null or missing array becomes empty.
func (m *Media) UnmarshalJSON(data []byte) error {
	var w mediaWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Image = w.Image
	m.Images = filterStringRefs(w.Images)
	return nil
}

// MarshalJSON guarantees the images field is emitted as an array of
// strings, never null.
func (m Media) MarshalJSON() ([]byte, error) {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return json.Marshal(struct {
		Image  string   `json:"image,omitempty"`
		Images []string `json:"images"`
	}{Image: m.Image, Images: images})
}

// Sanitize drops empty entries and forces Images to a non-nil slice.
func (m *Media) Sanitize() {
	out := make([]string, 0, len(m.Images))
	for _, s := range m.Images {
		if s != "" {
			out = append(out, s)
		}
	}
	m.Images = out
}

func filterStringRefs(raw []json.RawMessage) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LocationRef points an item or experience at a concrete place.
type LocationRef struct {
	Address  string  `json:"address"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
	PlaceRef string  `json:"placeRef,omitempty"`
}
