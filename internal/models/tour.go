package models

import "encoding/json"

// Coordinates is a WGS 84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Stop is a single point of interest along a tour.
type Stop struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
	Expanded    bool        `json:"expanded"`
}

// Tour is a generated walking tour. Stops keep the order they were generated in.
type Tour struct {
	ID          string      `json:"id"`
	Prompt      string      `json:"prompt"`
	Description string      `json:"description"`
	Coordinates Coordinates `json:"coordinates"`
	Stops       []Stop      `json:"stops"`
}

// MarshalJSON writes a tour without stops as an empty list rather than null.
func (t Tour) MarshalJSON() ([]byte, error) {
	type plain Tour
	if t.Stops == nil {
		t.Stops = []Stop{}
	}
	return json.Marshal(plain(t))
}
