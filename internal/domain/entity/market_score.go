package entity

// MarketScore is a heuristic view of how active an area is. It is not authoritative.
type MarketScore struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	RadiusKm  float64            `json:"radius_km"`
	Score     float64            `json:"score"` // 0-100, one decimal
	Counts    map[EntityType]int `json:"counts"`
	Cached    bool               `json:"cached"`
}
