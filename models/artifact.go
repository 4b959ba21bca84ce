package models

import "gorm.io/gorm"

// Artifact is a catalog record. LikedCount is a denormalized counter kept in
// sync with the likes table by two independent writes; it is authoritative
// by convention only.
type Artifact struct {
	gorm.Model
	Name              string `json:"name"`
	Image             string `json:"image"`
	Type              string `json:"type"`
	HistoricalContext string `json:"historical_context"`
	CreatedYear       string `json:"created_year"`
	DiscoveredYear    string `json:"discovered_year"`
	DiscoveredBy      string `json:"discovered_by"`
	PresentLocation   string `json:"present_location"`
	AuthorName        string `json:"author_name"`
	AuthorEmail       string `json:"author_email" gorm:"index"`
	LikedCount        int    `json:"liked_count"`
}
