package models

// FavoriteKind is the discriminant of the favorite union. A dish and a
// venue that happen to share an ID never collide because the kind
// partitions every lookup.
type FavoriteKind string

const (
	FavoriteDish  FavoriteKind = "dish"
	FavoriteVenue FavoriteKind = "venue"
)

// Favorite is a tagged variant: dish favorites carry Venue and Price,
// venue favorites carry Category, Rating, TimeEstimate and Distance.
type Favorite struct {
	ID           string       `json:"id"`
	Kind         FavoriteKind `json:"kind"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	Venue        string       `json:"venue,omitempty"`
	Price        float64      `json:"price,omitempty"`
	Category     string       `json:"category,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	TimeEstimate string       `json:"time_estimate,omitempty"`
	Distance     float64      `json:"distance,omitempty"`
}
