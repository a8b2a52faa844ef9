package catalog

import (
	"errors"
	"time"
)

// RecentLimit caps the recent-listings feed.
const RecentLimit = 10

// MaxImages is the number of image slots a listing carries.
const MaxImages = 5

var (
	ErrMissingFields = errors.New("missing listing fields")
	ErrEmptyQuery    = errors.New("empty search query")
	ErrNotFound      = errors.New("listing not found")
	ErrTooManyImages = errors.New("too many images")
)

// Product is a listing offered for sale. Images holds up to five relative
// paths under the public uploads root.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images,omitempty"`
	SellerID    int64     `json:"seller_id"`
	PublishedAt time.Time `json:"published_at"`
}

// MainImage is the first image, used for order snapshots.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type PublishInput struct {
	SellerID    int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Images      []string
}
