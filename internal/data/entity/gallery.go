package entity

import "time"

// Gallery is a single ordered list of image URLs
type Gallery struct {
	Images    []string  `db:"images"`
	UpdatedAt time.Time `db:"updated_at"`
}
