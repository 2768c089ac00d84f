package domain

import "time"

// Banner is the live-stream announcement shown on the storefront.
// It is independent of the question lifecycle.
type Banner struct {
	Active    bool      `json:"active"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updatedAt"`
}
