// model/review.go
package model

import "time"

type Review struct {
	ProductID int64     `json:"productId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	User      string    `json:"user"`
}

// ReviewStats is recomputed on every read as a pure function over the
// product's review list.
type ReviewStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Buckets [5]int  `json:"buckets"` // Buckets[0] counts 1-star reviews
}
