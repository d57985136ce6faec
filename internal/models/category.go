package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RatingCategory is the quality tier the forecast source assigns to an interval.
type RatingCategory string

const (
	Poor       RatingCategory = "POOR"
	PoorToFair RatingCategory = "POOR_TO_FAIR"
	Fair       RatingCategory = "FAIR"
	FairToGood RatingCategory = "FAIR_TO_GOOD"
	Good       RatingCategory = "GOOD"
	GoodToEpic RatingCategory = "GOOD_TO_EPIC"
	Epic       RatingCategory = "EPIC"
)

var categoryOrder = []RatingCategory{Poor, PoorToFair, Fair, FairToGood, Good, GoodToEpic, Epic}

var titleCaser = cases.Title(language.English)

// ParseRatingCategory normalizes a rating key from the API. Keys outside the
// known ladder are kept verbatim so grouping still works on them.
func ParseRatingCategory(key string) RatingCategory {
	return RatingCategory(strings.ToUpper(strings.TrimSpace(key)))
}

// Rank returns the position of c on the POOR..EPIC ladder, or -1 if c is not
// a known category.
func (c RatingCategory) Rank() int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}
	return -1
}

// Known reports whether c is one of the ladder categories.
func (c RatingCategory) Known() bool {
	return c.Rank() >= 0
}

// AtLeast reports whether c ranks at or above other. Unknown categories never
// rank at or above anything.
func (c RatingCategory) AtLeast(other RatingCategory) bool {
	r := c.Rank()
	return r >= 0 && r >= other.Rank()
}

// Label renders the category for humans: FAIR_TO_GOOD becomes "Fair To Good".
func (c RatingCategory) Label() string {
	return titleCaser.String(strings.ReplaceAll(string(c), "_", " "))
}

func (c RatingCategory) String() string {
	return string(c)
}
