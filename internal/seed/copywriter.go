package seed

import (
	"context"
	"fmt"
	"math/rand"
)

// Copywriter produces the human-readable text of the generated records.
// Implementations may call an external model; the generator falls back
// to StaticCopywriter whenever a call fails.
type Copywriter interface {
	PropertyListing(ctx context.Context, city City, propertyType string) (title, description string, err error)
	ReviewComment(ctx context.Context, propertyType, cityName string, rating int) (string, error)
}

// StaticCopywriter fills the same slots from canned templates. Output
// depends only on the generator's seed, so runs are reproducible.
type StaticCopywriter struct {
	rng *rand.Rand
}

func NewStaticCopywriter(rng *rand.Rand) *StaticCopywriter {
	return &StaticCopywriter{rng: rng}
}

var titleAdjectives = []string{"Beautiful", "Cozy", "Sunny", "Modern", "Charming", "Spacious", "Stylish", "Quiet"}

var reviewComments = []string{
	"Great place to stay! Very clean and comfortable.",
	"Perfect location and amazing host. Highly recommended!",
	"Nice space but could use some updates.",
	"Exactly as described. Would book again.",
	"Beautiful property with great amenities.",
	"Good value for the price, though the neighborhood was a bit noisy.",
}

func (s *StaticCopywriter) PropertyListing(_ context.Context, city City, propertyType string) (string, string, error) {
	adj := titleAdjectives[s.rng.Intn(len(titleAdjectives))]
	title := fmt.Sprintf("%s %s in %s", adj, propertyType, city.Name)
	description := fmt.Sprintf(
		"A lovely %s located in the heart of %s, %s. Modern amenities and easy access to restaurants, shops and public transport.",
		propertyType, city.Name, city.Country,
	)
	return title, description, nil
}

func (s *StaticCopywriter) ReviewComment(_ context.Context, _, _ string, rating int) (string, error) {
	if rating <= 2 {
		return "Disappointing stay, the listing promised more than it delivered.", nil
	}
	return reviewComments[s.rng.Intn(len(reviewComments))], nil
}
