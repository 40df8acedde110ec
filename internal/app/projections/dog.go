package projections

import (
	"github.com/barkbook/barkbook/internal/app/models"
	"github.com/barkbook/barkbook/internal/app/models/dto"
)

// EmbedDog is the reduced dog projection used inside a user response.
func EmbedDog(d *models.Dog, r URIResolver) dto.EmbeddedDogResponse {
	return dto.EmbeddedDogResponse{
		Name:    d.Name,
		URL:     r.DogURI(d.ID),
		Picture: d.Picture,
	}
}

// ProjectDog is the full dog projection. The owner is required.
func ProjectDog(d *models.Dog, agg DogAggregates, r URIResolver) (*dto.DogResponse, error) {
	if d.Owner == nil {
		return nil, missingReference("dog", d.ID, "owner")
	}

	return &dto.DogResponse{
		Name:        d.Name,
		URL:         r.DogURI(d.ID),
		Owner:       EmbedUser(d.Owner, r),
		Breed:       d.Breed,
		Picture:     d.Picture,
		Age:         d.Age,
		CreatedAt:   d.CreatedAt,
		Size:        d.Size,
		Energy:      d.Energy,
		Temper:      d.Temper,
		GroupSize:   d.GroupSize,
		Vaccinated:  d.Vaccinated,
		KidFriendly: d.KidFriendly,
		NumPosts:    agg.NumPosts,
	}, nil
}
