package dto

import "time"

// EmbeddedDogResponse is the reduced dog shape nested inside other entities.
type EmbeddedDogResponse struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Picture string `json:"picture"`
}

// DogResponse is the complete dog shape. NumPosts is a derived aggregate.
type DogResponse struct {
	Name        string               `json:"name"`
	URL         string               `json:"url"`
	Owner       EmbeddedUserResponse `json:"owner"`
	Breed       string               `json:"breed"`
	Picture     string               `json:"picture"`
	Age         int                  `json:"age"`
	CreatedAt   time.Time            `json:"created_at"`
	Size        string               `json:"size"`
	Energy      string               `json:"energy"`
	Temper      string               `json:"temper"`
	GroupSize   string               `json:"group_size"`
	Vaccinated  bool                 `json:"vaccinated"`
	KidFriendly bool                 `json:"kid_friendly"`
	NumPosts    int64                `json:"num_posts"`
}
