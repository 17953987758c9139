package domain

import "context"

// Space is a bookable room or stage of the venue. Spaces are managed out of
// band; the application only reads them to populate forms and validate
// references.
// swagger:model Space
type Space struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

// SpaceRepository defines read access to spaces.
type SpaceRepository interface {
	List(ctx context.Context) ([]*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
}
