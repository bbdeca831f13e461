// Package session holds the per-visitor form state carried between page
// submissions.
package session

import (
	"context"
	"errors"

	"alfredoptarigan/job-posting-classifier/internal/models"
)

// State is everything the form remembers about one visitor. Page handlers
// receive a copy and return the state to persist.
type State struct {
	Page       models.Page          `json:"page"`
	LoggedIn   bool                 `json:"logged_in"`
	Registered bool                 `json:"registered"`
	Image      *models.PostingImage `json:"image,omitempty"`
}

// NewState is the state of a first visit.
func NewState() State {
	return State{Page: models.PageLogin}
}

var ErrNotFound = errors.New("session not found")

// Store persists session state by id.
type Store interface {
	// Load returns ErrNotFound for an unknown or expired id.
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, state State) error
	Delete(ctx context.Context, id string) error
}
