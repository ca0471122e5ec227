package handlers

import (
	"context"

	"github.com/campusparking/lotfinder/internal/chat"
	"github.com/campusparking/lotfinder/internal/models"
)

// FacilityProvider abstracts the parking lot data source for testability.
type FacilityProvider interface {
	List(ctx context.Context) ([]models.Facility, error)
}

// ChatProvider abstracts the conversational helper.
type ChatProvider interface {
	Reply(ctx context.Context, message string) (chat.Reply, error)
}
