package repository

import (
	"context"

	"learnalert/internal/domain/entity"
)

// DeckRepository defines the interface for deck data operations.
type DeckRepository interface {
	// FindByID retrieves a deck with its topics and cards preloaded.
	// Topics are ordered by creation time ascending, cards within each
	// topic likewise — the order the scheduling engine flattens them in.
	FindByID(ctx context.Context, id uint) (*entity.Deck, error)
	// FindAll retrieves all decks ordered by their list position.
	FindAll(ctx context.Context) ([]*entity.Deck, error)
	// Create creates a new deck. Returns the ID of the created deck.
	Create(ctx context.Context, deck *entity.Deck) (uint, error)
	// Update updates an existing deck.
	Update(ctx context.Context, deck *entity.Deck) error
	// Delete deletes a deck by its ID, cascading to topics and cards.
	Delete(ctx context.Context, id uint) error
}
