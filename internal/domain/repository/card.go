package repository

import (
	"context"

	"learnalert/internal/domain/entity"
)

// CardRepository defines the interface for card data operations.
type CardRepository interface {
	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Card, error)
	// Create creates a new card. Returns the ID of the created card.
	Create(ctx context.Context, card *entity.Card) (uint, error)
	// Update updates an existing card.
	Update(ctx context.Context, card *entity.Card) error
	// Delete deletes a card by its ID.
	Delete(ctx context.Context, id uint) error
}
