package sqlite

import (
	"context"
	"errors"
	"fmt"

	"learnalert/internal/domain/entity"
	"learnalert/internal/domain/repository"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// FindByID retrieves a card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uint) (*entity.Card, error) {
	var card entity.Card
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find card by id %d: %w", id, err)
	}
	return &card, nil
}

// Create creates a new card. Returns the ID of the created card.
func (r *cardRepository) Create(ctx context.Context, card *entity.Card) (uint, error) {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create card in topic %d: %w", card.TopicID, err)
	}
	return card.ID, nil
}

// Update updates an existing card.
func (r *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update card %d: %w", card.ID, err)
	}
	return nil
}

// Delete deletes a card by its ID.
func (r *cardRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Card{}, id).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete card %d: %w", id, err)
	}
	return nil
}
