package sqlite

import (
	"context"
	"errors"
	"fmt"

	"learnalert/internal/domain/entity"
	"learnalert/internal/domain/repository"

	"gorm.io/gorm"
)

type deckRepository struct {
	db *gorm.DB
}

// NewDeckRepository creates a new instance of DeckRepository.
func NewDeckRepository(db *gorm.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

// FindByID retrieves a deck with its topics and cards preloaded in study order.
func (r *deckRepository) FindByID(ctx context.Context, id uint) (*entity.Deck, error) {
	var deck entity.Deck
	err := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Topics.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&deck, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deck with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find deck by id %d: %w", id, err)
	}
	return &deck, nil
}

// FindAll retrieves all decks ordered by their list position.
func (r *deckRepository) FindAll(ctx context.Context) ([]*entity.Deck, error) {
	var decks []*entity.Deck
	if err := r.db.WithContext(ctx).Order("list_order asc").Find(&decks).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find all decks: %w", err)
	}
	return decks, nil
}

// Create creates a new deck. Returns the ID of the created deck.
func (r *deckRepository) Create(ctx context.Context, deck *entity.Deck) (uint, error) {
	if err := r.db.WithContext(ctx).Create(deck).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create deck %q: %w", deck.Name, err)
	}
	return deck.ID, nil
}

// Update updates an existing deck.
func (r *deckRepository) Update(ctx context.Context, deck *entity.Deck) error {
	if err := r.db.WithContext(ctx).Save(deck).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update deck %d: %w", deck.ID, err)
	}
	return nil
}

// Delete deletes a deck by its ID, cascading to topics and cards.
// Children are removed explicitly since SQLite does not enforce the
// foreign key constraints unless the pragma is enabled.
func (r *deckRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id IN (?)",
			tx.Model(&entity.Topic{}).Select("id").Where("deck_id = ?", id),
		).Delete(&entity.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("deck_id = ?", id).Delete(&entity.Topic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Deck{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete deck %d: %w", id, err)
	}
	return nil
}
