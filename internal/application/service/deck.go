package service

import (
	"context"

	"learnalert/internal/application/dto"
)

// DeckService defines the interface for deck/topic/card management.
type DeckService interface {
	// CreateDeck creates a new deck at the end of the deck list.
	// It returns the ID of the newly created deck.
	CreateDeck(ctx context.Context, req dto.CreateDeckRequest) (uint, error)
	// ListDecks retrieves all decks in list order.
	ListDecks(ctx context.Context) ([]dto.DeckResponse, error)
	// GetDeck retrieves a deck with its full topic/card tree.
	GetDeck(ctx context.Context, deckID uint) (*dto.DeckDetailResponse, error)
	// UpdateDeck applies customization changes to a deck.
	UpdateDeck(ctx context.Context, deckID uint, req dto.UpdateDeckRequest) error
	// DeleteDeck deletes a deck and compacts the list order of the rest.
	DeleteDeck(ctx context.Context, deckID uint) error

	// CreateTopic adds a topic to a deck. Returns the new topic's ID.
	CreateTopic(ctx context.Context, deckID uint, req dto.CreateTopicRequest) (uint, error)
	// UpdateTopic renames a topic.
	UpdateTopic(ctx context.Context, topicID uint, req dto.UpdateTopicRequest) error
	// DeleteTopic deletes a topic and its cards.
	DeleteTopic(ctx context.Context, topicID uint) error

	// CreateCard adds a card to a topic. Each side must carry text or an
	// image. Returns the new card's ID.
	CreateCard(ctx context.Context, topicID uint, req dto.CreateCardRequest) (uint, error)
	// UpdateCard replaces both sides of a card.
	UpdateCard(ctx context.Context, cardID uint, req dto.UpdateCardRequest) error
	// DeleteCard deletes a card.
	DeleteCard(ctx context.Context, cardID uint) error
	// MoveCard moves a card to another topic.
	MoveCard(ctx context.Context, cardID uint, req dto.MoveCardRequest) error
}
