package service

import (
	"context"
	"errors"
	"fmt"

	"learnalert/internal/application/dto"
	"learnalert/internal/domain/entity"
	"learnalert/internal/domain/repository"
	appErrors "learnalert/internal/pkg/errors"
	"learnalert/internal/pkg/logger"

	"gorm.io/gorm"
)

type deckService struct {
	deckRepo  repository.DeckRepository
	topicRepo repository.TopicRepository
	cardRepo  repository.CardRepository
	log       logger.Logger
}

// NewDeckService creates a new instance of DeckService implementation.
func NewDeckService(
	deckRepo repository.DeckRepository,
	topicRepo repository.TopicRepository,
	cardRepo repository.CardRepository,
	log logger.Logger,
) DeckService {
	return &deckService{
		deckRepo:  deckRepo,
		topicRepo: topicRepo,
		cardRepo:  cardRepo,
		log:       log,
	}
}

// CreateDeck creates a new deck at the end of the deck list.
func (s *deckService) CreateDeck(ctx context.Context, req dto.CreateDeckRequest) (uint, error) {
	existing, err := s.deckRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list decks while creating a new deck", err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	deck := &entity.Deck{
		Name:       req.Name,
		ColorIndex: req.ColorIndex,
		Image:      req.Image,
		Order:      len(existing),
	}
	deckID, err := s.deckRepo.Create(ctx, deck)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create deck %q", req.Name), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created deck %d (%q)", deckID, req.Name))
	return deckID, nil
}

// ListDecks retrieves all decks in list order.
func (s *deckService) ListDecks(ctx context.Context) ([]dto.DeckResponse, error) {
	decks, err := s.deckRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list decks", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToDeckResponseList(decks), nil
}

// GetDeck retrieves a deck with its full topic/card tree.
func (s *deckService) GetDeck(ctx context.Context, deckID uint) (*dto.DeckDetailResponse, error) {
	deck, err := s.deckRepo.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDeckNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get deck %d", deckID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToDeckDetailResponse(deck)
	return &resp, nil
}

// UpdateDeck applies customization changes to a deck.
func (s *deckService) UpdateDeck(ctx context.Context, deckID uint, req dto.UpdateDeckRequest) error {
	deck, err := s.deckRepo.FindByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrDeckNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find deck %d for update", deckID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if req.Name != nil {
		deck.Name = *req.Name
	}
	if req.ColorIndex != nil {
		deck.ColorIndex = *req.ColorIndex
	}
	if req.Image != nil {
		deck.Image = req.Image
	}
	if req.Order != nil {
		deck.Order = *req.Order
	}

	if err := s.deckRepo.Update(ctx, deck); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update deck %d", deckID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// DeleteDeck deletes a deck, then compacts the remaining decks' list order
// so positions stay contiguous after the removal.
func (s *deckService) DeleteDeck(ctx context.Context, deckID uint) error {
	if err := s.deckRepo.Delete(ctx, deckID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete deck %d", deckID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	remaining, err := s.deckRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list decks while compacting order after delete", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	for i, deck := range remaining {
		if deck.Order == i {
			continue
		}
		deck.Order = i
		if err := s.deckRepo.Update(ctx, deck); err != nil {
			s.log.Error(fmt.Sprintf("Failed to compact order for deck %d", deck.ID), err)
			return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}

	s.log.Info(fmt.Sprintf("Deleted deck %d", deckID))
	return nil
}

// CreateTopic adds a topic to a deck.
func (s *deckService) CreateTopic(ctx context.Context, deckID uint, req dto.CreateTopicRequest) (uint, error) {
	if _, err := s.deckRepo.FindByID(ctx, deckID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, appErrors.ErrDeckNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find deck %d while adding topic", deckID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	topic := &entity.Topic{
		DeckID: deckID,
		Name:   req.Name,
	}
	topicID, err := s.topicRepo.Create(ctx, topic)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create topic %q in deck %d", req.Name, deckID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created topic %d (%q) in deck %d", topicID, req.Name, deckID))
	return topicID, nil
}

// UpdateTopic renames a topic.
func (s *deckService) UpdateTopic(ctx context.Context, topicID uint, req dto.UpdateTopicRequest) error {
	topic, err := s.topicRepo.FindByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrTopicNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find topic %d for update", topicID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	topic.Name = req.Name
	if err := s.topicRepo.Update(ctx, topic); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update topic %d", topicID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// DeleteTopic deletes a topic and its cards.
func (s *deckService) DeleteTopic(ctx context.Context, topicID uint) error {
	if err := s.topicRepo.Delete(ctx, topicID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete topic %d", topicID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted topic %d", topicID))
	return nil
}

// CreateCard adds a card to a topic after validating that each side
// carries text or an image.
func (s *deckService) CreateCard(ctx context.Context, topicID uint, req dto.CreateCardRequest) (uint, error) {
	card := &entity.Card{
		TopicID: topicID,
		Front:   entity.CardSide{Text: req.Front.Text, Image: req.Front.Image},
		Back:    entity.CardSide{Text: req.Back.Text, Image: req.Back.Image},
	}
	if card.Front.IsEmpty() || card.Back.IsEmpty() {
		return 0, appErrors.ErrEmptyCardSide
	}

	if _, err := s.topicRepo.FindByID(ctx, topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, appErrors.ErrTopicNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find topic %d while adding card", topicID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	cardID, err := s.cardRepo.Create(ctx, card)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create card in topic %d", topicID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created card %d in topic %d", cardID, topicID))
	return cardID, nil
}

// UpdateCard replaces both sides of a card, holding it to the same
// creation-time validation.
func (s *deckService) UpdateCard(ctx context.Context, cardID uint, req dto.UpdateCardRequest) error {
	front := entity.CardSide{Text: req.Front.Text, Image: req.Front.Image}
	back := entity.CardSide{Text: req.Back.Text, Image: req.Back.Image}
	if front.IsEmpty() || back.IsEmpty() {
		return appErrors.ErrEmptyCardSide
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrCardNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find card %d for update", cardID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	card.Front = front
	card.Back = back
	if err := s.cardRepo.Update(ctx, card); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update card %d", cardID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// DeleteCard deletes a card.
func (s *deckService) DeleteCard(ctx context.Context, cardID uint) error {
	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete card %d", cardID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// MoveCard moves a card to another topic. Card membership stays exclusive:
// the card leaves its previous topic as part of the same update.
func (s *deckService) MoveCard(ctx context.Context, cardID uint, req dto.MoveCardRequest) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrCardNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find card %d for move", cardID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if _, err := s.topicRepo.FindByID(ctx, req.TopicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrTopicNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find destination topic %d for card move", req.TopicID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	card.TopicID = req.TopicID
	if err := s.cardRepo.Update(ctx, card); err != nil {
		s.log.Error(fmt.Sprintf("Failed to move card %d to topic %d", cardID, req.TopicID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Moved card %d to topic %d", cardID, req.TopicID))
	return nil
}
