package dto

import (
	"time"

	"learnalert/internal/domain/entity"
)

// CardSidePayload carries one face of a card over the API. Image bytes are
// base64 in transit.
type CardSidePayload struct {
	Text  string `json:"text"`
	Image []byte `json:"image,omitempty"`
}

// CreateDeckRequest is the DTO for creating a new deck.
type CreateDeckRequest struct {
	Name       string `json:"name"`
	ColorIndex int    `json:"color_index"`
	Image      []byte `json:"image,omitempty"`
}

// UpdateDeckRequest is the DTO for customizing an existing deck.
// Nil fields are left unchanged.
type UpdateDeckRequest struct {
	Name       *string `json:"name,omitempty"`
	ColorIndex *int    `json:"color_index,omitempty"`
	Image      []byte  `json:"image,omitempty"`
	Order      *int    `json:"order,omitempty"`
}

// CreateTopicRequest is the DTO for adding a topic to a deck.
type CreateTopicRequest struct {
	Name string `json:"name"`
}

// UpdateTopicRequest is the DTO for renaming a topic.
type UpdateTopicRequest struct {
	Name string `json:"name"`
}

// CreateCardRequest is the DTO for adding a card to a topic.
type CreateCardRequest struct {
	Front CardSidePayload `json:"front"`
	Back  CardSidePayload `json:"back"`
}

// UpdateCardRequest is the DTO for editing a card's sides.
type UpdateCardRequest struct {
	Front CardSidePayload `json:"front"`
	Back  CardSidePayload `json:"back"`
}

// MoveCardRequest is the DTO for moving a card to another topic.
type MoveCardRequest struct {
	TopicID uint `json:"topic_id"`
}

// DeckResponse is the DTO for listing decks.
type DeckResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	ColorIndex int    `json:"color_index"`
	Order      int    `json:"order"`
}

// CardResponse is the DTO for a single card.
type CardResponse struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Front     CardSidePayload `json:"front"`
	Back      CardSidePayload `json:"back"`
}

// TopicResponse is the DTO for a topic with its cards.
type TopicResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Cards     []CardResponse `json:"cards"`
}

// DeckDetailResponse is the DTO for a deck with its full topic/card tree.
type DeckDetailResponse struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	ColorIndex int             `json:"color_index"`
	Order      int             `json:"order"`
	Topics     []TopicResponse `json:"topics"`
}

// ToDeckResponse converts an entity.Deck to a DeckResponse DTO.
func ToDeckResponse(d *entity.Deck) DeckResponse {
	return DeckResponse{
		ID:         d.ID,
		Name:       d.Name,
		ColorIndex: d.ColorIndex,
		Order:      d.Order,
	}
}

// ToDeckResponseList converts a slice of entity.Deck to DeckResponse DTOs.
func ToDeckResponseList(decks []*entity.Deck) []DeckResponse {
	list := make([]DeckResponse, len(decks))
	for i, d := range decks {
		list[i] = ToDeckResponse(d)
	}
	return list
}

// ToCardResponse converts an entity.Card to a CardResponse DTO.
func ToCardResponse(c *entity.Card) CardResponse {
	return CardResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Front:     CardSidePayload{Text: c.Front.Text, Image: c.Front.Image},
		Back:      CardSidePayload{Text: c.Back.Text, Image: c.Back.Image},
	}
}

// ToTopicResponse converts an entity.Topic to a TopicResponse DTO.
func ToTopicResponse(t *entity.Topic) TopicResponse {
	cards := make([]CardResponse, len(t.Cards))
	for i := range t.Cards {
		cards[i] = ToCardResponse(&t.Cards[i])
	}
	return TopicResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		Cards:     cards,
	}
}

// ToDeckDetailResponse converts an entity.Deck with preloaded topics and
// cards to a DeckDetailResponse DTO.
func ToDeckDetailResponse(d *entity.Deck) DeckDetailResponse {
	topics := make([]TopicResponse, len(d.Topics))
	for i := range d.Topics {
		topics[i] = ToTopicResponse(&d.Topics[i])
	}
	return DeckDetailResponse{
		ID:         d.ID,
		Name:       d.Name,
		ColorIndex: d.ColorIndex,
		Order:      d.Order,
		Topics:     topics,
	}
}
