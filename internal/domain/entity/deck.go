package entity

// Deck is a top-level study set: a named, ordered collection of topics.
type Deck struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;type:text"`
	ColorIndex int     `gorm:"column:color_index"`
	Image      []byte  `gorm:"column:image"` // Optional cover image
	Order      int     `gorm:"column:list_order"`
	Topics     []Topic `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Deck entity.
func (Deck) TableName() string {
	return "decks"
}

// CardCount counts the flashcards across all topics of the deck.
func (d *Deck) CardCount() int {
	count := 0
	for _, topic := range d.Topics {
		count += len(topic.Cards)
	}
	return count
}

// FlattenCards returns the deck's cards as one ordered sequence,
// topic order first, intra-topic order second.
func (d *Deck) FlattenCards() []Card {
	cards := make([]Card, 0, d.CardCount())
	for _, topic := range d.Topics {
		cards = append(cards, topic.Cards...)
	}
	return cards
}
