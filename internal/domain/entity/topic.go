package entity

import "time"

// Topic is a named subdivision of a deck containing cards.
type Topic struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	DeckID    uint      `gorm:"column:deck_id;index"`
	Name      string    `gorm:"column:name;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Cards     []Card    `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Topic entity.
func (Topic) TableName() string {
	return "topics"
}
