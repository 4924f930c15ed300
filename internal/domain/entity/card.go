package entity

import (
	"strings"
	"time"
)

// CardSide is one face of a flashcard: text content and an optional image.
type CardSide struct {
	Text  string `gorm:"type:text"`
	Image []byte
}

// IsEmpty reports whether the side carries neither text nor an image.
// Whitespace-only text counts as empty.
func (s CardSide) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == "" && len(s.Image) == 0
}

// Card is a front/back pair of content units belonging to exactly one topic.
type Card struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TopicID   uint      `gorm:"column:topic_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Front     CardSide  `gorm:"embedded;embeddedPrefix:front_"`
	Back      CardSide  `gorm:"embedded;embeddedPrefix:back_"`
}

// TableName specifies the table name for the Card entity.
func (Card) TableName() string {
	return "cards"
}
