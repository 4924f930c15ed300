package repository

import (
	"context"

	"learnalert/internal/domain/entity"
)

// TopicRepository defines the interface for topic data operations.
type TopicRepository interface {
	// FindByID retrieves a topic with its cards preloaded, ordered by creation time.
	FindByID(ctx context.Context, id uint) (*entity.Topic, error)
	// Create creates a new topic. Returns the ID of the created topic.
	Create(ctx context.Context, topic *entity.Topic) (uint, error)
	// Update updates an existing topic.
	Update(ctx context.Context, topic *entity.Topic) error
	// Delete deletes a topic by its ID, cascading to its cards.
	Delete(ctx context.Context, id uint) error
}
