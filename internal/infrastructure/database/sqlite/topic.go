package sqlite

import (
	"context"
	"errors"
	"fmt"

	"learnalert/internal/domain/entity"
	"learnalert/internal/domain/repository"

	"gorm.io/gorm"
)

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new instance of TopicRepository.
func NewTopicRepository(db *gorm.DB) repository.TopicRepository {
	return &topicRepository{db: db}
}

// FindByID retrieves a topic with its cards preloaded, ordered by creation time.
func (r *topicRepository) FindByID(ctx context.Context, id uint) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("topic with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find topic by id %d: %w", id, err)
	}
	return &topic, nil
}

// Create creates a new topic. Returns the ID of the created topic.
func (r *topicRepository) Create(ctx context.Context, topic *entity.Topic) (uint, error) {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return 0, fmt.Errorf("🔴 ERROR: failed to create topic %q in deck %d: %w", topic.Name, topic.DeckID, err)
	}
	return topic.ID, nil
}

// Update updates an existing topic.
func (r *topicRepository) Update(ctx context.Context, topic *entity.Topic) error {
	if err := r.db.WithContext(ctx).Save(topic).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update topic %d: %w", topic.ID, err)
	}
	return nil
}

// Delete deletes a topic by its ID, cascading to its cards.
func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&entity.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Topic{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete topic %d: %w", id, err)
	}
	return nil
}
