package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quizbox/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuizCache keeps assembled quiz content trees (quiz, questions, answers) in
// Redis. Content is immutable after authoring, so only per-user annotations
// need the database on every read. A nil cache or nil client is a no-op and
// every lookup goes straight to the loader.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, ttl: ttl}
}

// GetOrLoad returns the cached tree for quizID, or runs load and caches the
// result. Concurrent misses for the same quiz are collapsed to one load.
func (c *QuizCache) GetOrLoad(quizID uint, load func() (*models.Quiz, error)) (*models.Quiz, error) {
	if c == nil || c.client == nil {
		return load()
	}

	ctx := context.Background()
	key := c.key(quizID)
	if quiz, ok := c.get(ctx, key); ok {
		return quiz, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if quiz, ok := c.get(ctx, key); ok {
			return quiz, nil
		}

		quiz, err := load()
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(quiz); err == nil {
			if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
				log.Printf("Failed to cache quiz %d: %v", quizID, err)
			}
		}
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Quiz), nil
}

// Invalidate drops the cached tree, best effort.
func (c *QuizCache) Invalidate(quizID uint) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(context.Background(), c.key(quizID)).Err(); err != nil {
		log.Printf("Failed to invalidate quiz %d cache: %v", quizID, err)
	}
}

func (c *QuizCache) get(ctx context.Context, key string) (*models.Quiz, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var quiz models.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, false
	}
	return &quiz, true
}

func (c *QuizCache) key(quizID uint) string {
	return fmt.Sprintf("quiz:%d:content", quizID)
}
