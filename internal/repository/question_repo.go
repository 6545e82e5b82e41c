package repository

import (
	"context"
	"encoding/json"

	"github.com/Sari-Dot/Myquiz/internal/kv"
	"github.com/Sari-Dot/Myquiz/internal/models"
)

const questionKeyPrefix = "question:"

// QuestionRepository persists question records at question:<level>:<id>.
type QuestionRepository struct {
	store kv.Store
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(store kv.Store) *QuestionRepository {
	return &QuestionRepository{store: store}
}

func questionKey(level, id string) string {
	return questionKeyPrefix + level + ":" + id
}

// List returns every stored question, restricted to one level when level is
// non-empty. Order is whatever the store yields; callers sort.
func (r *QuestionRepository) List(ctx context.Context, level string) ([]models.Question, error) {
	prefix := questionKeyPrefix
	if level != "" {
		prefix = questionKeyPrefix + level + ":"
	}
	values, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	questions := make([]models.Question, 0, len(values))
	for _, raw := range values {
		var q models.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			continue // skip a corrupt record rather than failing the listing
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// GetByID probes the three level keys in fixed order and returns the first
// hit, or nil when no level holds the id.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	for _, level := range models.Levels {
		raw, found, err := r.store.Get(ctx, questionKey(level, id))
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		var q models.Question
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return nil, err
		}
		return &q, nil
	}
	return nil, nil
}

// Save writes the record under its level key.
func (r *QuestionRepository) Save(ctx context.Context, q *models.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, questionKey(q.Level, q.ID), string(data))
}

// MoveOrUpdate rewrites a question whose previous record lived under oldLevel.
// The new key is written before the old one is deleted, so a failure between
// the two steps leaves a duplicate behind instead of losing the record.
func (r *QuestionRepository) MoveOrUpdate(ctx context.Context, q *models.Question, oldLevel string) error {
	if err := r.Save(ctx, q); err != nil {
		return err
	}
	if oldLevel != q.Level {
		return r.store.Del(ctx, questionKey(oldLevel, q.ID))
	}
	return nil
}

// Delete removes the record for id, probing levels in fixed order and
// stopping at the first hit. Returns false when no level holds the id.
func (r *QuestionRepository) Delete(ctx context.Context, id string) (bool, error) {
	for _, level := range models.Levels {
		_, found, err := r.store.Get(ctx, questionKey(level, id))
		if err != nil {
			return false, err
		}
		if !found {
			continue
		}
		if err := r.store.Del(ctx, questionKey(level, id)); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
