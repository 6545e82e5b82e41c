package service

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Sari-Dot/Myquiz/internal/models"
	"github.com/Sari-Dot/Myquiz/internal/repository"
)

var validate = validator.New()

// QuestionService handles question CRUD over the level-partitioned KV layout.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	now          func() time.Time
}

// NewQuestionService creates a new question service.
func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, now: time.Now}
}

// List returns all questions, optionally filtered by level, newest first.
func (s *QuestionService) List(ctx context.Context, level string) ([]models.Question, error) {
	if level != "" && !models.IsValidLevel(level) {
		return nil, validationErr("Invalid level")
	}
	questions, err := s.questionRepo.List(ctx, level)
	if err != nil {
		return nil, err
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].CreatedAt > questions[j].CreatedAt
	})
	return questions, nil
}

// Get returns the question with the given id, or ErrNotFound.
func (s *QuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	return q, nil
}

// Create validates the input and stores a fresh question. Nothing is written
// when validation fails.
func (s *QuestionService) Create(ctx context.Context, input models.QuestionInput) (*models.Question, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	now := s.now().UnixMilli()
	q := &models.Question{
		ID:        NewQuestionID(s.now()),
		Level:     input.Level,
		Question:  input.Question,
		Answers:   input.Answers,
		Correct:   *input.Correct,
		Hint:      input.Hint,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.questionRepo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Update re-validates and rewrites the question. A level change moves the
// record to its new key; created_at is preserved from the existing record.
func (s *QuestionService) Update(ctx context.Context, id string, input models.QuestionInput) (*models.Question, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	existing, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	q := &models.Question{
		ID:        id,
		Level:     input.Level,
		Question:  input.Question,
		Answers:   input.Answers,
		Correct:   *input.Correct,
		Hint:      input.Hint,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now().UnixMilli(),
	}
	if err := s.questionRepo.MoveOrUpdate(ctx, q, existing.Level); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes the question with the given id, or returns ErrNotFound.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	deleted, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validateInput(input models.QuestionInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return validationErr(validationMessage(fieldErrs[0]))
	}
	return validationErr("Invalid question data")
}

// validationMessage keeps the error strings the admin UI already shows.
func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Level":
		return "Invalid level"
	case "Correct":
		if fe.Tag() == "required" {
			return "Invalid question data"
		}
		return "Correct answer must be 0-3"
	default:
		return "Invalid question data"
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewQuestionID builds a base36 timestamp with a random base36 suffix.
// Collision probability across ids minted in the same millisecond is treated
// as negligible.
func NewQuestionID(now time.Time) string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return strconv.FormatInt(now.UnixMilli(), 36) + string(suffix)
}
