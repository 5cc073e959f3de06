package operations

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/repository"
)

// FeedbackService turns validated feedback payloads into stored feedback.
type FeedbackService struct {
	repo repository.Repository[models.Feedback]
	now  func() time.Time
}

func NewFeedbackService(repo repository.Repository[models.Feedback]) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now}
}

// SaveFeedback stores form as new feedback. The caller must have validated
// it; a rating that does not parse is still reported rather than stored as 0.
func (s *FeedbackService) SaveFeedback(ctx context.Context, form models.FeedbackForm) (*models.Feedback, error) {
	rating, err := strconv.Atoi(form.Rating)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: rating %q: %w", form.Rating, err)
	}

	feedback := &models.Feedback{
		Name:      form.Name,
		Email:     form.Email,
		Rating:    rating,
		Comments:  form.Comments,
		CreatedAt: s.now().UTC(),
	}

	stored, err := s.repo.Save(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	logger.GetLogger().Infow("Inserted feedback",
		"id", stored.ID,
		"email", logger.MaskEmail(stored.Email),
		"rating", stored.Rating)
	return stored, nil
}

// GetFeedback fetches stored feedback by id.
func (s *FeedbackService) GetFeedback(ctx context.Context, id uint) (*models.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback %d: %w", id, err)
	}
	return feedback, nil
}
