package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/repository"
)

// LeadService turns validated lead payloads into stored leads.
type LeadService struct {
	repo repository.Repository[models.Lead]
	now  func() time.Time
}

func NewLeadService(repo repository.Repository[models.Lead]) *LeadService {
	return &LeadService{repo: repo, now: time.Now}
}

// SaveLead stores form as a new lead. The caller must have validated it.
func (s *LeadService) SaveLead(ctx context.Context, form models.LeadForm) (*models.Lead, error) {
	lead := &models.Lead{
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: s.now().UTC(),
	}

	stored, err := s.repo.Save(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	logger.GetLogger().Infow("Inserted lead", "id", stored.ID, "email", logger.MaskEmail(stored.Email))
	return stored, nil
}

// GetLead fetches a stored lead by id.
func (s *LeadService) GetLead(ctx context.Context, id uint) (*models.Lead, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead %d: %w", id, err)
	}
	return lead, nil
}
