package handlers

import (
	"context"

	"github.com/CorrelAid/form_intake/models"
	"github.com/stretchr/testify/mock"
)

// MockLeadSaver implements LeadSaver.
type MockLeadSaver struct {
	mock.Mock
}

func (m *MockLeadSaver) SaveLead(ctx context.Context, form models.LeadForm) (*models.Lead, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

// MockFeedbackSaver implements FeedbackSaver.
type MockFeedbackSaver struct {
	mock.Mock
}

func (m *MockFeedbackSaver) SaveFeedback(ctx context.Context, form models.FeedbackForm) (*models.Feedback, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

var (
	_ LeadSaver     = (*MockLeadSaver)(nil)
	_ FeedbackSaver = (*MockFeedbackSaver)(nil)
)
