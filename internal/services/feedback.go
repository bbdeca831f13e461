package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/models"
)

// FeedbackAnswers are the accepted replies to "Was this a real job posting?".
var FeedbackAnswers = []string{"Yes", "No", "Unsure"}

type FeedbackService interface {
	Submit(ctx context.Context, req models.FeedbackRequest) error
}

type feedbackService struct {
	store RecordStore
	log   *zap.Logger
}

func NewFeedbackService(store RecordStore, log *zap.Logger) FeedbackService {
	return &feedbackService{store: store, log: log}
}

// Submit implements FeedbackService.
func (s *feedbackService) Submit(ctx context.Context, req models.FeedbackRequest) error {
	if isBlank(req.CompanyName, req.ReferenceLink, req.IsRealPosting) {
		return apperrors.ValidationFailure(msgEmptyFields)
	}
	if !isFeedbackAnswer(req.IsRealPosting) {
		return apperrors.ValidationFailure(
			fmt.Sprintf("%q is not a valid answer. Choose Yes, No or Unsure.", req.IsRealPosting))
	}

	row := []string{req.CompanyName, req.ReferenceLink, req.IsRealPosting}
	if err := s.store.Append(ctx, models.DestinationFeedback, row); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	s.log.Info("Feedback stored",
		zap.String("company", req.CompanyName),
		zap.String("answer", req.IsRealPosting))
	return nil
}

func isFeedbackAnswer(answer string) bool {
	for _, a := range FeedbackAnswers {
		if a == answer {
			return true
		}
	}
	return false
}
