package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/services"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

type FeedbackHandler struct {
	feedback services.FeedbackService
}

func NewFeedbackHandler(feedback services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Handle implements PageHandler. Only logged-in sessions may submit.
func (h *FeedbackHandler) Handle(c *fiber.Ctx, state session.State) (session.State, models.PageResponse, error) {
	if !state.LoggedIn {
		return state, models.PageResponse{}, apperrors.Unauthorized("Please log in to submit feedback.")
	}

	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return state, models.PageResponse{}, invalidPayload()
	}

	if err := h.feedback.Submit(c.UserContext(), req); err != nil {
		return state, models.PageResponse{}, err
	}

	return state, models.PageResponse{
		NextPage: models.PageFeedback,
		Message:  "Thanks for your feedback! We continue to improve our model.",
	}, nil
}
