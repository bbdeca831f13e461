package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/services"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

type RegisterHandler struct {
	accounts services.AccountService
}

func NewRegisterHandler(accounts services.AccountService) *RegisterHandler {
	return &RegisterHandler{accounts: accounts}
}

// Handle implements PageHandler. A session registers at most once.
func (h *RegisterHandler) Handle(c *fiber.Ctx, state session.State) (session.State, models.PageResponse, error) {
	if state.Registered {
		return state, models.PageResponse{
			NextPage: models.PageLogin,
			Message:  "Already registered. You can now login.",
		}, nil
	}

	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return state, models.PageResponse{}, invalidPayload()
	}

	if err := h.accounts.Register(c.UserContext(), req); err != nil {
		return state, models.PageResponse{}, err
	}

	state.Registered = true
	return state, models.PageResponse{
		NextPage: models.PageClassifier,
		Message:  "Registration successful!",
	}, nil
}
