package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/services"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

type LoginHandler struct {
	accounts services.AccountService
}

func NewLoginHandler(accounts services.AccountService) *LoginHandler {
	return &LoginHandler{accounts: accounts}
}

// Handle implements PageHandler.
func (h *LoginHandler) Handle(c *fiber.Ctx, state session.State) (session.State, models.PageResponse, error) {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return state, models.PageResponse{}, invalidPayload()
	}

	if err := h.accounts.Login(c.UserContext(), req); err != nil {
		return state, models.PageResponse{}, err
	}

	state.LoggedIn = true
	return state, models.PageResponse{
		NextPage: models.PageFeedback,
		Message:  "Login successful!",
	}, nil
}
