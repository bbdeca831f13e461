package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-posting-classifier/internal/models"
)

// RegisterRoutes mounts the API endpoints on router.
func RegisterRoutes(router fiber.Router, dispatcher *Dispatcher, classifierHandler *ClassifierHandler) {
	router.Get("/questionnaire", classifierHandler.HandleQuestionnaire)
	router.Post("/classify", classifierHandler.HandleClassify)

	router.Post("/pages/:page", dispatcher.HandleSubmit)
	router.Get("/session", dispatcher.HandleGetSession)
	router.Delete("/session", dispatcher.HandleDeleteSession)
}

// NewPageTable maps every page to the handler that serves it.
func NewPageTable(
	login *LoginHandler,
	classifierHandler *ClassifierHandler,
	feedback *FeedbackHandler,
	register *RegisterHandler,
) map[models.Page]PageHandler {
	return map[models.Page]PageHandler{
		models.PageLogin:      login,
		models.PageClassifier: classifierHandler,
		models.PageFeedback:   feedback,
		models.PageRegister:   register,
	}
}
