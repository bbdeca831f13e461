package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/classifier"
	"alfredoptarigan/job-posting-classifier/internal/metrics"
	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/services"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

// ClassifierHandler serves the classifier page and the stateless
// classification endpoints.
type ClassifierHandler struct {
	fetcher services.ResourceFetcher
	log     *zap.Logger
}

// NewClassifierHandler builds the handler. A nil fetcher leaves posting
// links unresolved.
func NewClassifierHandler(fetcher services.ResourceFetcher, log *zap.Logger) *ClassifierHandler {
	return &ClassifierHandler{fetcher: fetcher, log: log}
}

// Handle implements PageHandler.
func (h *ClassifierHandler) Handle(c *fiber.Ctx, state session.State) (session.State, models.PageResponse, error) {
	var req models.ClassifierRequest
	if err := c.BodyParser(&req); err != nil {
		return state, models.PageResponse{}, invalidPayload()
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		return state, models.PageResponse{}, apperrors.ValidationFailure("Please enter a job posting source link.")
	}

	count, err := classifier.NegativeCount(req.Input)
	if err != nil {
		return state, models.PageResponse{}, err
	}

	resp := models.PageResponse{NextPage: models.PageClassifier}

	if services.IsURL(source) && h.fetcher != nil {
		res, err := h.fetcher.Fetch(c.UserContext(), source)
		if err != nil {
			return state, models.PageResponse{}, err
		}
		if res.IsImage() {
			state.Image = &models.PostingImage{
				SourceURL:   res.URL,
				ContentType: res.ContentType,
				Size:        len(res.Content),
			}
			resp.Image = state.Image
		}
	}

	result := classifier.ResultFor(count)
	metrics.Classifications.WithLabelValues(string(result)).Inc()
	h.log.Debug("Posting classified",
		zap.String("result", string(result)),
		zap.Int("negative_count", count))

	resp.Result = result
	resp.NegativeCount = &count
	resp.Message = fmt.Sprintf("The given job posting is %s", result)
	return state, resp, nil
}

// HandleClassify handles POST /classify
func (h *ClassifierHandler) HandleClassify(c *fiber.Ctx) error {
	var in classifier.Input
	if err := c.BodyParser(&in); err != nil {
		return invalidPayload()
	}

	count, err := classifier.NegativeCount(in)
	if err != nil {
		return err
	}

	result := classifier.ResultFor(count)
	metrics.Classifications.WithLabelValues(string(result)).Inc()

	return c.JSON(models.ClassifyResponse{
		Result:        result,
		NegativeCount: count,
	})
}

// HandleQuestionnaire handles GET /questionnaire
func (h *ClassifierHandler) HandleQuestionnaire(c *fiber.Ctx) error {
	return c.JSON(models.QuestionnaireResponse{
		Questions: classifier.Questionnaire,
		Threshold: classifier.FakeThreshold,
	})
}
