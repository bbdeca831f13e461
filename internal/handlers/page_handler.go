package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/apperrors"
	"alfredoptarigan/job-posting-classifier/internal/metrics"
	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/session"
)

const (
	HeaderSessionID   = "X-Session-ID"
	SessionCookieName = "session_id"
)

// PageHandler handles one page submission. It receives the visitor's
// current state and returns the state to persist.
type PageHandler interface {
	Handle(c *fiber.Ctx, state session.State) (session.State, models.PageResponse, error)
}

// Dispatcher routes page submissions through its page table and persists
// the resulting session state.
type Dispatcher struct {
	sessions session.Store
	pages    map[models.Page]PageHandler
	log      *zap.Logger
}

func NewDispatcher(sessions session.Store, pages map[models.Page]PageHandler, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		pages:    pages,
		log:      log,
	}
}

// HandleSubmit handles POST /pages/:page
func (d *Dispatcher) HandleSubmit(c *fiber.Ctx) error {
	page, ok := models.ParsePage(c.Params("page"))
	if !ok {
		return apperrors.NotFound(fmt.Sprintf("unknown page %q", c.Params("page")))
	}
	handler, ok := d.pages[page]
	if !ok {
		return apperrors.NotFound(fmt.Sprintf("page %s is not available", page))
	}

	id, state, err := d.loadSession(c)
	if err != nil {
		return err
	}

	next, resp, err := handler.Handle(c, state)
	if err != nil {
		kind := "INTERNAL"
		if appErr, ok := apperrors.As(err); ok {
			kind = string(appErr.Kind)
		} else {
			d.log.Error("❌ Page handler failed", zap.String("page", string(page)), zap.Error(err))
		}
		metrics.PageErrors.WithLabelValues(string(page), kind).Inc()

		// The submission failed; keep the visitor where they were.
		if saveErr := d.saveSession(c, id, state); saveErr != nil {
			return saveErr
		}
		return err
	}

	resp.Page = page
	if resp.NextPage == "" {
		resp.NextPage = page
	}
	next.Page = resp.NextPage

	if err := d.saveSession(c, id, next); err != nil {
		return err
	}

	return c.JSON(resp)
}

// HandleGetSession handles GET /session
func (d *Dispatcher) HandleGetSession(c *fiber.Ctx) error {
	id, state, err := d.loadSession(c)
	if err != nil {
		return err
	}
	if err := d.saveSession(c, id, state); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"session_id": id,
		"state":      state,
	})
}

// HandleDeleteSession handles DELETE /session
func (d *Dispatcher) HandleDeleteSession(c *fiber.Ctx) error {
	if id := sessionID(c); id != "" {
		if err := d.sessions.Delete(c.UserContext(), id); err != nil {
			return err
		}
	}

	c.ClearCookie(SessionCookieName)
	return c.JSON(fiber.Map{
		"message":   "Logged out",
		"next_page": models.PageLogin,
	})
}

// loadSession resolves the caller's session. A missing, malformed or unknown
// id starts a new session under a fresh id.
func (d *Dispatcher) loadSession(c *fiber.Ctx) (string, session.State, error) {
	id := sessionID(c)
	if _, err := uuid.Parse(id); err != nil {
		return uuid.NewString(), session.NewState(), nil
	}

	state, err := d.sessions.Load(c.UserContext(), id)
	if errors.Is(err, session.ErrNotFound) {
		return uuid.NewString(), session.NewState(), nil
	}
	if err != nil {
		return "", session.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	return id, state, nil
}

func (d *Dispatcher) saveSession(c *fiber.Ctx, id string, state session.State) error {
	if err := d.sessions.Save(c.UserContext(), id, state); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.Set(HeaderSessionID, id)
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// sessionID returns a copy of the caller's id. Fiber's header and cookie
// values alias request buffers that are reused after the handler returns.
func sessionID(c *fiber.Ctx) string {
	if id := c.Get(HeaderSessionID); id != "" {
		return utils.CopyString(id)
	}
	return utils.CopyString(c.Cookies(SessionCookieName))
}
