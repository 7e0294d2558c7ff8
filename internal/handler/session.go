package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightanalyst/internal/models"
	"github.com/dharmasatrya/flightanalyst/internal/session"
)

const sessionContextKey = "session_id"

// sessionID returns the caller's session id, issuing a new cookie when the
// request has none or carries one we did not issue.
func (h *AnalysisHandler) sessionID(c echo.Context) string {
	if id, ok := c.Get(sessionContextKey).(string); ok {
		return id
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil && session.ValidID(cookie.Value) {
		c.Set(sessionContextKey, cookie.Value)
		return cookie.Value
	}

	id := session.NewID()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionContextKey, id)
	return id
}

// credentials resolves the keys for this request: the session's own keys
// first, process defaults for anything the session has not set.
func (h *AnalysisHandler) credentials(c echo.Context) session.Credentials {
	id := h.sessionID(c)

	stored, err := h.store.Get(c.Request().Context(), id)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		h.logger.Warn("failed to load session credentials", zap.Error(err))
	}
	return stored.Merge(h.defaults)
}

func (h *AnalysisHandler) saveCredentials(c echo.Context, req models.CredentialsRequest) error {
	id := h.sessionID(c)
	ctx := c.Request().Context()

	existing, err := h.store.Get(ctx, id)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}

	updated := session.Credentials{
		SearchAPIKey:     strings.TrimSpace(req.SearchAPIKey),
		CompletionAPIKey: strings.TrimSpace(req.CompletionAPIKey),
	}.Merge(existing)

	return h.store.Set(ctx, id, updated)
}

// SaveCredentials stores keys submitted from the HTML form.
func (h *AnalysisHandler) SaveCredentials(c echo.Context) error {
	var req models.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.saveCredentials(c, req); err != nil {
		h.logger.Error("failed to store session credentials", zap.Error(err))
		page := h.newPage(models.AnalysisRequest{}, h.defaults)
		page.NeedsCredentials = true
		page.Error = "Could not save the API keys. Please try again."
		return c.Render(http.StatusInternalServerError, "index.html", page)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AnalysisHandler) PutCredentials(c echo.Context) error {
	var req models.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if strings.TrimSpace(req.SearchAPIKey) == "" && strings.TrimSpace(req.CompletionAPIKey) == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "at least one of serpapi_api_key or openai_api_key is required",
			Code:    http.StatusBadRequest,
		})
	}

	if err := h.saveCredentials(c, req); err != nil {
		h.logger.Error("failed to store session credentials", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to store credentials",
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, credentialsStatus(h.credentials(c)))
}

func (h *AnalysisHandler) GetCredentials(c echo.Context) error {
	return c.JSON(http.StatusOK, credentialsStatus(h.credentials(c)))
}

func (h *AnalysisHandler) DeleteCredentials(c echo.Context) error {
	id := h.sessionID(c)
	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("failed to delete session credentials", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to delete credentials",
			Code:    http.StatusInternalServerError,
		})
	}
	return c.NoContent(http.StatusNoContent)
}

func credentialsStatus(creds session.Credentials) models.CredentialsStatus {
	return models.CredentialsStatus{
		SearchAPIKeySet:     strings.TrimSpace(creds.SearchAPIKey) != "",
		CompletionAPIKeySet: strings.TrimSpace(creds.CompletionAPIKey) != "",
	}
}
