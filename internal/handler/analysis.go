package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightanalyst/internal/config"
	"github.com/dharmasatrya/flightanalyst/internal/models"
	"github.com/dharmasatrya/flightanalyst/internal/pipeline"
	"github.com/dharmasatrya/flightanalyst/internal/session"
	"github.com/dharmasatrya/flightanalyst/internal/timezone"
	"github.com/dharmasatrya/flightanalyst/pkg/currency"
)

const sessionCookie = "flight_session"

type Runner interface {
	Run(ctx context.Context, q models.TripQuery, creds session.Credentials, now time.Time) (*pipeline.Result, error)
}

type Options struct {
	Settings     *config.Settings
	Defaults     session.Credentials
	Store        session.Store
	Pipeline     Runner
	Clock        *timezone.Clock
	Logger       *zap.Logger
	SessionTTL   time.Duration
	SecureCookie bool
}

type AnalysisHandler struct {
	settings     *config.Settings
	currencies   currency.Set
	defaults     session.Credentials
	store        session.Store
	pipeline     Runner
	clock        *timezone.Clock
	logger       *zap.Logger
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAnalysisHandler(opts Options) *AnalysisHandler {
	clock := opts.Clock
	if clock == nil {
		clock = timezone.NewClock(time.Local)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{
		settings:     opts.Settings,
		currencies:   opts.Settings.Currencies(),
		defaults:     opts.Defaults,
		store:        opts.Store,
		pipeline:     opts.Pipeline,
		clock:        clock,
		logger:       logger,
		sessionTTL:   opts.SessionTTL,
		secureCookie: opts.SecureCookie,
	}
}

type pageData struct {
	BackgroundImageURL string
	HideFooter         bool
	Currencies         []string
	Today              string
	Form               models.AnalysisRequest
	NeedsCredentials   bool
	Result             string
	Error              string
}

// Page renders the empty search form.
func (h *AnalysisHandler) Page(c echo.Context) error {
	creds := h.credentials(c)
	defaults := models.AnalysisRequest{
		DepartureID:  "DEL",
		ArrivalID:    "BOM",
		TripType:     string(models.OneWay),
		OutboundDate: timezone.FormatDate(h.clock.Today()),
	}
	return c.Render(http.StatusOK, "index.html", h.newPage(defaults, creds))
}

// Search handles a form submission and renders the analysis or the error.
func (h *AnalysisHandler) Search(c echo.Context) error {
	creds := h.credentials(c)

	var req models.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		page := h.newPage(req, creds)
		page.Error = "Failed to read the search form."
		return c.Render(http.StatusBadRequest, "index.html", page)
	}

	page := h.newPage(req, creds)

	q, err := h.tripQuery(req)
	if err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusBadRequest, "index.html", page)
	}

	result, err := h.pipeline.Run(c.Request().Context(), q, creds, h.clock.Current())
	if err != nil {
		status, message := h.describeError(err)
		page.Error = message
		return c.Render(status, "index.html", page)
	}

	page.Result = result.Text
	return c.Render(http.StatusOK, "index.html", page)
}

// Analyze is the JSON variant of Search.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	creds := h.credentials(c)

	var req models.AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	q, err := h.tripQuery(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result, err := h.pipeline.Run(c.Request().Context(), q, creds, h.clock.Current())
	if err != nil {
		status, message := h.describeError(err)
		code := "internal_error"
		if kind, ok := pipeline.KindOf(err); ok {
			code = kind.String()
		}
		return c.JSON(status, models.ErrorResponse{
			Error:   code,
			Message: message,
			Code:    status,
		})
	}

	return c.JSON(http.StatusOK, models.AnalysisResponse{
		SearchCriteria: buildCriteria(q),
		Metadata: models.AnalysisMetadata{
			Engine:           result.Engine,
			Model:            result.Model,
			SearchTimeMs:     result.SearchDuration.Milliseconds(),
			CompletionTimeMs: result.CompletionDuration.Milliseconds(),
		},
		Result: result.Text,
	})
}

func (h *AnalysisHandler) tripQuery(req models.AnalysisRequest) (models.TripQuery, error) {
	q, err := req.ToTripQuery(h.clock.Location)
	if err != nil {
		return models.TripQuery{}, err
	}
	if err := q.Validate(h.clock.Today(), h.currencies); err != nil {
		return models.TripQuery{}, err
	}
	return q, nil
}

func (h *AnalysisHandler) describeError(err error) (int, string) {
	var perr *pipeline.Error
	if !errors.As(err, &perr) {
		h.logger.Error("unexpected pipeline error", zap.Error(err))
		return http.StatusInternalServerError, "An unexpected error occurred."
	}

	switch perr.Kind {
	case pipeline.KindCredentialsMissing:
		return http.StatusUnauthorized, perr.UserMessage()
	case pipeline.KindSearchFailed, pipeline.KindDecodeFailed, pipeline.KindCompletionFailed:
		return http.StatusBadGateway, perr.UserMessage()
	default:
		return http.StatusInternalServerError, perr.UserMessage()
	}
}

func (h *AnalysisHandler) newPage(req models.AnalysisRequest, creds session.Credentials) pageData {
	if req.TripType == "" {
		req.TripType = string(models.OneWay)
	} else if t, err := models.ParseTripType(req.TripType); err == nil {
		req.TripType = string(t)
	}
	if !h.currencies.Contains(req.Currency) {
		req.Currency = h.currencies.Default()
	} else {
		req.Currency = currency.Normalize(req.Currency)
	}

	return pageData{
		BackgroundImageURL: h.settings.Presentation.BackgroundImageURL,
		HideFooter:         h.settings.Presentation.HideFooter,
		Currencies:         h.currencies.Codes(),
		Today:              timezone.FormatDate(h.clock.Today()),
		Form:               req,
		NeedsCredentials:   !creds.Complete(),
	}
}

func buildCriteria(q models.TripQuery) models.AnalysisCriteria {
	criteria := models.AnalysisCriteria{
		DepartureID:  q.DepartureID,
		ArrivalID:    q.ArrivalID,
		TripType:     string(q.TripType),
		OutboundDate: timezone.FormatDate(q.OutboundDate),
		Currency:     q.Currency,
	}
	if q.ReturnDate != nil {
		r := timezone.FormatDate(*q.ReturnDate)
		criteria.ReturnDate = &r
	}
	return criteria
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
