package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/dharmasatrya/flightanalyst/internal/completion"
	"github.com/dharmasatrya/flightanalyst/internal/metrics"
	"github.com/dharmasatrya/flightanalyst/internal/models"
	"github.com/dharmasatrya/flightanalyst/internal/prompt"
	"github.com/dharmasatrya/flightanalyst/internal/providers"
	"github.com/dharmasatrya/flightanalyst/internal/searchparams"
	"github.com/dharmasatrya/flightanalyst/internal/session"
)

const jsonIndent = "    "

type Config struct {
	Engine      string
	Model       string
	Temperature float64
}

// Clients builds the external clients for one run from that run's
// credentials.
type Clients struct {
	NewSearcher  func(apiKey string) providers.FlightSearcher
	NewCompleter func(apiKey string) completion.Completer
}

type Pipeline struct {
	config  Config
	clients Clients
	metrics *metrics.Metrics
	logger  *zap.Logger
}

type Result struct {
	Text               string
	Engine             string
	Model              string
	SearchDuration     time.Duration
	CompletionDuration time.Duration
}

func New(config Config, clients Clients, m *metrics.Metrics, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		config:  config,
		clients: clients,
		metrics: m,
		logger:  logger,
	}
}

// Run performs one search followed by one completion. Any failure ends the
// run and is returned as *Error; a failed search never reaches completion.
func (p *Pipeline) Run(ctx context.Context, q models.TripQuery, creds session.Credentials, now time.Time) (*Result, error) {
	log := p.logger.With(
		zap.String("departure_id", q.DepartureID),
		zap.String("arrival_id", q.ArrivalID),
		zap.String("trip_type", string(q.TripType)),
	)

	if !creds.Complete() {
		log.Warn("api keys are not set")
		return nil, p.fail(KindCredentialsMissing, ErrCredentialsMissing)
	}

	params := searchparams.Build(searchparams.FromQuery(q, now, creds.SearchAPIKey, p.config.Engine))
	searcher := p.clients.NewSearcher(creds.SearchAPIKey)

	log.Debug("searching flights", zap.Any("params", params.Redacted()))
	searchStart := time.Now()
	raw, err := searcher.Search(ctx, params)
	searchDuration := time.Since(searchStart)
	p.observe(metrics.StepSearch, searchDuration)
	if err != nil {
		log.Error("flight search failed", zap.String("provider", searcher.Name()), zap.Error(err))
		return nil, p.fail(KindSearchFailed, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		log.Error("failed to decode search result", zap.Int("bytes", len(raw)), zap.Error(err))
		return nil, p.fail(KindDecodeFailed, err)
	}

	analysisPrompt := prompt.Build(buf.String())
	if p.metrics != nil {
		p.metrics.PromptBytes.Observe(float64(len(analysisPrompt)))
	}

	completer := p.clients.NewCompleter(creds.CompletionAPIKey)
	completionStart := time.Now()
	text, err := completer.Complete(ctx, p.config.Model, p.config.Temperature, analysisPrompt)
	completionDuration := time.Since(completionStart)
	p.observe(metrics.StepCompletion, completionDuration)
	if err != nil {
		log.Error("completion failed", zap.String("model", p.config.Model), zap.Error(err))
		return nil, p.fail(KindCompletionFailed, err)
	}

	p.count("success")
	log.Info("flight analysis completed",
		zap.Duration("search_time", searchDuration),
		zap.Duration("completion_time", completionDuration),
	)

	return &Result{
		Text:               text,
		Engine:             p.config.Engine,
		Model:              p.config.Model,
		SearchDuration:     searchDuration,
		CompletionDuration: completionDuration,
	}, nil
}

func (p *Pipeline) fail(kind Kind, err error) error {
	p.count(kind.String())
	return &Error{Kind: kind, Err: err}
}

func (p *Pipeline) count(outcome string) {
	if p.metrics != nil {
		p.metrics.Analyses.WithLabelValues(outcome).Inc()
	}
}

func (p *Pipeline) observe(step string, d time.Duration) {
	if p.metrics != nil {
		p.metrics.CallDuration.WithLabelValues(step).Observe(d.Seconds())
	}
}
