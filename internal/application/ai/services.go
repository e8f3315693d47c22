package ai

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/truthlens/internal/application"
	"github.com/bryanwahyu/truthlens/internal/domain/ai"
)

// Service runs text through the configured AI client.
type Service struct {
	client ai.Client
	clock  application.Clock
	log    logrus.FieldLogger
}

func NewService(client ai.Client, clock application.Clock, log logrus.FieldLogger) *Service {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{client: client, clock: clock, log: log}
}

// Model names the analyzer behind the service.
func (s *Service) Model() string { return s.client.Model() }

// Analyze returns the analysis of text. Whitespace-only text is still sent;
// only the empty string is rejected.
func (s *Service) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	if text == "" {
		return nil, ai.ErrEmptyText
	}

	id := ai.AnalysisID(uuid.New().String())
	start := s.clock.Now()
	result, err := s.client.Analyze(ctx, text)
	elapsed := s.clock.Now().Sub(start)

	entry := s.log.WithFields(logrus.Fields{
		"analysis_id": id,
		"model":       s.client.Model(),
		"chars":       len(text),
		"duration":    elapsed,
	})
	if err != nil {
		entry.WithError(err).Error("analysis failed")
		return nil, err
	}
	entry.Info("analysis completed")

	return &ai.Analysis{
		ID:         id,
		Text:       text,
		Result:     strings.TrimSpace(result),
		Model:      s.client.Model(),
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  start,
	}, nil
}
