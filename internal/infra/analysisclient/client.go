package analysisclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

// DefaultEndpoint is where the bundled service listens.
const DefaultEndpoint = "http://127.0.0.1:5000/analyze"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client posts text to the analysis service. It never retries and applies no
// timeout of its own; the caller's context is the only bound.
type Client struct {
	endpoint   string
	origin     string
	httpClient *http.Client
	log        logrus.FieldLogger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithOrigin sets the Origin header sent with every request, mirroring a
// browser's cross-origin mode.
func WithOrigin(origin string) Option {
	return func(c *Client) { c.origin = origin }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		log:        logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// Analyze implements analysis.Client.
func (c *Client) Analyze(ctx context.Context, req analysis.AnalysisRequest) (analysis.AnalysisResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return analysis.AnalysisResponse{}, analysis.TransportError(fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return analysis.AnalysisResponse{}, analysis.TransportError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.origin != "" {
		httpReq.Header.Set("Origin", c.origin)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return analysis.AnalysisResponse{}, analysis.TransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return analysis.AnalysisResponse{}, analysis.TransportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload analysis.AnalysisResponse
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			c.log.WithFields(logrus.Fields{
				"status": resp.StatusCode,
				"error":  payload.Error,
			}).Debug("analysis service returned an error status")
		}
		return analysis.AnalysisResponse{}, analysis.ProtocolError(resp.StatusCode, statusText(resp))
	}

	var out analysis.AnalysisResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return analysis.AnalysisResponse{}, analysis.TransportError(fmt.Errorf("decode response: %w", err))
	}
	return out, nil
}

// statusText returns the reason phrase the server sent, falling back to the
// canonical text for the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
