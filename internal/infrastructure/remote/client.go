// Package remote implements the JSON/HTTP client for the provisioning data
// service: the four record operations plus authentication and operator
// registration. Paths and payload shapes follow the service contract exactly;
// the server and its storage engine stay on the other side of the wire.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
	"github.com/fiberops/circuitdesk/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Client talks to the provisioning service. Every call is single-shot: no
// retry, no caching, repeated identical searches always re-hit the store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ ports.RecordStore = (*Client)(nil)
var _ ports.AuthClient = (*Client)(nil)

// New creates a client for the service at baseURL (trailing slash tolerated).
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
			},
		},
		logger: logger.With().Str("component", "remote_client").Logger(),
	}
}

// Search issues the dimension-specific lookup. An empty result set is a
// valid outcome, not a failure.
func (c *Client) Search(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	dim := string(q.Dimension)
	endpoint := fmt.Sprintf("%s/buscar/%s?%s=%s", c.baseURL, dim, dim, url.QueryEscape(q.Value))

	var records []domain.Record
	if err := c.do(ctx, "search", http.MethodGet, endpoint, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// Create submits a draft record; the service assigns the id.
func (c *Client) Create(ctx context.Context, draft domain.Record) (*domain.Record, error) {
	draft.ID = ""
	var created domain.Record
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/cadastro", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the stored record wholesale. The response is authoritative
// and must replace the local copy even when every field comes back unchanged.
func (c *Client) Update(ctx context.Context, id string, rec domain.Record) (*domain.Record, error) {
	rec.ID = id
	endpoint := fmt.Sprintf("%s/atualizar/cadastro/%s", c.baseURL, url.PathEscape(id))

	var updated domain.Record
	if err := c.do(ctx, "update", http.MethodPut, endpoint, rec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record. On success the caller drops it from its working
// set instead of re-fetching.
func (c *Client) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/cadastro/%s", c.baseURL, url.PathEscape(id))
	return c.do(ctx, "delete", http.MethodDelete, endpoint, nil, nil)
}

// Login authenticates the operator and returns the session record the
// service echoes back.
func (c *Client) Login(ctx context.Context, login, senha string) (domain.Session, error) {
	body := map[string]string{"login": login, "senha": senha}

	var sess domain.Session
	if err := c.do(ctx, "login", http.MethodPost, c.baseURL+"/api/login", body, &sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// RegisterUser creates an operator account and returns the service's
// confirmation message.
func (c *Client) RegisterUser(ctx context.Context, input ports.RegisterUserInput) (string, error) {
	body := map[string]string{
		"nome":      input.Nome,
		"login":     input.Login,
		"senha":     input.Senha,
		"permissao": input.Permissao,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "register", http.MethodPost, c.baseURL+"/api/cadastro_usuario", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// errorEnvelope is the body the service attaches to non-2xx responses.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do executes one request and decodes the response into out (nil out skips
// decoding). Failures come back as *domain.OpError; the caller decides
// whether to retry, nothing is retried here.
func (c *Client) do(ctx context.Context, op, method, endpoint string, in, out any) (err error) {
	timer := prometheus.NewTimer(metrics.RemoteRequestDuration.WithLabelValues(op))
	defer func() {
		timer.ObserveDuration()
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.RemoteRequestsTotal.WithLabelValues(op, outcome).Inc()
	}()

	var body io.Reader = http.NoBody
	if in != nil {
		payload, mErr := json.Marshal(in)
		if mErr != nil {
			return &domain.OpError{Op: op, Err: mErr}
		}
		body = bytes.NewReader(payload)
	}

	req, rErr := http.NewRequestWithContext(ctx, method, endpoint, body)
	if rErr != nil {
		return &domain.OpError{Op: op, Err: rErr}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, dErr := c.httpClient.Do(req)
	if dErr != nil {
		c.logger.Error().Err(dErr).Str("op", op).Str("endpoint", endpoint).Msg("remote call failed")
		return &domain.OpError{Op: op, Err: dErr}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reason := serverReason(resp)
		c.logger.Warn().Str("op", op).Int("status", resp.StatusCode).Str("reason", reason).Msg("remote call rejected")
		return &domain.OpError{Op: op, Reason: reason}
	}

	if out == nil {
		return nil
	}
	if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
		return &domain.OpError{Op: op, Reason: "malformed response", Err: decErr}
	}
	return nil
}

// serverReason extracts the {"error": "..."} message from a failure response,
// verbatim when present, falling back to the HTTP status text.
func serverReason(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Error != "" {
			return env.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}
