// Package client talks to the external trips backend over its REST contract.
// It is read-through only: nothing is cached beyond the lifetime of a request,
// and identical concurrent catalog fetches share one in-flight call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/trip-builder/internal/domain"
)

var tracer = otel.GetTracerProvider().Tracer("github.com/pkordes/trip-builder/internal/client")

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://iti-server-production.up.railway.app"

const (
	pathPlaces        = "/api/places"
	pathReadyPrograms = "/api/readyprogram"
	pathHome          = "/api/home"
	pathPrograms      = "/api/createprogram"
	pathLogin         = "/api/login"
	pathUser          = "/api/user"

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 4 << 10
)

// Client is a typed wrapper around the backend endpoints.
// Slices returned by the catalog methods may be shared between concurrent
// callers and must be treated as read-only.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (and its timeout).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New constructs a Client for baseURL. timeout bounds every request,
// including shared catalog fetches whose original caller has gone away.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the backend.
// It unwraps to domain.ErrUnauthorized for 401/403 and domain.ErrNotFound for 404.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

// ListPlaces returns the bookable places catalog.
func (c *Client) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	places, err := fetchShared[[]domain.Place](ctx, c, pathPlaces)
	if err != nil {
		return nil, fmt.Errorf("client.Client.ListPlaces: %w", err)
	}
	return places, nil
}

// ListReadyPrograms returns the curated ready-made programs.
func (c *Client) ListReadyPrograms(ctx context.Context) ([]domain.ReadyProgram, error) {
	programs, err := fetchShared[[]domain.ReadyProgram](ctx, c, pathReadyPrograms)
	if err != nil {
		return nil, fmt.Errorf("client.Client.ListReadyPrograms: %w", err)
	}
	return programs, nil
}

// ListHomeCategories returns the landing-screen categories.
func (c *Client) ListHomeCategories(ctx context.Context) ([]domain.Category, error) {
	home, err := fetchShared[struct {
		Categories []domain.Category `json:"categories"`
	}](ctx, c, pathHome)
	if err != nil {
		return nil, fmt.Errorf("client.Client.ListHomeCategories: %w", err)
	}
	return home.Categories, nil
}

// CreateProgram submits an itinerary on behalf of the token's user.
func (c *Client) CreateProgram(ctx context.Context, token string, it domain.Itinerary) error {
	if err := c.do(ctx, http.MethodPost, pathPrograms, token, it, nil); err != nil {
		return fmt.Errorf("client.Client.CreateProgram: %w", err)
	}
	return nil
}

// ListPrograms returns the trips the token's user has submitted.
func (c *Client) ListPrograms(ctx context.Context, token string) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := c.do(ctx, http.MethodGet, pathPrograms, token, nil, &trips); err != nil {
		return nil, fmt.Errorf("client.Client.ListPrograms: %w", err)
	}
	return trips, nil
}

// DeleteProgram removes one of the user's trips.
func (c *Client) DeleteProgram(ctx context.Context, token, id string) error {
	seg, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return fmt.Errorf("client.Client.DeleteProgram: %w", err)
	}
	if err := c.do(ctx, http.MethodDelete, pathPrograms+"/"+seg, token, nil, nil); err != nil {
		return fmt.Errorf("client.Client.DeleteProgram: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	var s domain.Session
	if err := c.do(ctx, http.MethodPost, pathLogin, "", creds, &s); err != nil {
		return domain.Session{}, fmt.Errorf("client.Client.Login: %w", err)
	}
	if s.Token == "" {
		return domain.Session{}, errors.New("client.Client.Login: response has no token")
	}
	return s, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, r domain.Registration) error {
	if err := c.do(ctx, http.MethodPost, pathUser, "", r, nil); err != nil {
		return fmt.Errorf("client.Client.Register: %w", err)
	}
	return nil
}

// fetchShared performs an unauthenticated GET collapsed by path: concurrent
// callers share the first caller's request. The request itself is detached from
// any single caller's cancellation, so a caller that gives up only stops
// waiting; the others still get the result.
func fetchShared[T any](ctx context.Context, c *Client, path string) (T, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(path, func() (any, error) {
		var out T
		err := c.do(detached, http.MethodGet, path, "", nil, &out)
		return out, err
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// do sends one request. body, if non-nil, is sent as JSON; out, if non-nil,
// receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	ctx, span := tracer.Start(ctx, method+" "+path)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("encode body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error response.
// JSON bodies with a "message" or "error" string are preferred; anything else
// is returned as trimmed text.
func errorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
