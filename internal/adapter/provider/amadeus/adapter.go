// Package amadeus implements domain.OfferSearcher against the Amadeus Flight Offers Search API.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/ratelimit"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"

	// maxBodyBytes caps how much of a response is read into memory.
	maxBodyBytes = 8 << 20
)

// Config holds what the adapter needs to reach the API.
type Config struct {
	APIKey         string
	APISecret      string
	BaseURL        string
	MaxAttempts    int
	RequestTimeout time.Duration

	// RetryDelay and RetryMaxDelay bound the backoff between attempts.
	// Zero keeps retry.ProviderPolicy's timings.
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

// CallObserver is told about every HTTP exchange and every retry.
type CallObserver interface {
	ObserveCall(provider string, status int)
	ObserveRetry(provider string)
}

// Adapter is a long-lived handle to the API. It is safe for concurrent use.
// Open acquires the first access token; Close releases idle connections.
type Adapter struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *ratelimit.ProviderLimiter
	policy     retry.Policy
	observer   CallObserver

	closeOnce sync.Once
}

// Option configures the Adapter.
type Option func(*Adapter)

// WithHTTPClient replaces the HTTP client used for token and search calls.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Adapter) {
		a.httpClient = c
	}
}

// WithLimiter shares a rate limiter with other callers.
func WithLimiter(l *ratelimit.ProviderLimiter) Option {
	return func(a *Adapter) {
		a.limiter = l
	}
}

// WithRetryPolicy overrides the retry timings. Retryable and OnRetry are always set by the adapter.
func WithRetryPolicy(p retry.Policy) Option {
	return func(a *Adapter) {
		a.policy = p
	}
}

// WithCallObserver registers an observer for HTTP calls and retries.
func WithCallObserver(o CallObserver) Option {
	return func(a *Adapter) {
		a.observer = o
	}
}

// NewAdapter creates an Adapter. Missing credentials yield domain.ErrConfiguration.
func NewAdapter(cfg Config, opts ...Option) (*Adapter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.APISecret) == "" {
		return nil, fmt.Errorf("%w: amadeus API key and secret are required", domain.ErrConfiguration)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	a := &Adapter{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    ratelimit.NewProviderLimiter(ratelimit.DefaultConfig()),
		policy:     retry.ProviderPolicy,
		observer:   nopCallObserver{},
	}
	if cfg.MaxAttempts > 0 {
		a.policy = a.policy.WithMaxAttempts(cfg.MaxAttempts)
	}
	if cfg.RetryDelay > 0 {
		maxDelay := cfg.RetryMaxDelay
		if maxDelay < cfg.RetryDelay {
			maxDelay = cfg.RetryDelay
		}
		a.policy = a.policy.WithDelays(cfg.RetryDelay, maxDelay)
	}
	for _, opt := range opts {
		opt(a)
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.APISecret,
		TokenURL:     a.baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	// The token source outlives any single request, so it gets its own context.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, a.httpClient)
	a.tokens = cc.TokenSource(tokenCtx)

	return a, nil
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Open fetches the first access token so bad credentials surface before any search.
func (a *Adapter) Open(ctx context.Context) error {
	if _, err := a.token(ctx); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Str("provider", ProviderName).Msg("Provider session opened")
	return nil
}

// token returns a valid access token, refreshing it when needed. The token source
// is not bound to ctx, so the wait is abandoned when ctx is done.
func (a *Adapter) token(ctx context.Context) (*oauth2.Token, error) {
	type result struct {
		tok *oauth2.Token
		err error
	}
	done := make(chan result, 1)
	go func() {
		tok, err := a.tokens.Token()
		done <- result{tok, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, classifyTokenError(r.err)
		}
		return r.tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases idle connections. It is safe to call more than once.
func (a *Adapter) Close() error {
	a.closeOnce.Do(a.httpClient.CloseIdleConnections)
	return nil
}

// Search performs one logical offer search, retrying transient failures.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
	log := zerolog.Ctx(ctx).With().Str("provider", ProviderName).Logger()
	query := buildQuery(req)

	log.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("departure_date", req.DepartureDateString()).
		Str("return_date", req.ReturnDateString()).
		Int("adults", req.Adults).
		Int("max", req.MaxResults).
		Str("currency", req.Currency).
		Bool("non_stop", req.NonStop).
		Msg("Searching flight offers")

	policy := a.policy.
		WithRetryable(domain.IsRetryable).
		WithOnRetry(func(attempt int, wait time.Duration, err error) {
			a.observer.ObserveRetry(ProviderName)
			log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying offer search")
		})

	start := time.Now()
	offers, err := retry.Do(ctx, policy, func(ctx context.Context) ([]domain.RawOffer, error) {
		if err := a.wait(ctx); err != nil {
			return nil, err
		}
		return a.fetch(ctx, query)
	})
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("Offer search failed")
		return nil, err
	}

	if len(offers) == 0 {
		log.Warn().Strs("possible_causes", domain.NoOfferCauses).Msg("No flight offers found")
		return offers, nil
	}

	log.Info().Int("offers", len(offers)).Dur("elapsed", time.Since(start)).Msg("Flight offers received")
	return offers, nil
}

func (a *Adapter) wait(ctx context.Context) error {
	if err := a.limiter.Wait(ctx, ProviderName); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// The limiter refuses waits that would overrun the deadline.
		return fmt.Errorf("rate limit: %w", context.DeadlineExceeded)
	}
	return nil
}

func (a *Adapter) fetch(ctx context.Context, query string) ([]domain.RawOffer, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+searchPath+"?"+query, nil)
	if err != nil {
		return nil, domain.NewTransportError(ProviderName, 0, fmt.Errorf("build request: %w", err))
	}

	token, err := a.token(ctx)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(httpReq)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		a.observer.ObserveCall(ProviderName, 0)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewRetryableTransportError(ProviderName, 0, err)
	}
	defer resp.Body.Close()
	a.observer.ObserveCall(ProviderName, resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewRetryableTransportError(ProviderName, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, body)
	}

	var payload offersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewTransportError(ProviderName, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return payload.Data, nil
}

// offersResponse is the envelope returned by the search endpoint.
type offersResponse struct {
	Data []domain.RawOffer `json:"data"`
}

// apiErrors is the envelope returned with non-2xx responses.
type apiErrors struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// describe renders the first reported error, or the HTTP status text when the body is not an error envelope.
func describe(status int, body []byte) error {
	var e apiErrors
	if err := json.Unmarshal(body, &e); err == nil && len(e.Errors) > 0 {
		first := e.Errors[0]
		if first.Detail != "" {
			return fmt.Errorf("%s: %s", first.Title, first.Detail)
		}
		return errors.New(first.Title)
	}
	return errors.New(http.StatusText(status))
}

func classifyStatus(status int, body []byte) error {
	cause := describe(status, body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.NewAuthError(ProviderName, status, cause)
	case status == http.StatusTooManyRequests || status >= 500:
		return domain.NewRetryableTransportError(ProviderName, status, cause)
	default:
		return domain.NewTransportError(ProviderName, status, cause)
	}
}

// classifyTokenError maps a token endpoint failure. Rejected credentials are auth
// failures; an unreachable or failing endpoint is a retryable transport failure.
func classifyTokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		if status == http.StatusTooManyRequests || status >= 500 {
			return domain.NewRetryableTransportError(ProviderName, status, err)
		}
		return domain.NewAuthError(ProviderName, status, err)
	}
	return domain.NewRetryableTransportError(ProviderName, 0, err)
}

type nopCallObserver struct{}

func (nopCallObserver) ObserveCall(string, int) {}
func (nopCallObserver) ObserveRetry(string)     {}

var _ domain.OfferSearcher = (*Adapter)(nil)
