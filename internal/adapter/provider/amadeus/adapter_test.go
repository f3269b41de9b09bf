package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/ratelimit"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/retry"
)

const offersJSON = `{
	"meta": {"count": 2},
	"data": [
		{
			"id": "1",
			"price": {"total": "250.00", "currency": "USD"},
			"itineraries": [{
				"duration": "PT6H",
				"segments": [{
					"departure": {"iataCode": "JFK", "terminal": "4", "at": "2025-12-15T08:00:00"},
					"arrival": {"iataCode": "LAX", "at": "2025-12-15T11:00:00"},
					"carrierCode": "DL",
					"number": "123",
					"aircraft": {"code": "321"},
					"duration": "PT6H"
				}]
			}]
		},
		{
			"id": "2",
			"price": {"total": "99.99", "currency": "USD"},
			"itineraries": []
		}
	]
}`

// fakeAPI is an httptest server speaking the token and search endpoints.
type fakeAPI struct {
	*httptest.Server

	tokenCalls  int32
	searchCalls int32

	mu        sync.Mutex
	lastQuery url.Values
	lastAuth  string

	tokenStatus int
	tokenDelay  time.Duration
	search      func(w http.ResponseWriter, call int32)
}

func newFakeAPI(t *testing.T, search func(w http.ResponseWriter, call int32)) *fakeAPI {
	t.Helper()
	api := &fakeAPI{tokenStatus: http.StatusOK, search: search}

	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&api.tokenCalls, 1)
		if api.tokenDelay > 0 {
			time.Sleep(api.tokenDelay)
		}
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		if api.tokenStatus != http.StatusOK || r.PostForm.Get("client_secret") != "secret" {
			status := api.tokenStatus
			if status == http.StatusOK {
				status = http.StatusUnauthorized
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":"invalid_client","error_description":"Client credentials are invalid"}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"type":"amadeusOAuth2Token","access_token":"tok-123","token_type":"Bearer","expires_in":1799}`)
	})
	mux.HandleFunc(searchPath, func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&api.searchCalls, 1)
		api.mu.Lock()
		api.lastQuery = r.URL.Query()
		api.lastAuth = r.Header.Get("Authorization")
		api.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		api.search(w, call)
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

func newTestAdapter(t *testing.T, api *fakeAPI, secret string) *Adapter {
	t.Helper()
	a, err := NewAdapter(Config{
		APIKey:         "key",
		APISecret:      secret,
		BaseURL:        api.URL,
		MaxAttempts:    3,
		RequestTimeout: time.Second,
	},
		WithLimiter(ratelimit.NewProviderLimiter(ratelimit.Config{RequestsPerSecond: 0})),
		WithRetryPolicy(retry.Policy{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     2 * time.Millisecond,
			Multiplier:   2,
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func testRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		MaxResults:    10,
		Currency:      "EUR",
		NonStop:       true,
	}
}

func respond(status int, body string) func(http.ResponseWriter, int32) {
	return func(w http.ResponseWriter, _ int32) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// TestAdapter_Name tests the Name method.
func TestAdapter_Name(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, `{"data":[]}`))
	assert.Equal(t, "amadeus", newTestAdapter(t, api, "secret").Name())
}

func TestNewAdapter_RequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no key", Config{APISecret: "s"}},
		{"no secret", Config{APIKey: "k"}},
		{"blank", Config{APIKey: " ", APISecret: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdapter(tt.cfg)
			assert.Nil(t, a)
			assert.True(t, domain.IsConfiguration(err))
		})
	}
}

func TestNewAdapter_RetryTimings(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantInitial time.Duration
		wantMax     time.Duration
		wantTries   int
	}{
		{
			name:        "provider defaults",
			cfg:         Config{APIKey: "k", APISecret: "s"},
			wantInitial: retry.ProviderPolicy.InitialDelay,
			wantMax:     retry.ProviderPolicy.MaxDelay,
			wantTries:   retry.ProviderPolicy.MaxAttempts,
		},
		{
			name:        "configured delays",
			cfg:         Config{APIKey: "k", APISecret: "s", MaxAttempts: 5, RetryDelay: 50 * time.Millisecond, RetryMaxDelay: time.Second},
			wantInitial: 50 * time.Millisecond,
			wantMax:     time.Second,
			wantTries:   5,
		},
		{
			name:        "max delay raised to initial delay",
			cfg:         Config{APIKey: "k", APISecret: "s", RetryDelay: time.Second, RetryMaxDelay: time.Millisecond},
			wantInitial: time.Second,
			wantMax:     time.Second,
			wantTries:   retry.ProviderPolicy.MaxAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdapter(tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantInitial, a.policy.InitialDelay)
			assert.Equal(t, tt.wantMax, a.policy.MaxDelay)
			assert.Equal(t, tt.wantTries, a.policy.MaxAttempts)
		})
	}
}

func TestAdapter_Search_ReturnsRawOffers(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
	a := newTestAdapter(t, api, "secret")

	offers, err := a.Search(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "1", *offers[0].ID)
	assert.Equal(t, "250.00", *offers[0].Price.Total)
	require.Len(t, offers[0].Itineraries, 1)
	seg := offers[0].Itineraries[0].Segments[0]
	assert.Equal(t, "JFK", *seg.Departure.IATACode)
	assert.Equal(t, "4", *seg.Departure.Terminal)
	assert.Nil(t, seg.Arrival.Terminal)
	assert.Equal(t, "Bearer tok-123", api.lastAuth)
}

func TestAdapter_Search_ForwardsParameters(t *testing.T) {
	t.Run("one way omits returnDate", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, `{"data":[]}`))
		a := newTestAdapter(t, api, "secret")

		_, err := a.Search(context.Background(), testRequest())
		require.NoError(t, err)

		q := api.lastQuery
		assert.Equal(t, "JFK", q.Get("originLocationCode"))
		assert.Equal(t, "LAX", q.Get("destinationLocationCode"))
		assert.Equal(t, "2025-12-15", q.Get("departureDate"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "10", q.Get("max"))
		assert.Equal(t, "EUR", q.Get("currencyCode"))
		assert.Equal(t, "true", q.Get("nonStop"))
		_, present := q["returnDate"]
		assert.False(t, present)
	})

	t.Run("round trip sends returnDate", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, `{"data":[]}`))
		a := newTestAdapter(t, api, "secret")

		req := testRequest()
		ret := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
		req.ReturnDate = &ret
		req.NonStop = false

		_, err := a.Search(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "2025-12-20", api.lastQuery.Get("returnDate"))
		assert.Equal(t, "false", api.lastQuery.Get("nonStop"))
	})
}

func TestAdapter_Search_EmptyData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `{"data":[]}`},
		{"no data key", `{"meta":{"count":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, respond(http.StatusOK, tt.body))
			a := newTestAdapter(t, api, "secret")

			offers, err := a.Search(context.Background(), testRequest())

			require.NoError(t, err)
			assert.Empty(t, offers)
		})
	}
}

func TestAdapter_Search_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantAuth      bool
		wantCalls     int32
		wantRetryable bool
		wantInMessage string
	}{
		{
			name:          "401 is auth",
			status:        http.StatusUnauthorized,
			body:          `{"errors":[{"status":401,"code":38190,"title":"Invalid access token","detail":"The access token provided in the Authorization header is invalid"}]}`,
			wantAuth:      true,
			wantCalls:     1,
			wantInMessage: "Invalid access token",
		},
		{
			name:      "403 is auth",
			status:    http.StatusForbidden,
			body:      `{}`,
			wantAuth:  true,
			wantCalls: 1,
		},
		{
			name:          "400 is transport without retry",
			status:        http.StatusBadRequest,
			body:          `{"errors":[{"status":400,"code":477,"title":"INVALID FORMAT","detail":"originLocationCode must be a 3-letter code"}]}`,
			wantCalls:     1,
			wantInMessage: "INVALID FORMAT: originLocationCode must be a 3-letter code",
		},
		{
			name:          "429 is retried",
			status:        http.StatusTooManyRequests,
			body:          `{"errors":[{"status":429,"code":38194,"title":"Too many requests"}]}`,
			wantCalls:     3,
			wantRetryable: true,
			wantInMessage: "Too many requests",
		},
		{
			name:          "500 is retried",
			status:        http.StatusInternalServerError,
			body:          `not json`,
			wantCalls:     3,
			wantRetryable: true,
			wantInMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, respond(tt.status, tt.body))
			a := newTestAdapter(t, api, "secret")

			offers, err := a.Search(context.Background(), testRequest())

			require.Error(t, err)
			assert.Nil(t, offers)
			assert.Equal(t, tt.wantAuth, domain.IsAuth(err))
			assert.Equal(t, !tt.wantAuth, domain.IsTransport(err))
			assert.Equal(t, tt.wantRetryable, domain.IsRetryable(err))
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&api.searchCalls))
			if tt.wantInMessage != "" {
				assert.Contains(t, err.Error(), tt.wantInMessage)
			}

			var pe *domain.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.status, pe.StatusCode)
		})
	}
}

func TestAdapter_Search_RecoversAfterTransientFailure(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, call int32) {
		if call == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, offersJSON)
	})
	obs := &recordingCallObserver{}
	a := newTestAdapter(t, api, "secret")
	a.observer = obs

	offers, err := a.Search(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Len(t, offers, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&api.searchCalls))
	assert.Equal(t, []int{503, 200}, obs.calls)
	assert.Equal(t, 1, obs.retries)
	// The token is fetched once and reused
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.tokenCalls))
}

func TestAdapter_Search_MalformedBody(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, `{"data": "oops"`))
	a := newTestAdapter(t, api, "secret")

	_, err := a.Search(context.Background(), testRequest())

	assert.True(t, domain.IsTransport(err))
	assert.False(t, domain.IsRetryable(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.searchCalls))
}

func TestAdapter_Search_BadCredentials(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
	a := newTestAdapter(t, api, "wrong")

	_, err := a.Search(context.Background(), testRequest())

	require.Error(t, err)
	assert.True(t, domain.IsAuth(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.searchCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.tokenCalls))
}

func TestAdapter_Search_TokenEndpointDown(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
	api.tokenStatus = http.StatusBadGateway
	a := newTestAdapter(t, api, "secret")

	_, err := a.Search(context.Background(), testRequest())

	assert.True(t, domain.IsTransport(err))
	assert.True(t, domain.IsRetryable(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.searchCalls))
}

func TestAdapter_Search_Unreachable(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
	a := newTestAdapter(t, api, "secret")
	require.NoError(t, a.Open(context.Background()))
	api.Close()

	_, err := a.Search(context.Background(), testRequest())

	assert.True(t, domain.IsTransport(err))
	assert.True(t, domain.IsRetryable(err))
}

func TestAdapter_Search_ContextCancellation(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, _ int32) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, offersJSON)
	})
	a := newTestAdapter(t, api, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := a.Search(ctx, testRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, domain.IsTransport(err))
}

func TestAdapter_Search_CancelledDuringTokenRefresh(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
	api.tokenDelay = 500 * time.Millisecond
	a := newTestAdapter(t, api, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := a.Search(ctx, testRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 300*time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.searchCalls))
}

func TestAdapter_Search_NumericTotal(t *testing.T) {
	api := newFakeAPI(t, respond(http.StatusOK, `{"data":[
		{"id":"1","price":{"total":99.99,"currency":"USD"}},
		{"id":"2","price":{"total":"120.50","currency":"USD"}},
		{"id":"3","price":{"total":{"amount":"1"},"currency":"USD"}}
	]}`))
	a := newTestAdapter(t, api, "secret")

	offers, err := a.Search(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "99.99", *offers[0].PriceTotal())
	assert.Equal(t, "120.50", *offers[1].PriceTotal())
	assert.Equal(t, `{"amount":"1"}`, *offers[2].PriceTotal())
}

func TestAdapter_Open(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
		a := newTestAdapter(t, api, "secret")

		require.NoError(t, a.Open(context.Background()))
		assert.Equal(t, int32(1), atomic.LoadInt32(&api.tokenCalls))
	})

	t.Run("rejected credentials", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
		a := newTestAdapter(t, api, "wrong")

		err := a.Open(context.Background())
		assert.True(t, domain.IsAuth(err))
	})

	t.Run("gives up when ctx is done", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
		api.tokenDelay = 500 * time.Millisecond
		a := newTestAdapter(t, api, "secret")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, a.Open(ctx), context.DeadlineExceeded)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		api := newFakeAPI(t, respond(http.StatusOK, offersJSON))
		a := newTestAdapter(t, api, "secret")

		assert.NoError(t, a.Close())
		assert.NoError(t, a.Close())
	})
}

func TestBuildQuery(t *testing.T) {
	q, err := url.ParseQuery(buildQuery(testRequest()))
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"originLocationCode":      {"JFK"},
		"destinationLocationCode": {"LAX"},
		"departureDate":           {"2025-12-15"},
		"adults":                  {"2"},
		"max":                     {"10"},
		"currencyCode":            {"EUR"},
		"nonStop":                 {"true"},
	}, q)
}

type recordingCallObserver struct {
	mu      sync.Mutex
	calls   []int
	retries int
}

func (r *recordingCallObserver) ObserveCall(_ string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, status)
}

func (r *recordingCallObserver) ObserveRetry(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries++
}
