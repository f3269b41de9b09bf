// Package integration provides helpers and integration tests for the offer search service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the ranking pipeline and mock searchers.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/flight-offer-aggregator/internal/adapter/http"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/metrics"
	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

// searchPath is the offer search endpoint.
const searchPath = "/api/v1/offers/search"

// TestServer wraps an Echo instance wired the way cmd/server wires it.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
	Metrics *metrics.Metrics
}

// NewTestServer builds the full HTTP stack around searcher. Logs go to logOut.
func NewTestServer(searcher domain.OfferSearcher, logOut io.Writer, opts ...httpAdapter.HandlerOption) *TestServer {
	if logOut == nil {
		logOut = io.Discard
	}
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json", ServiceName: "integration"}, logOut)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)

	m := metrics.New()
	uc := usecase.NewOfferSearchUseCase(searcher, usecase.WithObserver(m))
	handler := httpAdapter.NewOfferHandler(uc, opts...)
	httpAdapter.RegisterRoutes(e, handler, m.Handler())

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Metrics: m,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	RawBody string
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch {
	case req.RawBody != "":
		body = []byte(req.RawBody)
	case req.Body != nil:
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts body to the search endpoint.
func (ts *TestServer) Search(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: searchPath, Body: body})
}

// Get issues a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r *Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchBody is the JSON body of a search request.
type SearchBody struct {
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	DepartureDate string      `json:"departureDate"`
	ReturnDate    string      `json:"returnDate,omitempty"`
	RoundTrip     *bool       `json:"roundTrip,omitempty"`
	Adults        interface{} `json:"adults,omitempty"`
	MaxResults    interface{} `json:"maxResults,omitempty"`
	Currency      string      `json:"currency,omitempty"`
	NonStop       bool        `json:"nonStop,omitempty"`
}

// DefaultSearchBody returns a valid one-way search departing 30 days from now.
func DefaultSearchBody() SearchBody {
	return SearchBody{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: daysFromNow(30),
	}
}

// DefaultSearchRequest returns a valid domain request for calling the use case directly.
func DefaultSearchRequest() domain.SearchRequest {
	req, err := domain.BuildSearchRequest(domain.SearchInput{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: daysFromNow(30),
	})
	if err != nil {
		panic(err)
	}
	return req
}

func daysFromNow(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(domain.DateLayout)
}
