package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/cityledger/invoicegateway/internal/httpclient"
)

// MockHTTPClient implements a mock HTTP client for testing
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	requests []httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for requests whose URL contains
// the given fragment
func (m *MockHTTPClient) RegisterResponse(urlFragment string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[urlFragment] = resp
}

// RegisterJSONResponse is a helper to register a JSON response
func (m *MockHTTPClient) RegisterJSONResponse(urlFragment string, statusCode int, payload any) {
	body, _ := json.Marshal(payload)
	m.RegisterResponse(urlFragment, MockResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
}

// Requests returns a copy of every request seen so far
func (m *MockHTTPClient) Requests() []httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	requests := make([]httpclient.Request, len(m.requests))
	copy(requests, m.requests)
	return requests
}

// RequestCount returns how many requests matched the given URL fragment
func (m *MockHTTPClient) RequestCount(urlFragment string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, req := range m.requests {
		if strings.Contains(req.URL, urlFragment) {
			count++
		}
	}
	return count
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, *req)
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchedResponse MockResponse
	var found bool
	for route, resp := range m.routes {
		if strings.Contains(req.URL, route) {
			matchedResponse = resp
			found = true
			break
		}
	}

	if !found {
		return &httpclient.Response{
			StatusCode: http.StatusNotFound,
			Body:       []byte("Not Found"),
			Headers:    map[string]string{},
		}, httpclient.NewError(http.StatusNotFound, []byte("Not Found"))
	}

	if matchedResponse.StatusCode >= 400 {
		return nil, httpclient.NewError(matchedResponse.StatusCode, matchedResponse.Body)
	}

	return &httpclient.Response{
		StatusCode: matchedResponse.StatusCode,
		Body:       matchedResponse.Body,
		Headers:    matchedResponse.Headers,
	}, nil
}
