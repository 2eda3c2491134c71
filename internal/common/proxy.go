package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	OK                     int = 200
	BAD_REQUEST            int = 400
	UNAUTHORIZED           int = 401
	FORBIDDEN              int = 403
	DATA_NOT_FOUND         int = 404
	METHOD_NOT_ALLOWED     int = 405
	UNSUPPORTED_MEDIA_TYPE int = 415
	RATE_LIMIT_EXCEEDED    int = 429
	INTERNAL_SERVER_ERROR  int = 500
	BAD_GATEWAY            int = 502
	SERVICE_UNAVAILABLE    int = 503
	GATEWAY_TIMEOUT        int = 504
)

var messages = map[int]string{
	OK:                     "OK",
	BAD_REQUEST:            "Bad request",
	UNAUTHORIZED:           "Unauthorized",
	FORBIDDEN:              "Forbidden",
	DATA_NOT_FOUND:         "Data not found",
	METHOD_NOT_ALLOWED:     "Method not allowed",
	UNSUPPORTED_MEDIA_TYPE: "Unsupported media type",
	RATE_LIMIT_EXCEEDED:    "Rate limit exceeded",
	INTERNAL_SERVER_ERROR:  "Internal server error",
	BAD_GATEWAY:            "Bad gateway",
	SERVICE_UNAVAILABLE:    "Service unavailable",
	GATEWAY_TIMEOUT:        "Gateway timeout",
}

// Status message for a status code, falling back to the standard library text
func StatusMessage(statusCode int) string {
	if message, ok := messages[statusCode]; ok {
		return message
	}
	return http.StatusText(statusCode)
}

// Raw answer of the server. The body is read completely whatever the status
type Response struct {
	StatusCode int
	Body       []byte
}

type Proxy struct {
	query       map[string]string // Parameters added to every request, never logged
	client      *http.Client
	rateLimiter *RateLimiter
}

func NewProxy(client *http.Client, query map[string]string, restrictions []Restriction) *Proxy {
	if client == nil {
		client = &http.Client{}
	}
	return &Proxy{query, client, NewRateLimiter(restrictions)}
}

// Make a GET request to the provided url.
// The request is delayed until the rate limiter allows it.
// Only transport problems are reported as errors, the status is for the caller to judge
func (proxy *Proxy) Request(ctx context.Context, rawUrl string) (Response, error) {

	// Ask for permission to execute the request and wait if necessary
	if err := proxy.rateLimiter.Wait(ctx); err != nil {
		return Response{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	// Add the common parameters
	u, err := url.Parse(rawUrl)
	if err != nil {
		return Response{}, fmt.Errorf("could not parse url %s: %w", rawUrl, err)
	}
	q := u.Query()
	for key, value := range proxy.query {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("could not create request for url %s: %w", rawUrl, err)
	}

	log.Debug().Msgf("Requesting to url %s", rawUrl)
	res, err := proxy.client.Do(request)
	if err != nil {
		// The error embeds the full url, parameters included
		return Response{}, fmt.Errorf("could not perform request to %s: %w", rawUrl, redact(err))
	}
	defer res.Body.Close()

	log.Debug().Msgf("%d %s", res.StatusCode, StatusMessage(res.StatusCode))

	if res.StatusCode == RATE_LIMIT_EXCEEDED {
		proxy.rateLimiter.ReceivedRateLimit(retryAfter(res.Header))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, fmt.Errorf("could not read the response for url %s: %w", rawUrl, err)
	}
	return Response{StatusCode: res.StatusCode, Body: body}, nil
}

func retryAfter(header http.Header) time.Duration {
	seconds, err := strconv.Atoi(header.Get("Retry-After"))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// Drop the url out of the transport error
func redact(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
