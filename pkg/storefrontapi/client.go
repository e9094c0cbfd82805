// Package storefrontapi talks to the externally owned catalog, order and auth
// API the storefront is built on.
package storefrontapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Observer receives call outcomes, typically to export them as metrics.
type Observer interface {
	ObserveUpstreamCall(endpoint string, statusCode int, duration time.Duration)
	ObserveBreakerState(name string, state gobreaker.State)
}

type noopObserver struct{}

func (noopObserver) ObserveUpstreamCall(string, int, time.Duration) {}
func (noopObserver) ObserveBreakerState(string, gobreaker.State) {}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client

	MaxHalfOpenRequests uint32
	FailureWindow       time.Duration
	OpenTimeout         time.Duration
	MinRequests         uint32
	FailureRatio        float64

	Observer Observer
}

type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	observer Observer
}

const breakerName = "storefront-api"

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	observer := cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}
	failureRatio := cfg.FailureRatio
	if failureRatio <= 0 {
		failureRatio = 0.6
	}

	rc := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0) // failures are handled by the breaker

	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxHalfOpenRequests,
		Interval:    cfg.FailureWindow,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && ratio >= failureRatio
		},
		OnStateChange: func(name string, _ gobreaker.State, to gobreaker.State) {
			observer.ObserveBreakerState(name, to)
		},
	})
	observer.ObserveBreakerState(breakerName, gobreaker.StateClosed)

	return &Client{http: rc, breaker: breaker, observer: observer}
}

// serverError marks 5xx answers so the breaker counts them as failures.
type serverError struct {
	resp *resty.Response
}

func (e *serverError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.resp.StatusCode())
}

// abandoned carries a transport error caused by the caller's own context
// out of the breaker without counting it as a failure.
type abandoned struct {
	err error
}

func cancelledError(err error) *appErrors.AppError {
	return appErrors.ThirdPartyError("Request was cancelled").WithError(err)
}

// do runs one request through the breaker and turns non-2xx answers into
// AppErrors. A 4xx answer does not count against the breaker.
func (c *Client) do(ctx context.Context, endpoint string, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, cancelledError(err)
	}

	start := time.Now()

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := send(c.http.R().SetContext(ctx))
		if err != nil {
			if ctx.Err() != nil {
				// the caller went away; the upstream did not fail
				return abandoned{err: err}, nil
			}
			return nil, err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return resp, &serverError{resp: resp}
		}
		return resp, nil
	})

	if a, ok := result.(abandoned); ok {
		c.observer.ObserveUpstreamCall(endpoint, 0, time.Since(start))
		return nil, cancelledError(a.err)
	}

	var resp *resty.Response
	if r, ok := result.(*resty.Response); ok {
		resp = r
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	c.observer.ObserveUpstreamCall(endpoint, status, time.Since(start))

	if err != nil {
		var srvErr *serverError
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, appErrors.ServiceUnavailableError("The service is temporarily unavailable. Please try again shortly.").WithError(err)
		case errors.As(err, &srvErr):
			return nil, statusToError(srvErr.resp)
		default:
			return nil, appErrors.ThirdPartyError("Could not reach the service. Please check your connection.").WithError(err)
		}
	}

	if resp.IsError() {
		return nil, statusToError(resp)
	}

	return resp, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

const fallbackMessage = "Something went wrong. Please try again."

// ErrorMessage pulls the human readable message out of a failed response,
// falling back to a generic string.
func ErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return fallbackMessage
}

func statusToError(resp *resty.Response) *appErrors.AppError {
	message := ErrorMessage(resp.Body())
	detail := fmt.Sprintf("%s %s returned %d", resp.Request.Method, resp.Request.URL, resp.StatusCode())

	var appErr *appErrors.AppError
	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		appErr = appErrors.BadRequestError(message)
	case http.StatusUnauthorized:
		appErr = appErrors.UnauthorizedError(message)
	case http.StatusForbidden:
		appErr = appErrors.ForbiddenError(message)
	case http.StatusNotFound:
		appErr = appErrors.NotFoundError(message)
	case http.StatusConflict:
		appErr = appErrors.ConflictError(message)
	case http.StatusTooManyRequests:
		appErr = appErrors.TooManyRequestsError(message)
	default:
		appErr = appErrors.ThirdPartyError(message)
	}

	return appErr.WithDetail(detail)
}

func decode(resp *resty.Response, dest any) error {
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return appErrors.ThirdPartyError("Received an unexpected response").WithError(fmt.Errorf("decoding %s: %w", resp.Request.URL, err))
	}
	return nil
}

// Ping checks that the API answers at all.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "health", func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/health")
	})
	return err
}

func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}
