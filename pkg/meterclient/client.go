package meterclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"passmeter/pkg/httpx"
	"passmeter/pkg/logx"
	"passmeter/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       rest.ErrorCode
	Message    string
	SupportID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("passmeter: %d %s (support id %s)", e.StatusCode, e.Code, e.SupportID)
	}

	return fmt.Sprintf("passmeter: %d %s: %s (support id %s)", e.StatusCode, e.Code, e.Message, e.SupportID)
}

type Option func(*options)

type options struct {
	token          string
	transport      http.RoundTripper
	timeout        time.Duration
	logFieldMaxLen int
}

// WithToken sends token as a bearer token on every call.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) {
		o.transport = transport
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithLogFieldMaxLen(n int) Option {
	return func(o *options) {
		o.logFieldMaxLen = n
	}
}

// Client calls a remote passmeter API. Request and response dumps go to the
// context logger with passwords masked.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...Option) *Client {
	o := options{
		transport: http.DefaultTransport,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(&o)
	}

	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		o.transport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(o.logFieldMaxLen),
	)

	if o.token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.StaticToken(o.token))
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   o.timeout,
		},
	}
}

func (c *Client) Evaluate(ctx context.Context, password string) (rest.EvaluateResponse, error) {
	var response rest.EvaluateResponse

	if err := c.do(ctx, http.MethodPost, "/v1/evaluate", rest.EvaluateRequest{Password: password}, &response); err != nil {
		return rest.EvaluateResponse{}, fmt.Errorf("c.do: %w", err)
	}

	return response, nil
}

func (c *Client) CrackTime(ctx context.Context, bits float64) (rest.CrackTimeResponse, error) {
	var response rest.CrackTimeResponse

	query := url.Values{"bits": {strconv.FormatFloat(bits, 'g', -1, 64)}}

	if err := c.do(ctx, http.MethodGet, "/v1/crack-time?"+query.Encode(), nil, &response); err != nil {
		return rest.CrackTimeResponse{}, fmt.Errorf("c.do: %w", err)
	}

	return response, nil
}

func (c *Client) Suggest(ctx context.Context, base string, count int) ([]string, error) {
	var response rest.SuggestionsResponse

	request := rest.SuggestionsRequest{Base: base, Count: count}

	if err := c.do(ctx, http.MethodPost, "/v1/suggestions", request, &response); err != nil {
		return nil, fmt.Errorf("c.do: %w", err)
	}

	return response.Suggestions, nil
}

func (c *Client) Generate(ctx context.Context) (string, error) {
	var response rest.GenerateResponse

	if err := c.do(ctx, http.MethodPost, "/v1/generate", struct{}{}, &response); err != nil {
		return "", fmt.Errorf("c.do: %w", err)
	}

	return response.Password, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, request, dest any) error {
	body := io.Reader(http.NoBody)

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp rest.Error

		// The body may not be JSON when a proxy answers; the status still
		// goes into the error.
		_ = json.NewDecoder(resp.Body).Decode(&errResp) //nolint:errcheck

		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
			SupportID:  errResp.SupportID,
		}
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
