package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrStaticTokenRejected = errors.New("static bearer token rejected")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// StaticToken is an authenticator for a pre-shared API token. It cannot
// refresh, so a 401 from the server surfaces as ErrStaticTokenRejected.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	return ErrStaticTokenRejected
}

func (t StaticToken) BearerToken() string {
	return string(t)
}

type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	resp, err := rt.next.RoundTrip(rt.withAuthorization(req))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	resp.Body.Close()

	if err = rt.authenticator.Authenticate(req.Context()); err != nil {
		return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
	}

	retry := rt.withAuthorization(req)

	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}
	}

	return rt.next.RoundTrip(retry) //nolint:wrapcheck
}

// withAuthorization clones req; a RoundTripper must not modify the caller's
// request.
func (rt AuthBearerRoundTripper) withAuthorization(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())

	return out
}
