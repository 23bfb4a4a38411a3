package paypro

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"paybridge/internal/pkg/httpclient"
)

// tokenTTL is a freshness heuristic: the gateway does not communicate a real
// expiry, and tokens observed in production stop working after some minutes.
const tokenTTL = 10 * time.Minute

// headerTokenKeys are probed in order before the response body. http.Header
// lookups are case-insensitive, so "token"/"Token" are covered by one key.
var headerTokenKeys = []string{"Token", "Authorization"}

// bodyTokenPaths are candidate JSON field paths for the token, probed in
// order after the headers. The auth response shape differs between
// integration and currency mode.
var bodyTokenPaths = [][]string{
	{"token"},
	{"Token"},
	{"Data", "Token"},
	{"data", "Token"},
}

// TokenSource caches the gateway bearer token and re-authenticates when the
// cached one is absent or stale. Safe for concurrent use: refresh runs under
// a mutex, so concurrent callers that observe a stale token trigger exactly
// one upstream call and share its result.
type TokenSource struct {
	authURL      string
	clientID     string
	clientSecret string
	client       *httpclient.Client
	now          func() time.Time

	mu         sync.Mutex
	token      string
	obtainedAt time.Time
}

// NewTokenSource creates a token source for the given auth endpoint.
func NewTokenSource(authURL, clientID, clientSecret string, client *httpclient.Client) *TokenSource {
	return &TokenSource{
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       client,
		now:          time.Now,
	}
}

// Token returns a usable token, refreshing from upstream if the cached one
// is absent or older than tokenTTL.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Sub(ts.obtainedAt) <= tokenTTL {
		return ts.token, nil
	}
	return ts.obtainLocked(ctx)
}

// Refresh re-authenticates unconditionally and overwrites the cached token.
func (ts *TokenSource) Refresh(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.obtainLocked(ctx)
}

func (ts *TokenSource) obtainLocked(ctx context.Context) (string, error) {
	resp, err := ts.client.PostRaw(ctx, ts.authURL, map[string]string{
		"clientid":     ts.clientID,
		"clientsecret": ts.clientSecret,
	})
	if err != nil {
		return "", &AuthError{Msg: "auth request failed", Err: err}
	}

	token := ""

	// Headers take priority over the body.
	for _, key := range headerTokenKeys {
		if v := resp.Header().Get(key); v != "" {
			token = v
			break
		}
	}

	if token == "" {
		var body map[string]interface{}
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return "", &AuthError{
				Msg:     "auth response is not valid JSON",
				Headers: resp.Header(),
				Body:    resp.String(),
				Err:     err,
			}
		}
		for _, path := range bodyTokenPaths {
			if v := stringAt(body, path...); v != "" {
				token = v
				break
			}
		}
	}

	if token == "" {
		return "", &AuthError{
			Msg:     "no token in auth response",
			Headers: resp.Header(),
			Body:    resp.String(),
		}
	}

	ts.token = token
	ts.obtainedAt = ts.now()
	return token, nil
}
