package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abelikov/fingate/internal/common"
	"github.com/google/uuid"
)

const (
	loginPath   = "/auth/login/"
	mfaPath     = "/auth/multifactor/"
	graphqlPath = "/graphql"

	// mfaRequiredCode is the error_code the auth endpoint returns when the
	// account has multi-factor enabled and the password alone is not enough.
	mfaRequiredCode = "MFA_REQUIRED"
)

// HTTPClient is the concrete Client over plain HTTP POST endpoints.
//
// A device UUID is minted at construction and sent on every request; restore
// the UUID from a saved session (SetDeviceUUID) before use so the server
// keeps recognizing the client as the same trusted device. SetDeviceUUID is
// not safe to call concurrently with in-flight requests.
type HTTPClient struct {
	baseURL    string
	hc         *http.Client
	deviceUUID string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		hc:         &http.Client{Timeout: timeout},
		deviceUUID: uuid.NewString(),
	}
}

func (c *HTTPClient) DeviceUUID() string {
	return c.deviceUUID
}

func (c *HTTPClient) SetDeviceUUID(id string) {
	if id != "" {
		c.deviceUUID = id
	}
}

type loginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TrustedDevice bool   `json:"trusted_device"`
	SupportsMFA   bool   `json:"supports_mfa"`
	Code          string `json:"code,omitempty"`
}

type loginResponse struct {
	Token           string     `json:"token"`
	TokenExpiration *time.Time `json:"token_expiration"`
	ErrorCode       string     `json:"error_code"`
	Detail          string     `json:"detail"`
}

// Login submits credentials requesting a trusted-device (long-lived) session.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := loginRequest{Email: email, Password: password, TrustedDevice: true, SupportsMFA: true}
	return c.doAuth(ctx, loginPath, body, ErrInvalidCredentials)
}

// VerifyMFA completes a pending challenge with a one-time code. The server
// requires the original credentials to be resubmitted alongside the code.
func (c *HTTPClient) VerifyMFA(ctx context.Context, email, password, code string) (*LoginResult, error) {
	body := loginRequest{Email: email, Password: password, TrustedDevice: true, SupportsMFA: true, Code: code}
	return c.doAuth(ctx, mfaPath, body, ErrMFAIncorrect)
}

// doAuth posts to an auth endpoint and decodes the shared response shape.
// rejectErr is the sentinel for a 4xx rejection: bad credentials on login,
// bad code on MFA verification.
func (c *HTTPClient) doAuth(ctx context.Context, path string, body loginRequest, rejectErr error) (*LoginResult, error) {
	resp, err := c.post(ctx, path, "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var lr loginResponse
	// Tolerate an undecodable body here: status-code handling below
	// produces a better error than a bare JSON failure would.
	_ = json.Unmarshal(data, &lr)

	switch {
	case resp.StatusCode == http.StatusOK:
		if lr.ErrorCode == mfaRequiredCode {
			return &LoginResult{MFARequired: true}, nil
		}
		if lr.Token == "" {
			return nil, fmt.Errorf("%w: auth response carried no token", ErrServer)
		}
		return &LoginResult{Token: lr.Token, TokenExpiration: lr.TokenExpiration}, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited

	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrServer, resp.StatusCode, snippet(data))

	default: // 4xx
		if lr.ErrorCode == mfaRequiredCode {
			return &LoginResult{MFARequired: true}, nil
		}
		if lr.Detail != "" {
			return nil, fmt.Errorf("%w: %s", rejectErr, lr.Detail)
		}
		return nil, rejectErr
	}
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// GraphQL executes op with the given session token and returns the data
// payload. Failures are mapped to the package's sentinel errors; a response
// with a top-level errors array is a failure regardless of HTTP status.
func (c *HTTPClient) GraphQL(ctx context.Context, token string, op Operation) (json.RawMessage, error) {
	body := graphqlRequest{OperationName: op.Name, Query: op.Query, Variables: op.Variables}

	resp, err := c.post(ctx, graphqlPath, token, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized

	case resp.StatusCode == http.StatusForbidden:
		// A JSON 403 is the API revoking the token. An HTML 403 is the WAF
		// in front of it; treating that as an auth failure would wrongly
		// destroy a still-valid session.
		if isHTML(resp) {
			return nil, fmt.Errorf("%w: request blocked (HTTP 403): %s", ErrServer, snippet(data))
		}
		return nil, ErrUnauthorized

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited

	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrServer, resp.StatusCode, snippet(data))

	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected HTTP %d: %s", ErrServer, resp.StatusCode, snippet(data))
	}

	var gr graphqlResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return nil, fmt.Errorf("%w: malformed GraphQL response: %v", ErrServer, err)
	}

	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrServer, op.Name, strings.Join(msgs, "; "))
	}

	return gr.Data, nil
}

func (c *HTTPClient) post(ctx context.Context, path, token string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.DeviceUUIDHeaderName, c.deviceUUID)
	req.Header.Set(common.ClientPlatformHeaderName, common.ClientPlatformValue)
	if token != "" {
		req.Header.Set(common.AuthHeaderName, "Token "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func isHTML(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "text/html")
}

// snippet trims a response body for inclusion in error messages.
func snippet(data []byte) string {
	const max = 200
	s := strings.TrimSpace(string(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
