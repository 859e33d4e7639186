package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msb-finance/loancli/internal/client/models"
	"github.com/msb-finance/loancli/internal/common"
)

const defaultTimeout = 30 * time.Second

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL. Bearer
// tokens are resolved from tokens on every call.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// bearer resolves the current token and attaches it. When no token is
// present the call fails with common.ErrAuthRequired before any request
// is issued.
func (c *HTTPClient) bearer(ctx context.Context, req *http.Request) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return common.ErrAuthRequired
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// do executes the request and decodes a 2xx JSON body into out.
// Non-2xx responses and transport failures map to *RequestError.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Body: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any, auth bool) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if err := c.bearer(ctx, req); err != nil {
			return err
		}
	}
	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := c.bearer(ctx, req); err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) Register(ctx context.Context, in *RegisterRequest) (*AuthResponse, error) {
	var out struct {
		AuthResponse
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/auth/register", in, &out, false); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, responseError(out.Message, "Registration failed")
	}
	return &out.AuthResponse, nil
}

func (c *HTTPClient) Login(ctx context.Context, in *LoginRequest) (*AuthResponse, error) {
	var out struct {
		AuthResponse
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/auth/login", in, &out, false); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, responseError(out.Message, "Login failed")
	}
	return &out.AuthResponse, nil
}

func (c *HTTPClient) SubmitLoan(ctx context.Context, in *LoanRequest) (*models.Loan, error) {
	var out struct {
		Loan    *models.Loan `json:"loan"`
		Message string       `json:"message"`
	}
	if err := c.postJSON(ctx, "/loans", in, &out, true); err != nil {
		return nil, err
	}
	if out.Loan == nil {
		return nil, responseError(out.Message, "Application failed")
	}
	return out.Loan, nil
}

func (c *HTTPClient) ListLoans(ctx context.Context) ([]models.Loan, error) {
	var out struct {
		Loans []models.Loan `json:"loans"`
	}
	if err := c.getJSON(ctx, "/loans/me", &out); err != nil {
		return nil, err
	}
	return out.Loans, nil
}

func (c *HTTPClient) UploadDocuments(ctx context.Context, files []Upload) (bool, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Name)
		if err != nil {
			return false, err
		}
		if _, err := part.Write(f.Content); err != nil {
			return false, err
		}
	}
	if err := w.Close(); err != nil {
		return false, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/docs/upload", &buf)
	if err != nil {
		return false, err
	}
	// The content type must come from the writer so the boundary matches.
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := c.bearer(ctx, req); err != nil {
		return false, err
	}

	var out struct {
		Uploaded bool   `json:"uploaded"`
		Message  string `json:"message"`
	}
	if err := c.do(req, &out); err != nil {
		return false, err
	}
	if !out.Uploaded {
		return false, responseError(out.Message, "Upload failed")
	}
	return true, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var out struct {
		Docs []models.Document `json:"docs"`
	}
	if err := c.getJSON(ctx, "/docs/me", &out); err != nil {
		return nil, err
	}
	return out.Docs, nil
}

// responseError covers 2xx responses whose payload still signals a
// failure (missing token/loan/uploaded flag).
func responseError(message, fallback string) *RequestError {
	if message == "" {
		message = fallback
	}
	return &RequestError{Status: http.StatusOK, Body: message}
}
