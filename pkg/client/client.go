// Package client talks to a form-template service over HTTP. Responses are
// unwrapped from their {"data": ...} envelope and normalized for editing;
// documents are validated and normalized for persistence before any write
// leaves the process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

const templatesPath = "/form-templates"

// ErrInvalid marks a write rejected locally because the document failed
// validation. Use errors.As to recover the *ValidationError carrying the
// per-key messages.
var ErrInvalid = errors.New("client: document failed validation")

// ValidationError carries the keyed validation messages that blocked a write.
type ValidationError struct {
	Errors validate.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("client: document failed validation (%d errors)", len(e.Errors))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *StatusError) Error() string {
	return "client: unexpected status " + e.Status
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request when the caller's context carries no
// deadline of its own.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithKeyGenerator replaces the generator used to backfill blank field keys
// during pre-write validation.
func WithKeyGenerator(keys template.KeyGenerator) Option {
	return func(c *Client) {
		if keys != nil {
			c.keys = keys
		}
	}
}

// Client is a form-template service client. The zero value is not usable;
// construct with New.
type Client struct {
	base    string
	http    *http.Client
	keys    template.KeyGenerator
	timeout time.Duration
}

// New returns a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("client: base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		keys:    template.NewKeyGenerator(),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches every template. Each document is normalized for editing.
func (c *Client) List(ctx context.Context) ([]*template.Template, error) {
	body, err := c.do(ctx, http.MethodGet, templatesPath, nil)
	if err != nil {
		return nil, err
	}
	var docs []*template.Template
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("client: decode template list: %w", err)
	}
	for i, doc := range docs {
		docs[i] = normalize.ForLoad(doc)
	}
	return docs, nil
}

// Get fetches one template by id, normalized for editing.
func (c *Client) Get(ctx context.Context, id string) (*template.Template, error) {
	if id == "" {
		return nil, errors.New("client: template id is required")
	}
	body, err := c.do(ctx, http.MethodGet, templatesPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeTemplate(body)
}

// Create validates and persists a new template, returning the stored
// document as the service sees it. A document that fails validation is
// rejected without touching the network.
func (c *Client) Create(ctx context.Context, doc *template.Template) (*template.Template, error) {
	payload, err := c.prepare(doc)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPost, templatesPath, payload)
	if err != nil {
		return nil, err
	}
	return decodeTemplate(body)
}

// Update validates and persists changes to an existing template. The
// document must carry the id it was loaded with.
func (c *Client) Update(ctx context.Context, doc *template.Template) (*template.Template, error) {
	if doc == nil || doc.ID == "" {
		return nil, errors.New("client: document id is required for update")
	}
	payload, err := c.prepare(doc)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodPut, templatesPath+"/"+url.PathEscape(doc.ID), payload)
	if err != nil {
		return nil, err
	}
	return decodeTemplate(body)
}

// Delete removes a template by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("client: template id is required")
	}
	_, err := c.do(ctx, http.MethodDelete, templatesPath+"/"+url.PathEscape(id), nil)
	return err
}

// prepare runs pre-write validation and save normalization, returning the
// encoded request body.
func (c *Client) prepare(doc *template.Template) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("client: document is required")
	}
	result := validate.Check(doc, c.keys)
	if len(result.Errors) > 0 {
		return nil, &ValidationError{Errors: result.Errors}
	}
	payload, err := json.Marshal(normalize.ForSave(result.Doc))
	if err != nil {
		return nil, fmt.Errorf("client: encode document: %w", err)
	}
	return payload, nil
}

// do issues one request and returns the unwrapped data payload.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (json.RawMessage, error) {
	reqCtx := ctx
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: body}
	}
	if len(body) == 0 {
		return nil, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("client: decode response envelope: %w", err)
	}
	return envelope.Data, nil
}

func decodeTemplate(body json.RawMessage) (*template.Template, error) {
	var doc template.Template
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("client: decode template: %w", err)
	}
	return normalize.ForLoad(&doc), nil
}
