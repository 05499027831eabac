package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"tableflip.dev/shelf/pkg/collection"
)

// HTTPClient talks to the shelf server over its REST API.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPClient returns a client for the given base URL using the default
// http.Client when none is provided.
func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

var _ Client = (*HTTPClient)(nil)

type listEnvelope struct {
	Success     bool                    `json:"success"`
	Error       string                  `json:"error,omitempty"`
	Collections []collection.Collection `json:"collections"`
}

type saveEnvelope struct {
	Success    bool                  `json:"success"`
	Error      string                `json:"error,omitempty"`
	Collection collection.Collection `json:"collection"`
}

type statusEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type uploadEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ImagePath string `json:"imagePath"`
}

type mosaicEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Processed int    `json:"processed"`
}

type printerEnvelope struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Status  PrinterStatus `json:"status"`
}

type spoolsEnvelope struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Spools  []Spool `json:"spools"`
}

type thingEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Thing   Thing  `json:"thing"`
}

// ListCollections fetches the full collection snapshot.
func (h *HTTPClient) ListCollections(ctx context.Context) ([]collection.Collection, error) {
	var env listEnvelope
	if err := h.do(ctx, http.MethodGet, "/api/collections", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Error{Op: "list collections", Message: env.Error}
	}
	return env.Collections, nil
}

// SaveCollection upserts a full record and returns the authoritative copy.
func (h *HTTPClient) SaveCollection(ctx context.Context, c collection.Collection) (collection.Collection, error) {
	var env saveEnvelope
	if err := h.do(ctx, http.MethodPost, "/api/collections", c, &env); err != nil {
		return collection.Collection{}, err
	}
	if !env.Success {
		return collection.Collection{}, &Error{Op: "save collection", Message: env.Error}
	}
	return env.Collection, nil
}

// DeleteCollection removes the record with the given id.
func (h *HTTPClient) DeleteCollection(ctx context.Context, id string) error {
	var env statusEnvelope
	path := "/api/collections/" + url.PathEscape(id)
	if err := h.do(ctx, http.MethodDelete, path, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return &Error{Op: "delete collection", Message: env.Error}
	}
	return nil
}

// UploadImage sends one file as multipart form data.
func (h *HTTPClient) UploadImage(ctx context.Context, collectionID, filename string, data []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("api: build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("api: build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("api: build upload: %w", err)
	}

	path := "/api/collections/" + url.PathEscape(collectionID) + "/images"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+path, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var env uploadEnvelope
	if err := h.send(req, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", &Error{Op: "upload image", Message: env.Error}
	}
	return env.ImagePath, nil
}

// DeleteImage removes one stored image scoped to the collection.
func (h *HTTPClient) DeleteImage(ctx context.Context, collectionID, filename string) error {
	var env statusEnvelope
	path := "/api/collections/" + url.PathEscape(collectionID) + "/images/" + url.PathEscape(filename)
	if err := h.do(ctx, http.MethodDelete, path, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return &Error{Op: "delete image", Message: env.Error}
	}
	return nil
}

// GenerateMosaic requests server-side mosaic covers.
func (h *HTTPClient) GenerateMosaic(ctx context.Context, ids []string, force bool) (int, error) {
	payload := map[string]any{"ids": ids, "force": force}
	var env mosaicEnvelope
	if err := h.do(ctx, http.MethodPost, "/api/collections/mosaic", payload, &env); err != nil {
		return 0, err
	}
	if !env.Success {
		return env.Processed, &Error{Op: "generate mosaic", Message: env.Error}
	}
	return env.Processed, nil
}

// PrinterStatus polls the connected printer once.
func (h *HTTPClient) PrinterStatus(ctx context.Context) (PrinterStatus, error) {
	var env printerEnvelope
	if err := h.do(ctx, http.MethodGet, "/api/printer/status", nil, &env); err != nil {
		return PrinterStatus{}, err
	}
	if !env.Success {
		return PrinterStatus{}, &Error{Op: "printer status", Message: env.Error}
	}
	return env.Status, nil
}

// ListSpools fetches the Spoolman inventory through the boundary.
func (h *HTTPClient) ListSpools(ctx context.Context) ([]Spool, error) {
	var env spoolsEnvelope
	if err := h.do(ctx, http.MethodGet, "/api/spoolman/spools", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Error{Op: "list spools", Message: env.Error}
	}
	return env.Spools, nil
}

// FetchThing retrieves Thingiverse metadata for the given thing id.
func (h *HTTPClient) FetchThing(ctx context.Context, thingID string) (Thing, error) {
	var env thingEnvelope
	path := "/api/thingiverse/things/" + url.PathEscape(thingID)
	if err := h.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return Thing{}, err
	}
	if !env.Success {
		return Thing{}, &Error{Op: "fetch thing", Message: env.Error}
	}
	return env.Thing, nil
}

func (h *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, h.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return h.send(req, out)
}

func (h *HTTPClient) send(req *http.Request, out any) error {
	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Op:      fmt.Sprintf("%s %s", req.Method, req.URL.Path),
			Message: resp.Status,
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
