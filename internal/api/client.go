// Package api is the HTTP client for the PDF service. The service is an
// opaque collaborator: every operation is one request that either yields the
// UUID of a stored document or an error extracted from the response payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBody = 1 << 20

// Client talks to the PDF service REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL. A zero timeout means no
// client-side deadline; cancellation then comes only from the caller context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Error is a non-2xx response from the service. Detail carries the service's
// human-readable message when the payload had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("requisição falhou (HTTP %d)", e.Status)
}

type uuidResponse struct {
	UUID string `json:"uuid"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Upload sends one PDF and returns the UUID the service stored it under.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	return c.postFiles(ctx, "/upload", []filePart{{field: "file", path: path}}, nil)
}

// Merge sends two PDFs to be concatenated (first, then second) and returns
// the UUID of the merged document.
func (c *Client) Merge(ctx context.Context, path1, path2 string) (string, error) {
	parts := []filePart{
		{field: "file1", path: path1},
		{field: "file2", path: path2},
	}
	return c.postFiles(ctx, "/merge", parts, nil)
}

// Extract sends one PDF plus a page range such as "1-5" and returns the UUID
// of the extracted document. The range is validated locally before any
// request is issued.
func (c *Client) Extract(ctx context.Context, path, pageRange string) (string, error) {
	if _, err := ParsePageRange(pageRange); err != nil {
		return "", err
	}
	fields := map[string]string{"range": pageRange}
	return c.postFiles(ctx, "/extract", []filePart{{field: "file", path: path}}, fields)
}

// Download fetches the document with the given UUID and writes it to
// destDir/<uuid>.pdf, returning the written path.
func (c *Client) Download(ctx context.Context, id, destDir string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("UUID inválido: %q", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download/"+id, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	dest := filepath.Join(destDir, id+".pdf")
	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}

type filePart struct {
	field string
	path  string
}

// postFiles builds a multipart request with the given PDF parts and extra
// form fields, posts it, and decodes the {"uuid": ...} response.
func (c *Client) postFiles(ctx context.Context, endpoint string, files []filePart, fields map[string]string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, fp := range files {
		if err := writePDFPart(w, fp); err != nil {
			return "", err
		}
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var out uuidResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding service response: %w", err)
	}
	if out.UUID == "" {
		return "", fmt.Errorf("service response carries no uuid")
	}
	return out.UUID, nil
}

// writePDFPart streams one file into the multipart body with an explicit
// application/pdf content type. The service rejects anything that is not a
// .pdf, so the same rule is enforced here before touching the network.
func writePDFPart(w *multipart.Writer, fp filePart) error {
	if !strings.EqualFold(filepath.Ext(fp.path), ".pdf") {
		return fmt.Errorf("%s: apenas arquivos .pdf são aceitos", filepath.Base(fp.path))
	}

	f, err := os.Open(fp.path)
	if err != nil {
		return fmt.Errorf("não foi possível abrir %s", filepath.Base(fp.path))
	}
	defer f.Close()

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fp.field, filepath.Base(fp.path)))
	header.Set("Content-Type", "application/pdf")

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

// decodeError turns a non-2xx response into an *Error, picking up the
// optional {"detail": ...} payload that the service attaches to failures.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var payload detailResponse
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
