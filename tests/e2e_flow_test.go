package tests

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/papeleta/papel/internal/api"
	"github.com/papeleta/papel/internal/stubserver"
)

// startStack mounts the stub service on an ephemeral port and returns a
// client pointed at it.
func startStack(t *testing.T) *api.Client {
	t.Helper()
	stub := stubserver.NewServer("", t.TempDir())
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 10*time.Second)
}

func writePDF(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestE2E_UploadDownloadRoundTrip(t *testing.T) {
	t.Parallel()

	client := startStack(t)
	ctx := context.Background()
	content := []byte("%PDF-1.4\ncorpo do documento\n%%EOF")
	src := writePDF(t, "doc.pdf", content)

	id, err := client.Upload(ctx, src)
	if err != nil {
		t.Fatalf("Upload error = %v", err)
	}

	destDir := t.TempDir()
	dest, err := client.Download(ctx, id, destDir)
	if err != nil {
		t.Fatalf("Download error = %v", err)
	}
	if want := filepath.Join(destDir, id+".pdf"); dest != want {
		t.Fatalf("dest = %q, want %q", dest, want)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading download: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("downloaded bytes differ from uploaded content")
	}
}

func TestE2E_MergeProducesDownloadableDocument(t *testing.T) {
	t.Parallel()

	client := startStack(t)
	ctx := context.Background()
	a := writePDF(t, "a.pdf", []byte("%PDF-1.4 primeiro"))
	b := writePDF(t, "b.pdf", []byte("%PDF-1.4 segundo"))

	id, err := client.Merge(ctx, a, b)
	if err != nil {
		t.Fatalf("Merge error = %v", err)
	}
	if _, err := client.Download(ctx, id, t.TempDir()); err != nil {
		t.Fatalf("Download of merged document error = %v", err)
	}
}

func TestE2E_ExtractValidRange(t *testing.T) {
	t.Parallel()

	client := startStack(t)
	ctx := context.Background()
	src := writePDF(t, "doc.pdf", []byte("%PDF-1.4 paginas"))

	id, err := client.Extract(ctx, src, "1-3")
	if err != nil {
		t.Fatalf("Extract error = %v", err)
	}
	if _, err := client.Download(ctx, id, t.TempDir()); err != nil {
		t.Fatalf("Download of extracted document error = %v", err)
	}
}

func TestE2E_DownloadUnknownIDCarriesDetail(t *testing.T) {
	t.Parallel()

	client := startStack(t)
	_, err := client.Download(context.Background(), "99999999-9999-9999-9999-999999999999", t.TempDir())

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T %v, want *api.Error", err, err)
	}
	if apiErr.Status != 404 {
		t.Fatalf("status = %d, want 404", apiErr.Status)
	}
	if apiErr.Detail != "Arquivo não encontrado" {
		t.Fatalf("detail = %q, want 'Arquivo não encontrado'", apiErr.Detail)
	}
}
