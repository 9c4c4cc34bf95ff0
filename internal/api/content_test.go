package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

func TestClient_UploadMultipart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("lecture notes"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	var gotTitle, gotFilename, gotBody string
	c, _ := newTestClient(t, func(r chi.Router) {
		r.Post("/content/upload", func(w http.ResponseWriter, req *http.Request) {
			if err := req.ParseMultipartForm(10 << 20); err != nil {
				writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
				return
			}
			gotTitle = req.FormValue("title")

			file, header, err := req.FormFile("file")
			if err != nil {
				writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file")
				return
			}
			defer file.Close()
			gotFilename = header.Filename
			buf := make([]byte, header.Size)
			file.Read(buf)
			gotBody = string(buf)

			writeJSON(w, http.StatusAccepted, models.UploadResponse{
				ContentID: uuid.New(), JobID: uuid.New(), Title: gotTitle,
			})
		})
	})

	out, cols, err := c.Upload(context.Background(), path, "Week 3 Lecture")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if gotTitle != "Week 3 Lecture" {
		t.Errorf("expected title field, got %q", gotTitle)
	}
	if gotFilename != "notes.txt" {
		t.Errorf("expected filename notes.txt, got %q", gotFilename)
	}
	if gotBody != "lecture notes" {
		t.Errorf("file body mismatch: %q", gotBody)
	}
	if out.Title != "Week 3 Lecture" {
		t.Errorf("unexpected response: %+v", out)
	}
	if len(cols) != 1 || cols[0] != flow.Documents {
		t.Errorf("expected documents invalidation, got %v", cols)
	}
}

func TestClient_UploadMissingFile(t *testing.T) {
	c, _ := newTestClient(t, func(r chi.Router) {})
	_, _, err := c.Upload(context.Background(), "/does/not/exist.pdf", "x")
	if err == nil {
		t.Fatal("expected error for missing local file")
	}
}

func TestClient_ListContentEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(r chi.Router) {
		r.Get("/content", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]interface{}{"content": []models.Content{}})
		})
	})

	items, err := c.ListContent(context.Background())
	if err != nil {
		t.Fatalf("ListContent failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
}

func TestClient_ValidateYouTube(t *testing.T) {
	c, _ := newTestClient(t, func(r chi.Router) {
		r.Post("/content/validate-youtube", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, models.ValidateYouTubeResponse{
				ContentID: uuid.New(),
				VideoID:   "dQw4w9WgXcQ",
				Valid:     true,
			})
		})
	})

	out, cols, err := c.ValidateYouTube(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ValidateYouTube failed: %v", err)
	}
	if !out.Valid || out.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("unexpected response: %+v", out)
	}
	if len(cols) != 1 || cols[0] != flow.Documents {
		t.Errorf("expected documents invalidation, got %v", cols)
	}
}
