package upload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInspectFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "lecture 3.txt")
	if err := os.WriteFile(txt, []byte("notes"), 0o600); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	exe := filepath.Join(dir, "tool.exe")
	if err := os.WriteFile(exe, []byte("MZ"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		title   string
	}{
		{"text file", txt, false, "lecture 3"},
		{"missing file", filepath.Join(dir, "nope.pdf"), true, ""},
		{"empty file", empty, true, ""},
		{"unsupported extension", exe, true, ""},
		{"directory", dir, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := InspectFile(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Title != tc.title {
				t.Errorf("expected title %q, got %q", tc.title, info.Title)
			}
			if info.SizeBytes == 0 {
				t.Error("expected non-zero size")
			}
		})
	}
}

func TestInspectFile_RejectsFakePDF(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "fake.pdf")
	if err := os.WriteFile(fake, []byte("this is not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := InspectFile(fake); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"with whitespace", "  https://youtu.be/dQw4w9WgXcQ  ", "dQw4w9WgXcQ", false},
		{"not youtube", "https://example.com/video", "", true},
		{"garbage", "not a url", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractYouTubeID(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got id %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
