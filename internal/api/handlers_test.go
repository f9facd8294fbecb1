package api

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgallion1/mdtools/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Port:           "0",
		MaxUploadBytes: 1 << 20,
		DefaultStyle:   "technical",
	}
	return NewServer(log, cfg)
}

// multipartBody builds a multipart request body with one file field and
// extra form values.
func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleEdit_AddNumbers(t *testing.T) {
	srv := testServer(t)
	body, ctype := multipartBody(t, "doc.md", "# A\n## B\n## C\n# D\n", map[string]string{
		"action": "add_numbers",
		"style":  "technical",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	want := "# 1 A\n## 1.1 B\n## 1.2 C\n# 2 D\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestHandleEdit_AddNumbersUsesDefaultStyle(t *testing.T) {
	srv := testServer(t)
	body, ctype := multipartBody(t, "doc.md", "# A\n", map[string]string{
		"action": "add_numbers",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "# 1 A\n" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleEdit_UnknownAction(t *testing.T) {
	srv := testServer(t)
	body, ctype := multipartBody(t, "doc.md", "# A\n", map[string]string{
		"action": "renumber",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown action") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleConvert_HTML(t *testing.T) {
	srv := testServer(t)
	body, ctype := multipartBody(t, "notes.md", "# Hello\n\nworld\n", map[string]string{
		"format": "html",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "notes.html") {
		t.Errorf("content disposition = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Hello</h1>") {
		t.Errorf("body missing converted heading:\n%s", rec.Body.String())
	}
}

func TestHandleConvert_UnsupportedFormat(t *testing.T) {
	srv := testServer(t)
	body, ctype := multipartBody(t, "notes.md", "# Hello\n", map[string]string{
		"format": "pdf",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported output format") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandleConvert_MissingFile(t *testing.T) {
	srv := testServer(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("format", "html")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/convert", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleEdit_BodyOverCap(t *testing.T) {
	srv := testServer(t)
	// One upload well past MaxUploadBytes plus the form overhead
	// allowance, so the body cap trips during multipart parsing.
	huge := strings.Repeat("x", 3<<20)
	body, ctype := multipartBody(t, "doc.md", huge, map[string]string{
		"action": "upgrade",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "exceeds max size") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAuthMiddleware(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{MaxUploadBytes: 1 << 20, DefaultStyle: "technical", APIKey: "secret"}
	srv := NewServer(log, cfg)

	body, ctype := multipartBody(t, "doc.md", "# A\n", map[string]string{"action": "upgrade"})
	req := httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status without key = %d, want 401", rec.Code)
	}

	body, ctype = multipartBody(t, "doc.md", "## A\n", map[string]string{"action": "upgrade"})
	req = httptest.NewRequest(http.MethodPost, "/api/edit", body)
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status with key = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "# A\n" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "# A\n")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"notes.md", "notes.md"},
		{"../../etc/passwd", "passwd"},
		{"", "unnamed"},
		{".", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
