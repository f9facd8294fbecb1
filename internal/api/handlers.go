package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdtools/internal/convert"
	"github.com/dgallion1/mdtools/internal/heading"
)

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if !s.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	src, filename, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}

	formatName := r.FormValue("format")
	if formatName == "" {
		formatName = "docx"
	}
	format, err := convert.ParseFormat(formatName)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	template, ok := s.readTemplate(w, r)
	if !ok {
		return
	}

	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	out, err := convert.Convert(src, format, convert.Options{
		Title:    title,
		Template: template,
		Log:      s.log,
	})
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outName := title + "." + string(format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	w.Write(out)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	if !s.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	src, filename, ok := s.readUpload(w, r, "file")
	if !ok {
		return
	}

	action, err := heading.ParseAction(r.FormValue("action"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var style heading.Style
	if action == heading.ActionAddNumbers {
		name := r.FormValue("style")
		if name == "" {
			name = s.cfg.DefaultStyle
		}
		style, err = heading.StyleByName(name)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	out, err := heading.Edit(string(src), action, style)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	io.WriteString(w, out)
}

// parseMultipart caps the request body and parses the multipart form.
// A body over the cap is reported as 413, any other parse failure as
// 400. It writes the error response itself and reports success.
func (s *Server) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("request body exceeds max size (%d bytes)", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// readUpload reads one multipart file field, enforcing the upload
// limit. It writes the error response itself when something is wrong.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, string, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		jsonError(w, field+" is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	data, filename, err := readLimited(file, header, s.cfg.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		} else {
			jsonError(w, "failed to read file", http.StatusInternalServerError)
		}
		return nil, "", false
	}
	return data, filename, true
}

// readTemplate loads the optional per-request DOCX template, falling
// back to the configured default template file.
func (s *Server) readTemplate(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	file, header, err := r.FormFile("template")
	if err == nil {
		defer file.Close()
		data, _, rerr := readLimited(file, header, s.cfg.MaxUploadBytes)
		if rerr != nil {
			jsonError(w, "failed to read template", http.StatusBadRequest)
			return nil, false
		}
		return data, true
	}
	if !errors.Is(err, http.ErrMissingFile) {
		jsonError(w, "invalid template upload: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if s.cfg.TemplatePath != "" {
		data, rerr := os.ReadFile(s.cfg.TemplatePath)
		if rerr != nil {
			// Degrade to defaults; conversion still succeeds.
			s.log.Warn("default template unreadable", "path", s.cfg.TemplatePath, "error", rerr)
			return nil, true
		}
		return data, true
	}
	return nil, true
}

var errTooLarge = errors.New("file too large")

func readLimited(file multipart.File, header *multipart.FileHeader, limit int64) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > limit {
		return nil, "", errTooLarge
	}
	return data, sanitizeFilename(header.Filename), nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
