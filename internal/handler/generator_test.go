package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

func newTestHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService())
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
	}{
		{
			name:       "default length",
			body:       `{}`,
			wantStatus: http.StatusOK,
			wantLength: 16,
		},
		{
			name:       "custom length",
			body:       `{"length": 32}`,
			wantStatus: http.StatusOK,
			wantLength: 32,
		},
		{
			name:       "single category",
			body:       `{"length": 12, "uppercase": false, "digits": false, "symbols": false}`,
			wantStatus: http.StatusOK,
			wantLength: 12,
		},
		{
			name:       "exclude ambiguous",
			body:       `{"length": 24, "exclude_ambiguous": true}`,
			wantStatus: http.StatusOK,
			wantLength: 24,
		},
		{
			name:       "negative length",
			body:       `{"length": -4}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "length over cap",
			body:       `{"length": 500}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no character types",
			body:       `{"lowercase": false, "uppercase": false, "digits": false, "symbols": false}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"length": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			if tt.wantStatus == http.StatusOK {
				var resp model.GenerateResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if len(resp.Password) != tt.wantLength {
					t.Errorf("password length = %d, want %d", len(resp.Password), tt.wantLength)
				}
				if resp.Length != tt.wantLength {
					t.Errorf("reported length = %d, want %d", resp.Length, tt.wantLength)
				}
			} else {
				var resp map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decoding error response: %v", err)
				}
				if resp["error"] == "" {
					t.Error("expected non-empty error message")
				}
			}
		})
	}
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	h := newTestHandler()

	// Padding pushes the body past the 1MB read limit.
	body := `{"length": 16, "pad": "` + strings.Repeat("x", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleCharsets(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/charsets", nil)
	rec := httptest.NewRecorder()

	h.HandleCharsets(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.CharsetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Categories) != 4 {
		t.Fatalf("got %d categories, want 4", len(resp.Categories))
	}
	for _, c := range resp.Categories {
		if c.Name == "" || c.Alphabet == "" {
			t.Errorf("category %+v has empty fields", c)
		}
	}
	if resp.Ambiguous != crypto.AmbiguousChars {
		t.Errorf("ambiguous = %q, want %q", resp.Ambiguous, crypto.AmbiguousChars)
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid length", crypto.ErrInvalidLength, true},
		{"no character types", crypto.ErrNoCharacterTypes, true},
		{"charset exhausted", crypto.ErrCharsetExhausted, true},
		{"length too long", service.ErrLengthTooLong, true},
		{"unrelated", http.ErrBodyNotAllowed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidationError(tt.err); got != tt.want {
				t.Errorf("isValidationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
