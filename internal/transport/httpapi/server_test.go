package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/index"
	healthuc "github.com/majorsys/mnemo/internal/usecase/health"
	phraseuc "github.com/majorsys/mnemo/internal/usecase/phrase"
	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ix := index.Build([]domain.Word{
		{Text: "big", POS: domain.Adjective},
		{Text: "dog", POS: domain.Noun},
		{Text: "the", POS: domain.Filler},
	})
	srv := NewServer(
		phraseuc.New(ix),
		statsuc.New(ix),
		healthuc.New(ix, nil, nil),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Register(r)
	return r
}

func TestGeneratePhrase(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phrase", strings.NewReader(`{"number":"9717"}`))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Number string `json:"number"`
		Phrase string `json:"phrase"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Phrase != "the big dog" {
		t.Errorf("phrase = %q, want %q", resp.Phrase, "the big dog")
	}
}

func TestGeneratePhrase_InvalidInput(t *testing.T) {
	h := newTestServer(t)

	for _, body := range []string{`{"number":""}`, `{"number":"12a"}`} {
		t.Run(body, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/phrase", strings.NewReader(body))
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp struct {
				Code string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != "invalid_input" {
				t.Errorf("code = %q, want invalid_input", resp.Code)
			}
		})
	}
}

func TestGeneratePhrase_BadBody(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phrase", strings.NewReader("{"))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetStats(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/stats", http.NoBody)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Words   int `json:"words"`
		Dropped int `json:"dropped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Words != 2 {
		t.Errorf("words = %d, want 2", resp.Words)
	}
}

func TestGetHealth(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
