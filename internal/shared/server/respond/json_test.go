package respond

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOKMarksNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { OK(c, gin.H{"rows": 3}) })

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"rows":3}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestHTMLServesPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HTML(c, []byte("<h1>ok</h1>")) })

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := resp.Header().Get("Content-Type"); got != htmlContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if resp.Body.String() != "<h1>ok</h1>" {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ask", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/ask", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	want := `{"error":{"code":"validation_error","message":"question is required"}}`
	if strings.TrimSpace(resp.Body.String()) != want {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
