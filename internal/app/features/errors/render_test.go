package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogServerError_HTMX(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest("GET", "/dashboard/panes/sales", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	el.LogServerError(rec, req, "failed to encode chart specs", errors.New("boom"), "No se pudieron preparar los gráficos.")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No se pudieron preparar") {
		t.Errorf("body = %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("internal error detail leaked to the client")
	}

	entries := logs.FilterMessage("failed to encode chart specs").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != "/dashboard/panes/sales" {
		t.Errorf("logged path = %v", got)
	}
}
