package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/menu/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/menu/{id}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menu/abc", nil))
	after := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/menu/{id}", "418"))

	assert.Equal(t, before+1, after)
}

func TestObserveStoreOutcome(t *testing.T) {
	err := errors.New("boom")
	ObserveStore("test", "find", time.Now(), &err)
	ObserveStore("test", "find", time.Now(), nil)

	assert.Equal(t, 2, testutil.CollectAndCount(StoreDuration, "bistro_store_operation_duration_seconds"))
}

func TestHandlerServesRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bistro_http_requests_in_flight")
}
