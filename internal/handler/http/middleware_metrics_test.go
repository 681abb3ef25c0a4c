package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testUser)
	m.expectToken(testUser)
	m.wills.EXPECT().GetWill(gomock.Any(), "will-1", "user-1").Return(models.Will{ID: "will-1"}, nil)
	m.wills.EXPECT().GetWill(gomock.Any(), "will-2", "user-1").Return(models.Will{ID: "will-2"}, nil)

	serve(h, withBearer(httptest.NewRequest(http.MethodGet, "/api/wills/will-1", nil)))
	serve(h, withBearer(httptest.NewRequest(http.MethodGet, "/api/wills/will-2", nil)))

	got := testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("/api/wills/{id}", http.MethodGet, "200"))
	assert.Equal(t, float64(2), got)
	assert.Equal(t, float64(0), testutil.ToFloat64(h.metrics.ActiveRequests))
}

func TestWithMetrics_UnmatchedRoute(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	serve(h, httptest.NewRequest(http.MethodGet, "/wp-admin", nil))

	got := testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404"))
	assert.Equal(t, float64(1), got)
}
