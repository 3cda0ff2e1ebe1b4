package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amrit073/NEPGA/entity"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/passport/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/api/passport/a", "/api/passport/b", "/nowhere", "/metrics"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/passport/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	// /metrics scrapes are not counted
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}

func TestApplicationObserver(t *testing.T) {
	m := New(prometheus.NewRegistry())

	app := &entity.Application{ApplicationID: "a", Status: entity.StatusPending}
	m.ApplicationSubmitted(app)
	m.ApplicationSubmitted(app)

	app.Status = entity.StatusApproved
	m.ApplicationStatusChanged(app, entity.StatusPending)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusUpdates.WithLabelValues("Approved")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StatusUpdates.WithLabelValues("Rejected")))
}
