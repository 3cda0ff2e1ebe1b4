package routes

import (
	"net/http"

	"github.com/amrit073/NEPGA/controllers"
	"github.com/amrit073/NEPGA/metrics"
	"github.com/amrit073/NEPGA/middlewares"
	"github.com/amrit073/NEPGA/services"
	"github.com/amrit073/NEPGA/utils"
	"github.com/amrit073/NEPGA/ws"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps is everything the route table needs. All fields are required.
type Deps struct {
	Log            logrus.FieldLogger
	Authority      *utils.TokenAuthority
	Applications   *services.ApplicationService
	Pages          *utils.PageResolver
	Hub            *ws.StatusHub
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	SubmitLimiter  *middlewares.IPRateLimiter
	AllowedOrigins []string
	StaticDir      string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(
		middlewares.RequestLogger(d.Log),
		d.Metrics.Middleware(),
		middlewares.CORSMiddleware(d.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	passportCtrl := controllers.NewPassportController(d.Applications)
	adminCtrl := controllers.NewAdminController(services.NewAuthService(d.Authority), d.Applications)
	pageCtrl := controllers.NewPageController(d.Pages)

	api := r.Group("/api")

	// Public
	api.POST("/passport", middlewares.RateLimit(d.SubmitLimiter), passportCtrl.Submit)
	api.GET("/passport/:id", passportCtrl.Status)
	api.POST("/admin/login", adminCtrl.Login)

	// Live feed; token may arrive as a query parameter
	api.GET("/admin/ws", middlewares.WSAuthMiddleware(d.Authority), d.Hub.HandleWebSocket)

	// Admin (token required)
	admin := api.Group("/admin", middlewares.AuthMiddleware(d.Authority))
	{
		admin.GET("/applications", adminCtrl.List)
		admin.GET("/applications/:id", adminCtrl.Detail)
		admin.PUT("/applications/:id/status", adminCtrl.UpdateStatus)
		admin.GET("/summary", adminCtrl.Summary)
	}

	r.NoRoute(pageCtrl.Fallback)
}
