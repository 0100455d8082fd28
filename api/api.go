package api

import (
	"findash/internal/app"
	"findash/internal/domain"
	"findash/internal/logger"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Refresher app.Refresher
	Store     *app.DashboardStore
	Period    domain.Period
	Logger    *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to findash"})
	})
	router.POST("/refresh", m.refresh)
	router.GET("/dashboard", m.dashboard)
	router.GET("/dashboard/tables", m.dashboardTables)
	router.GET("/dashboard/timeseries.csv", m.timeSeriesCsv)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed", "route", c.Request.URL.Path, "code", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.New()
	}
	log = log.With("method", ctx.Request.Method, "route", ctx.Request.URL.Path)
	ctx.Request = ctx.Request.WithContext(logger.NewContext(ctx.Request.Context(), log))

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request complete",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
