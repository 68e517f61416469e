package server

import (
	"masterchef-rewards/internal/handler"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/monitor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services 路由依赖的业务对象
type Services struct {
	Form    *service.Form
	Records *service.RecordService
}

type RouterOptions struct {
	RateLimitRPM int
}

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(svc Services, opts RouterOptions) *gin.Engine {
	// 0. 初始化监控指标
	monitor.Init()

	// 1. 创建 Engine (Recovery + 结构化访问日志)
	r := gin.New()
	r.Use(gin.Recovery())

	// 2. 注册通用中间件
	r.Use(RequestID())
	r.Use(AccessLog())
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. 注册 API 路由组
	api := r.Group("/api/v1")
	api.Use(RateLimit(opts.RateLimitRPM))
	{
		formH := handler.NewFormHandler(svc.Form)
		api.GET("/form", formH.GetForm)
		api.PUT("/form/target", formH.SetTarget)

		actionH := handler.NewActionHandler(svc.Form)
		actions := api.Group("/actions")
		actions.POST("/trust-amm-factory", actionH.TrustAMMFactory)
		actions.POST("/untrust-amm-factory", actionH.UntrustAMMFactory)
		actions.POST("/withdraw-rewards", actionH.WithdrawRewards)
		actions.POST("/add-rewards", actionH.AddRewards)

		txH := handler.NewTransactionHandler(svc.Records)
		api.GET("/transactions/:safeTxHash", txH.GetTransaction)

		api.POST("/encode", handler.Encode)
	}

	return r
}
