package main

import (
	"context"
	"time"

	"masterchef-rewards/internal/chain"
	"masterchef-rewards/internal/safe"
	"masterchef-rewards/internal/server"
	"masterchef-rewards/internal/service"
	"masterchef-rewards/pkg/cache"
	"masterchef-rewards/pkg/config"
	"masterchef-rewards/pkg/lock"
	"masterchef-rewards/pkg/logger"
	"masterchef-rewards/pkg/validator"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "masterchef-rewards/docs/swagger"
)

// @title MasterChef Rewards API
// @version 1.0
// @description Safe 多签提案：MasterChef 奖励合约管理
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()

	// 初始化 Validator
	validator.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	ctx := context.Background()

	// 2. 链上只读客户端
	reader, client, err := chain.Dial(ctx, config.Global.Chain.RpcUrl)
	if err != nil {
		logger.Fatal("RPC 连接失败", zap.String("rpc", config.Global.Chain.RpcUrl), zap.Error(err))
	}
	defer client.Close()

	if id, err := client.ChainID(ctx); err != nil {
		logger.Warn("获取 ChainID 失败", zap.Error(err))
	} else if config.Global.Chain.ChainID != 0 && id.Int64() != config.Global.Chain.ChainID {
		logger.Warn("ChainID 与配置不一致",
			zap.Int64("expected", config.Global.Chain.ChainID), zap.String("actual", id.String()))
	}

	// 3. 宿主钱包 (Safe)
	safeClient := safe.NewHTTPClient(config.Global.Safe.ApiUrl, config.Global.Safe.SafeAddress)

	// 4. 业务对象
	formCfg, err := service.FormConfigFrom(config.Global.Contract)
	if err != nil {
		logger.Fatal("合约配置错误", zap.Error(err))
	}
	proposer := service.NewProposer(safeClient, reader)
	form := service.NewForm(proposer, formCfg, config.Global.Contract.RewardsAddress)
	logger.Info("表单初始化",
		zap.String("mode", string(form.Mode())),
		zap.String("amount_source", string(formCfg.AmountSource)))

	// 5. 交易记录缓存 (Memory 或 L1 Memory + L2 Redis)
	ttl := time.Duration(config.Global.Cache.TTLSeconds) * time.Second
	recordCache, rdb := newCache(ctx)
	if rdb != nil {
		defer rdb.Close()
	}
	records := service.NewRecordService(proposer, recordCache, ttl)

	// 5.1 奖励余额巡检 (可选)，多实例时用 Redis 锁保证只有一个实例执行
	if spec := config.Global.Contract.BalanceWatch; spec != "" {
		var locker lock.DistributedLock
		if rdb != nil {
			locker = lock.NewRedisLock(rdb)
		}
		watcher := service.NewBalanceWatcher(form, locker)
		if err := watcher.Start(spec); err != nil {
			logger.Fatal("余额巡检启动失败", zap.Error(err))
		}
		defer watcher.Stop()
	}

	// 6. HTTP Router
	r := server.NewHTTPRouter(server.Services{Form: form, Records: records},
		server.RouterOptions{RateLimitRPM: config.Global.App.RateLimitRPM})

	// 7. gRPC Server
	grpcServer, health := server.NewGRPCServer()

	// 8. 启动应用
	app, err := server.New(server.Config{
		HttpPort: config.Global.App.HttpPort,
		GrpcPort: config.Global.App.GrpcPort,
	}, r, grpcServer, health)
	if err != nil {
		logger.Fatal("应用启动失败", zap.Error(err))
	}

	// 运行 (阻塞)
	app.Run()
	logger.Info("系统已退出")
}

// newCache L1: Memory, L2: Redis (cache.driver=redis 时)
func newCache(ctx context.Context) (cache.Cache, *redis.Client) {
	local := cache.NewMemoryCache(time.Minute, 5*time.Minute)
	if config.Global.Cache.Driver != "redis" {
		return local, nil
	}

	rdb, err := cache.ConnectRedis(ctx, config.Global.Cache.RedisAddr, config.Global.Cache.RedisPassword, config.Global.Cache.RedisDB)
	if err != nil {
		logger.Fatal("Redis 连接失败", zap.Error(err))
	}
	return cache.NewMultiLevelCache(local, cache.NewRedisCache(rdb, "masterchef:safe_tx:")), rdb
}
