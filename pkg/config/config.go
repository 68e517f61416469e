package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Contract ContractConfig `mapstructure:"contract"`
	Safe     SafeConfig     `mapstructure:"safe"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type AppConfig struct {
	Env          string `mapstructure:"env"`
	HttpPort     string `mapstructure:"http_port"`
	GrpcPort     string `mapstructure:"grpc_port"`
	RateLimitRPM int    `mapstructure:"rate_limit_rpm"` // 0 表示不限流
}

type ChainConfig struct {
	RpcUrl  string `mapstructure:"rpc_url"`
	ChainID int64  `mapstructure:"chain_id"`
}

type ContractConfig struct {
	RewardsAddress string `mapstructure:"rewards_address"` // MasterChef 合约地址，零地址表示等待操作员输入
	RewardToken    string `mapstructure:"reward_token"`    // 奖励代币 (ERC-20)，amount_source=balance 时必填
	AmountSource   string `mapstructure:"amount_source"`   // "manual" or "balance"
	Decimals       int    `mapstructure:"decimals"`
	BalanceWatch   string `mapstructure:"balance_watch"` // cron 表达式，例如 "@every 5m"，为空不巡检
}

type SafeConfig struct {
	ApiUrl      string `mapstructure:"api_url"`
	SafeAddress string `mapstructure:"safe_address"`
}

type CacheConfig struct {
	Driver        string `mapstructure:"driver"` // "memory" or "redis"
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	TTLSeconds    int    `mapstructure:"ttl_seconds"`
}

const ZeroAddress = "0x0000000000000000000000000000000000000000"

var Global Config

// Init loads config.yaml from the working directory (or ./config) into Global.
func Init() {
	if err := Load(""); err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load reads the configuration into Global. An empty path searches the default locations.
func Load(path string) error {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 环境变量设置，例如 SAFE_API_URL 覆盖 safe.api_url
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	Global = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.grpc_port", "50051")
	v.SetDefault("app.rate_limit_rpm", 120)

	v.SetDefault("chain.rpc_url", "https://polygon-rpc.com")
	v.SetDefault("chain.chain_id", 137)

	v.SetDefault("contract.rewards_address", ZeroAddress)
	v.SetDefault("contract.reward_token", "")
	v.SetDefault("contract.amount_source", "manual")
	v.SetDefault("contract.decimals", 18)
	v.SetDefault("contract.balance_watch", "")

	v.SetDefault("safe.api_url", "http://localhost:3000/api/v1")
	v.SetDefault("safe.safe_address", "")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl_seconds", 5)
}
