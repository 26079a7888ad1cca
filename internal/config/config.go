package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DuckMart/marketplace-engine/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env        string
	Network    string
	Index      string
	Debug      bool
	LogPath    string
	SentryDsn  string
	HealthPort string
	ApiPort    string

	Marketplace   MarketplaceConfig
	AssetRpc      AssetRpcConfig
	ElasticSearch ElasticSearchConfig
	Aws           AwsConfig
}

type MarketplaceConfig struct {
	// Address is the identity the marketplace expects asset approvals to name.
	Address          string
	RoyaltiesEnabled bool
}

type AssetRpcConfig struct {
	Url      string
	Debug    bool
	Timeout  int
	Retries  int
	CacheTtl int
}

type AwsConfig struct {
	AccessKey string
	SecretKey string
	Token     string
	Region    string
	QueueUrl  string
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Aws              bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
}

func Init(app string) {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Unable to init config from .env")
	}

	initLogger(app)
}

func initLogger(app string) {
	c := Get()
	log.NewLogger(fmt.Sprintf("%s/%s.log", c.LogPath, app), c.Debug, c.SentryDsn)
	zap.L().With(zap.String("app", app), zap.String("env", c.Env)).Info("Config initialised")
}

func Get() *Config {
	return &Config{
		Env:        getString("ENV", ""),
		Network:    getString("NETWORK", "mainnet"),
		Index:      getString("INDEX_NAME", "marketplace"),
		Debug:      getBool("DEBUG", false),
		LogPath:    getString("LOG_PATH", "./var/logs"),
		SentryDsn:  getString("SENTRY_DSN", ""),
		HealthPort: getString("HEALTH_PORT", "8081"),
		ApiPort:    getString("API_PORT", "8080"),
		Marketplace: MarketplaceConfig{
			Address:          getString("MARKETPLACE_ADDRESS", ""),
			RoyaltiesEnabled: getBool("MARKETPLACE_ROYALTIES", true),
		},
		AssetRpc: AssetRpcConfig{
			Url:      getString("ASSET_RPC_URL", ""),
			Timeout:  getInt("ASSET_RPC_TIMEOUT", 30),
			Retries:  getInt("ASSET_RPC_RETRIES", 3),
			Debug:    getBool("ASSET_RPC_DEBUG", false),
			CacheTtl: getInt("ASSET_RPC_CACHE_TTL", 300),
		},
		Aws: AwsConfig{
			AccessKey: getString("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getString("AWS_SECRET_KEY_ID", ""),
			Token:     getString("AWS_TOKEN", ""),
			Region:    getString("AWS_REGION", ""),
			QueueUrl:  getString("AWS_QUEUE_URL", ""),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:            getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:            getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck:      getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:            getBool("ELASTIC_SEARCH_DEBUG", false),
			Aws:              getBool("ELASTIC_SEARCH_AWS", false),
			Username:         getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:         getString("ELASTIC_SEARCH_PASSWORD", ""),
			MappingDir:       getString("ELASTIC_SEARCH_MAPPING_DIR", "/data/mappings"),
			BulkPersistCount: getInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300),
			Refresh:          getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}

	return val
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}
