package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	VirusTotal      VirusTotal      `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
	Upload          Upload          `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	ScanVerdictSync ScanVerdictSync `mapstructure:",squash"`
	InsightSnapshot InsightSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	RoleCacheTTL time.Duration `mapstructure:"role_cache_ttl"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

type Storage struct {
	Endpoint        string `mapstructure:"storage_endpoint"`
	Region          string `mapstructure:"storage_region"`
	AccessKey       string `mapstructure:"storage_access_key"`
	SecretKey       string `mapstructure:"storage_secret_key"`
	UseSSL          bool   `mapstructure:"storage_use_ssl"`
	PublicURL       string `mapstructure:"storage_public_url"`
	AppBucket       string `mapstructure:"storage_app_bucket"`
	DeveloperBucket string `mapstructure:"storage_developer_bucket"`
}

type OpenAI struct {
	BaseURL string        `mapstructure:"openai_base_url"`
	APIKey  string        `mapstructure:"openai_api_key"`
	Model   string        `mapstructure:"openai_model"`
	Timeout time.Duration `mapstructure:"openai_timeout"`
}

type VirusTotal struct {
	BaseURL string        `mapstructure:"virustotal_base_url"`
	APIKey  string        `mapstructure:"virustotal_api_key"`
	Timeout time.Duration `mapstructure:"virustotal_timeout"`
}

type RateLimit struct {
	AIRequestsPerSecond float64 `mapstructure:"ai_rate_limit_rps"`
	AIBurst             int     `mapstructure:"ai_rate_limit_burst"`
}

type Upload struct {
	MaxUploadMB int64 `mapstructure:"max_upload_mb"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type ScanVerdictSync struct {
	CronSchedule string `mapstructure:"scan_verdict_sync_cron"`
	BatchSize    int    `mapstructure:"scan_verdict_sync_batch_size"`
	Enabled      bool   `mapstructure:"scan_verdict_sync_enabled"`
}

type InsightSnapshot struct {
	CronSchedule string `mapstructure:"insight_snapshot_cron"`
	Enabled      bool   `mapstructure:"insight_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/appstore?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("TOKEN_TTL", "168h")   // 7 dias
	viper.SetDefault("ROLE_CACHE_TTL", "30s") // perfil do usuário consultado no máximo a cada 30s

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("STORAGE_ENDPOINT", "localhost:9000")
	viper.SetDefault("STORAGE_REGION", "")
	viper.SetDefault("STORAGE_ACCESS_KEY", "minioadmin")
	viper.SetDefault("STORAGE_SECRET_KEY", "minioadmin")
	viper.SetDefault("STORAGE_USE_SSL", false)
	viper.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:9000")
	viper.SetDefault("STORAGE_APP_BUCKET", "apps")
	viper.SetDefault("STORAGE_DEVELOPER_BUCKET", "developer-ids")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TIMEOUT", "30s")

	viper.SetDefault("VIRUSTOTAL_BASE_URL", "https://www.virustotal.com/api/v3")
	viper.SetDefault("VIRUSTOTAL_API_KEY", "")
	viper.SetDefault("VIRUSTOTAL_TIMEOUT", "15s")

	viper.SetDefault("AI_RATE_LIMIT_RPS", 1)
	viper.SetDefault("AI_RATE_LIMIT_BURST", 5)

	viper.SetDefault("MAX_UPLOAD_MB", 200)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("SCAN_VERDICT_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SCAN_VERDICT_SYNC_BATCH_SIZE", 20)
	viper.SetDefault("SCAN_VERDICT_SYNC_ENABLED", false)

	viper.SetDefault("INSIGHT_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("INSIGHT_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text") // text ou json
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// MaxUploadBytes converte o limite de upload configurado para bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxUploadMB << 20
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
