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
	"github.com/vfg2006/marketing-copilot-api/pkg/utils"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	GoogleAds         GoogleAds         `mapstructure:",squash"`
	OpenAI            OpenAI            `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Detection         Detection         `mapstructure:",squash"`
	MetricsSync       MetricsSync       `mapstructure:",squash"`
	DemoCampaignPause DemoCampaignPause `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	TokenURL        string `mapstructure:"google_ads_token_url"`
}

type OpenAI struct {
	BaseURL string `mapstructure:"openai_base_url"`
	APIKey  string `mapstructure:"openai_api_key"`
	Model   string `mapstructure:"openai_model"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Detection agrupa os limiares do núcleo de detecção de insights.
// Valores inválidos impedem a inicialização do processo.
type Detection struct {
	OverspendRatio         float64 `mapstructure:"detection_overspend_ratio"`
	CriticalOverspendRatio float64 `mapstructure:"detection_critical_overspend_ratio"`
	ZScoreThreshold        float64 `mapstructure:"detection_zscore_threshold"`
	CriticalZScore         float64 `mapstructure:"detection_critical_zscore"`
	MinSampleSize          int     `mapstructure:"detection_min_sample_size"`
	HistoryDays            int     `mapstructure:"detection_history_days"`
	CooldownDays           int     `mapstructure:"detection_cooldown_days"`
}

type MetricsSync struct {
	CronSchedule        string `mapstructure:"metrics_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"metrics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"metrics_sync_retention_days"`
	Enabled             bool   `mapstructure:"metrics_sync_enabled"`
}

type DemoCampaignPause struct {
	CronSchedule string `mapstructure:"demo_campaign_pause_cron"`
	MaxAgeHours  int    `mapstructure:"demo_campaign_pause_max_age_hours"`
	Enabled      bool   `mapstructure:"demo_campaign_pause_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/copilot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	viper.SetDefault("DETECTION_OVERSPEND_RATIO", 1.0)
	viper.SetDefault("DETECTION_CRITICAL_OVERSPEND_RATIO", 1.2)
	viper.SetDefault("DETECTION_ZSCORE_THRESHOLD", 2.0)
	viper.SetDefault("DETECTION_CRITICAL_ZSCORE", 3.0)
	viper.SetDefault("DETECTION_MIN_SAMPLE_SIZE", 3)
	viper.SetDefault("DETECTION_HISTORY_DAYS", 7)
	viper.SetDefault("DETECTION_COOLDOWN_DAYS", 1)

	viper.SetDefault("METRICS_SYNC_CRON", "0 */2 * * *")
	viper.SetDefault("METRICS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("METRICS_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("METRICS_SYNC_ENABLED", true)

	viper.SetDefault("DEMO_CAMPAIGN_PAUSE_CRON", "0 * * * *")
	viper.SetDefault("DEMO_CAMPAIGN_PAUSE_MAX_AGE_HOURS", 24)
	viper.SetDefault("DEMO_CAMPAIGN_PAUSE_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Detection.Validate(); err != nil {
		return nil, fmt.Errorf("configuração de detecção inválida: %w", err)
	}

	return config, nil
}

// Validate garante que os limiares de detecção fazem sentido.
// É chamado uma única vez na inicialização; falha aqui derruba o processo.
func (d Detection) Validate() error {
	if d.OverspendRatio <= 0 {
		return fmt.Errorf("detection_overspend_ratio deve ser positivo, recebido %v", d.OverspendRatio)
	}

	if d.CriticalOverspendRatio < d.OverspendRatio {
		return fmt.Errorf("detection_critical_overspend_ratio (%v) não pode ser menor que detection_overspend_ratio (%v)",
			d.CriticalOverspendRatio, d.OverspendRatio)
	}

	if d.ZScoreThreshold <= 0 {
		return fmt.Errorf("detection_zscore_threshold deve ser positivo, recebido %v", d.ZScoreThreshold)
	}

	if d.CriticalZScore < d.ZScoreThreshold {
		return fmt.Errorf("detection_critical_zscore (%v) não pode ser menor que detection_zscore_threshold (%v)",
			d.CriticalZScore, d.ZScoreThreshold)
	}

	if d.MinSampleSize < 1 {
		return fmt.Errorf("detection_min_sample_size deve ser >= 1, recebido %d", d.MinSampleSize)
	}

	if d.HistoryDays < 1 {
		return fmt.Errorf("detection_history_days deve ser >= 1, recebido %d", d.HistoryDays)
	}

	if d.CooldownDays < 1 {
		return fmt.Errorf("detection_cooldown_days deve ser >= 1, recebido %d", d.CooldownDays)
	}

	return nil
}

// CooldownWindowStart retorna o início da janela de cooldown em relação a now.
// A janela é medida em dias de calendário: com 1 dia, insights criados hoje
// suprimem novos candidatos da mesma chave.
func (d Detection) CooldownWindowStart(now time.Time) time.Time {
	return utils.TruncateToDay(now).AddDate(0, 0, -(d.CooldownDays - 1))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
