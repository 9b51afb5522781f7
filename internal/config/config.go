package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Amazon       Amazon       `mapstructure:",squash"`
	Kafka        Kafka        `mapstructure:",squash"`
	PacingSync   PacingSync   `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
	Pacing       Pacing       `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
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

type Amazon struct {
	BaseURL     string `mapstructure:"amazon_ads_base_url"`
	ClientID    string `mapstructure:"amazon_ads_client_id"`
	AccessToken string `mapstructure:"amazon_ads_access_token"`
}

type Kafka struct {
	Brokers            string `mapstructure:"kafka_brokers"`
	BudgetActionsTopic string `mapstructure:"kafka_budget_actions_topic"`
}

// BrokerList separa a lista de brokers configurada por vírgula
func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

type PacingSync struct {
	CronSchedule string `mapstructure:"pacing_sync_cron"`
	Enabled      bool   `mapstructure:"pacing_sync_enabled"`
}

type CampaignSync struct {
	CronSchedule string `mapstructure:"campaign_sync_cron"`
	Enabled      bool   `mapstructure:"campaign_sync_enabled"`
}

// Pacing expõe os parâmetros ajustáveis da política de pacing. Os demais
// números da política (pesos de tendência, fatores de alvo) ficam em
// pacing.DefaultPolicy e só mudam em código.
type Pacing struct {
	CooldownMinutes  int     `mapstructure:"pacing_cooldown_minutes"`
	MaxChangeRatio   float64 `mapstructure:"pacing_max_change_ratio"`
	HistoryWeeks     int     `mapstructure:"pacing_history_weeks"`
	AutoApplyEnabled bool    `mapstructure:"pacing_auto_apply_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pacing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AMAZON_ADS_BASE_URL", "https://advertising-api.amazon.com")
	viper.SetDefault("AMAZON_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("AMAZON_ADS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_BUDGET_ACTIONS_TOPIC", "budget-actions")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para o lote de pacing
	viper.SetDefault("PACING_SYNC_CRON", "0 * * * *") // Toda hora cheia
	viper.SetDefault("PACING_SYNC_ENABLED", false)

	// Defaults para sincronização do diretório de campanhas
	viper.SetDefault("CAMPAIGN_SYNC_CRON", "30 2 * * *") // Todos os dias às 2h30
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", false)

	// Parâmetros ajustáveis da política de pacing
	viper.SetDefault("PACING_COOLDOWN_MINUTES", 120) // 2 horas após uma mudança aplicada
	viper.SetDefault("PACING_MAX_CHANGE_RATIO", 0.2) // Variação máxima de 20% por recomendação
	viper.SetDefault("PACING_HISTORY_WEEKS", 2)      // Mesmos dias da semana, 1 e 2 semanas atrás
	viper.SetDefault("PACING_AUTO_APPLY_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
