package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Lingxing       Lingxing       `mapstructure:",squash"`
	EnrichmentSync EnrichmentSync `mapstructure:",squash"`
	FinancialSync  FinancialSync  `mapstructure:",squash"`
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

// Lingxing configura o acesso à API de analytics do marketplace
type Lingxing struct {
	BaseURL   string `mapstructure:"lingxing_base_url"`
	AppID     string `mapstructure:"lingxing_app_id"`
	AppSecret string `mapstructure:"lingxing_app_secret"`
	PageSize  int    `mapstructure:"lingxing_page_size"`
}

// EnrichmentSync configura o agendador do pipeline de enriquecimento
type EnrichmentSync struct {
	CronSchedule     string `mapstructure:"enrichment_sync_cron"`
	Enabled          bool   `mapstructure:"enrichment_sync_enabled"`
	SalesExportPath  string `mapstructure:"enrichment_sales_export_path"`
	ExistingDataPath string `mapstructure:"enrichment_existing_data_path"`
	OutputPath       string `mapstructure:"enrichment_output_path"`
	WindowOffsetDays int    `mapstructure:"enrichment_window_offset_days"`
	WindowSpanDays   int    `mapstructure:"enrichment_window_span_days"`
}

// FinancialSync configura o agendador de sincronização dos agregados
// financeiros vindos da API do marketplace
type FinancialSync struct {
	CronSchedule string `mapstructure:"financial_sync_cron"`
	Enabled      bool   `mapstructure:"financial_sync_enabled"`
	LookbackDays int    `mapstructure:"financial_sync_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LINGXING_BASE_URL", "https://openapi.lingxing.com")
	viper.SetDefault("LINGXING_APP_ID", "your_app_id")
	viper.SetDefault("LINGXING_APP_SECRET", "your_app_secret")
	viper.SetDefault("LINGXING_PAGE_SIZE", 5000)

	// Defaults do pipeline de enriquecimento
	viper.SetDefault("ENRICHMENT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ENRICHMENT_SYNC_ENABLED", false)
	viper.SetDefault("ENRICHMENT_SALES_EXPORT_PATH", "./data/sales-history.xlsx")
	viper.SetDefault("ENRICHMENT_EXISTING_DATA_PATH", "./data/sku-data.json")
	viper.SetDefault("ENRICHMENT_OUTPUT_PATH", "./data/sku-data-enriched.json")
	viper.SetDefault("ENRICHMENT_WINDOW_OFFSET_DAYS", 2) // Fim da janela: hoje - 2 dias
	viper.SetDefault("ENRICHMENT_WINDOW_SPAN_DAYS", 30)  // Extensão da janela

	// Defaults da sincronização de agregados financeiros
	viper.SetDefault("FINANCIAL_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("FINANCIAL_SYNC_ENABLED", false)
	viper.SetDefault("FINANCIAL_SYNC_LOOKBACK_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
