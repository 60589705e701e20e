package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

// Config agrupa toda la configuración del proceso (env vars).
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	// APP_ENV manda; NODE_ENV queda por compatibilidad con deploys viejos.
	AppEnv    string `env:"APP_ENV"`
	LegacyEnv string `env:"NODE_ENV" envDefault:"development"`

	AppName   string `env:"APP_NAME" envDefault:"pet-adoption"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"8760h"`

	// Mongo: MONGO_URI explícita o credenciales Atlas (DB_USER/DB_PASS/MONGO_HOST).
	MongoURI          string `env:"MONGO_URI"`
	MongoUser         string `env:"DB_USER"`
	MongoPass         string `env:"DB_PASS"`
	MongoHost         string `env:"MONGO_HOST" envDefault:"cluster0.ncq0h0t.mongodb.net"`
	MongoDatabase     string `env:"MONGO_DATABASE" envDefault:"Petenica"`
	MongoTransactions bool   `env:"MONGO_TRANSACTIONS" envDefault:"true"`

	// Postgres (alternativa relacional).
	PostgresDSN string `env:"DB_DSN"`

	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`

	StripeSecretKey string        `env:"STRIPE_SECRET_KEY"`
	PaymentCurrency string        `env:"PAYMENT_CURRENCY" envDefault:"usd"`
	PaymentTimeout  time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"10s"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,https://peticaa.web.app,https://peticaa.firebaseapp.com"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
}

// Load carga .env (si existe) y parsea el entorno.
func Load() (Config, error) {
	// .env es opcional; en prod las variables vienen del entorno.
	_ = godotenv.Load()
	return Parse()
}

// Parse lee sólo el entorno actual, sin tocar .env.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: PORT is empty")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.IsProduction() && strings.TrimSpace(c.AccessTokenSecret) == "" {
		return errors.New("config: ACCESS_TOKEN_SECRET is required in production")
	}
	return nil
}

// Env devuelve el entorno efectivo (APP_ENV o NODE_ENV).
func (c Config) Env() string {
	if v := strings.TrimSpace(c.AppEnv); v != "" {
		return strings.ToLower(v)
	}
	return strings.ToLower(strings.TrimSpace(c.LegacyEnv))
}

func (c Config) IsProduction() bool {
	return c.Env() == EnvProduction
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// MongoConnString arma la URI de conexión. Vacío = Mongo no configurado.
func (c Config) MongoConnString() string {
	if v := strings.TrimSpace(c.MongoURI); v != "" {
		return v
	}
	if strings.TrimSpace(c.MongoUser) == "" || strings.TrimSpace(c.MongoPass) == "" {
		return ""
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.MongoUser),
		url.QueryEscape(c.MongoPass),
		strings.TrimSpace(c.MongoHost),
	)
}
