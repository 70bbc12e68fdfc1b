package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App AppConfig
	API APIConfig
	Tax TaxConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend REST.
type APIConfig struct {
	BaseURL  string        // ej. https://api.pedidos-pro.example.com
	Token    string        // bearer token de sesión
	Timeout  time.Duration
	PageSize int           // tamaño de página por defecto para listados
}

// TaxConfig configuración de impuestos del pedido.
type TaxConfig struct {
	Rate decimal.Decimal // IVA aplicado al subtotal (ej. 0.19)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_BASE_URL, API_TOKEN, API_TIMEOUT_SECONDS, API_PAGE_SIZE, TAX_RATE.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	taxRate, err := decimal.NewFromString(getString(v, "TAX_RATE", "0.19"))
	if err != nil {
		taxRate = decimal.NewFromFloat(0.19)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pedidos-pro"),
		},
		API: APIConfig{
			BaseURL:  getString(v, "API_BASE_URL", "http://localhost:8080"),
			Token:    getString(v, "API_TOKEN", ""),
			Timeout:  time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 15)) * time.Second,
			PageSize: getInt(v, "API_PAGE_SIZE", 20),
		},
		Tax: TaxConfig{Rate: taxRate},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
