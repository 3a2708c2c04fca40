package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App  AppConfig
	API  APIConfig
	Docs DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// APIConfig configuración del cliente hacia el backend REST.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
	MaxRetries     int
	User           string // credenciales opcionales para login no interactivo
	Password       string
}

// Timeout devuelve el timeout HTTP como duración.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DocsConfig configuración del motor de documentos.
type DocsConfig struct {
	OrgName     string // encabezado del recibo
	ReceiptsDir string
	ReportsDir  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente un
// archivo .env en el directorio actual). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "comite-agua"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "https://aguaspl-production.up.railway.app"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
			MaxRetries:     getInt(v, "API_MAX_RETRIES", 3),
			User:           getString(v, "API_USER", ""),
			Password:       getString(v, "API_CLAVE", ""),
		},
		Docs: DocsConfig{
			OrgName:     getString(v, "ORG_NAME", "COMITÉ DE AGUA - ALDEA PANCHO DE LEÓN"),
			ReceiptsDir: getString(v, "RECEIPTS_DIR", "Recibos_Generados"),
			ReportsDir:  getString(v, "REPORTS_DIR", "Reportes_Generados"),
		},
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
