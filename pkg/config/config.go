package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Auth  AuthConfig
	Theme ThemeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// AuthConfig configuración del login simulado.
// Delay agrega latencia artificial al login; 0 la desactiva.
type AuthConfig struct {
	Delay time.Duration
}

// ThemeConfig ubicación del archivo de preferencia de tema y valor por defecto.
// El default se aplica cuando no hay preferencia guardada.
type ThemeConfig struct {
	File    string
	Default string // light | dark
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, AUTH_LOGIN_DELAY_MS, THEME_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-lite"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			Delay: time.Duration(getInt(v, "AUTH_LOGIN_DELAY_MS", 500)) * time.Millisecond,
		},
		Theme: ThemeConfig{
			File:    getString(v, "THEME_FILE", "preferences.yaml"),
			Default: getString(v, "THEME_DEFAULT", ThemeLight),
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
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
