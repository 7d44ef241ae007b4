package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Valores válidos para la preferencia de tema.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore persiste la preferencia de tema en un archivo clave/valor:
// se lee al arrancar (con fallback al default configurado) y se reescribe
// en cada toggle.
type ThemeStore struct {
	path string
	def  string
}

// NewThemeStore construye el store para el archivo indicado.
func NewThemeStore(cfg ThemeConfig) *ThemeStore {
	def := cfg.Default
	if def != ThemeLight && def != ThemeDark {
		def = ThemeLight
	}
	return &ThemeStore{path: cfg.File, def: def}
}

// Current lee la preferencia guardada. Si el archivo no existe o el valor
// no es válido devuelve el default.
func (s *ThemeStore) Current() string {
	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(s.path); os.IsNotExist(statErr) {
			return s.def
		}
		return s.def
	}
	theme := v.GetString("theme")
	if theme != ThemeLight && theme != ThemeDark {
		return s.def
	}
	return theme
}

// Set valida y escribe la preferencia.
func (s *ThemeStore) Set(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("tema inválido: %q", theme)
	}
	v := viper.New()
	v.SetConfigFile(s.path)
	v.Set("theme", theme)
	return v.WriteConfigAs(s.path)
}

// Toggle alterna light/dark, persiste y devuelve el nuevo valor.
func (s *ThemeStore) Toggle() (string, error) {
	next := ThemeLight
	if s.Current() == ThemeLight {
		next = ThemeDark
	}
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
