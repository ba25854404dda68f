package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Sheets SheetsConfig
	JWT    JWTConfig
	Admin  AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig credenciales y hoja de cálculo de Google Sheets.
// SpreadsheetID acepta el ID pelado o la URL completa del documento.
type SheetsConfig struct {
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKey          string
}

var sheetURLRe = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ResolveSpreadsheetID extrae el ID si la variable trae la URL completa de la hoja.
func (c SheetsConfig) ResolveSpreadsheetID() string {
	if m := sheetURLRe.FindStringSubmatch(c.SpreadsheetID); m != nil {
		return m[1]
	}
	return strings.TrimSpace(c.SpreadsheetID)
}

// HasCredentials indica si hay credenciales de cuenta de servicio configuradas.
// Su ausencia es un error fatal de configuración que se reporta en el primer acceso.
func (c SheetsConfig) HasCredentials() bool {
	return strings.TrimSpace(c.ServiceAccountEmail) != "" && strings.TrimSpace(c.PrivateKey) != ""
}

// JWTConfig configuración de JWT. Secret vacío = API abierta (sin auth).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig usuario administrador para /api/auth/login.
type AdminConfig struct {
	User         string
	PasswordHash string // bcrypt
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, GOOGLE_SHEET_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ventastock"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:       getString(v, "GOOGLE_SHEET_ID", ""),
			ServiceAccountEmail: strings.TrimSpace(getString(v, "GOOGLE_SERVICE_ACCOUNT_EMAIL", "")),
			PrivateKey:          repairPrivateKey(getString(v, "GOOGLE_PRIVATE_KEY", "")),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ventastock"),
		},
		Admin: AdminConfig{
			User:         getString(v, "ADMIN_USER", "admin"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
	}

	return cfg, nil
}

// repairPrivateKey normaliza la llave privada tal como llega de paneles de
// despliegue: \n literales, finales de línea Windows/Mac y comillas externas.
func repairPrivateKey(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	key := strings.ReplaceAll(raw, `\n`, "\n")
	key = strings.ReplaceAll(key, "\r\n", "\n")
	key = strings.ReplaceAll(key, "\r", "\n")
	key = strings.TrimSpace(key)
	if len(key) >= 2 {
		if (key[0] == '"' && key[len(key)-1] == '"') || (key[0] == '\'' && key[len(key)-1] == '\'') {
			key = strings.TrimSpace(key[1 : len(key)-1])
			key = strings.ReplaceAll(key, `\n`, "\n")
		}
	}
	return key
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
