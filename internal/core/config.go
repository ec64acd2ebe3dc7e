package core

//config.go

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config определяет настройки приложения (OWASP A05: Security Misconfiguration)
type Config struct {
	AppName string `validate:"required"`

	// Адрес HTTP-сервера, например "127.0.0.1:8080"
	Addr string `validate:"required,hostname_port"`
	Env  string `validate:"required,oneof=dev staging prod"`

	Secure bool   // Включает HSTS (только за HTTPS-прокси)
	LogDir string // Каталог для ежедневных лог-файлов; пусто — только stdout

	// Прокси (IP или CIDR), которым верим X-Forwarded-For / X-Real-IP
	TrustedProxies []string `validate:"dive,cidr|ip"`

	// Таймауты сервера и обработки запроса
	ShutdownTimeout   time.Duration `validate:"gt=0"`
	ReadHeaderTimeout time.Duration `validate:"gt=0"`
	ReadTimeout       time.Duration `validate:"gt=0"`
	WriteTimeout      time.Duration `validate:"gt=0"`
	IdleTimeout       time.Duration `validate:"gt=0"`
	RequestTimeout    time.Duration `validate:"gt=0"`
}

var configValidator = validator.New()

// Load загружает конфигурацию из переменных окружения со значениями по умолчанию
func Load() (Config, error) {
	cfg := Config{
		AppName:           getEnv("APP_NAME", "jokeApi"),
		Addr:              getEnv("HTTP_ADDR", "127.0.0.1:8080"),
		Env:               getEnv("APP_ENV", "dev"),
		Secure:            getEnv("SECURE", "") == "true",
		LogDir:            getEnv("LOG_DIR", ""),
		TrustedProxies:    getEnvList("TRUSTED_PROXIES", "127.0.0.1,::1"),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReadHeaderTimeout: getEnvDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvDuration("IDLE_TIMEOUT", 60*time.Second),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет конфигурацию по тегам validate
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", e.Field(), e.Tag()))
			}
			return fmt.Errorf("config: invalid fields: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// IsProd — продакшен-среда
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

// getEnvList — список через запятую, пустые элементы отбрасываются
func getEnvList(key, def string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnvDuration возвращает длительность из переменной окружения или значение по умолчанию
func getEnvDuration(key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		LogError("Неверный формат длительности", map[string]interface{}{"key": key, "value": val, "error": err.Error()})
		return def
	}
	return d
}
