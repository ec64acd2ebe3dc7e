package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const logRetentionDays = 7

type Logger struct {
	log  zerolog.Logger
	file *os.File
	mu   sync.Mutex
}

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// InitLogger настраивает глобальный zerolog: консоль в dev, JSON в остальных средах,
// плюс файл logs/DD-MM-YYYY.log, если задан LOG_DIR. Повторный вызов переоткрывает файл (ротация).
func InitLogger(cfg Config) error {
	var console io.Writer = os.Stdout
	if cfg.Env == "dev" {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	var file *os.File
	out := console
	if cfg.LogDir != "" {
		f, err := openDailyFile(cfg.LogDir, time.Now())
		if err != nil {
			return err
		}
		file = f
		out = zerolog.MultiLevelWriter(console, f)
	}

	l := &Logger{
		log:  zerolog.New(out).With().Timestamp().Str("app", cfg.AppName).Logger(),
		file: file,
	}

	globalMu.Lock()
	prev := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if prev != nil {
		prev.close()
	}
	if cfg.LogDir != "" {
		go cleanupOldLogs(cfg.LogDir, logRetentionDays)
	}
	return nil
}

// SetLogger подменяет глобальный логгер (используется в тестах)
func SetLogger(zl zerolog.Logger) {
	globalMu.Lock()
	prev := globalLogger
	globalLogger = &Logger{log: zl}
	globalMu.Unlock()
	if prev != nil {
		prev.close()
	}
}

// L возвращает текущий zerolog-логгер; до инициализации — zerolog.Nop()
func L() *zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &globalLogger.log
}

func LogInfo(msg string, fields map[string]interface{}) {
	logEvent(zerolog.InfoLevel, msg, fields)
}

func LogError(msg string, fields map[string]interface{}) {
	logEvent(zerolog.ErrorLevel, msg, fields)
}

func logEvent(level zerolog.Level, msg string, fields map[string]interface{}) {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l == nil {
		return // Игнорируем, если логгер не инициализирован
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.WithLevel(level).Fields(fields).Msg(msg)
}

// Close закрывает файл лога и отключает глобальный логгер
func Close() {
	globalMu.Lock()
	l := globalLogger
	globalLogger = nil
	globalMu.Unlock()
	if l != nil {
		l.close()
	}
}

func (l *Logger) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Закрытие лог-файла: %v\n", err)
	}
	l.file = nil
}

func openDailyFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("создание каталога логов: %w", err)
	}
	path := filepath.Join(dir, now.Format("02-01-2006")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("открытие лог-файла: %w", err)
	}
	return f, nil
}

// cleanupOldLogs удаляет лог-файлы старше days дней
func cleanupOldLogs(dir string, days int) {
	files, err := os.ReadDir(dir)
	if err != nil {
		LogError("Не удалось прочитать каталог логов", map[string]interface{}{"dir": dir, "error": err.Error()})
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, file.Name())
			if err := os.Remove(path); err != nil {
				LogError("Удаление старого лога", map[string]interface{}{"path": path, "error": err.Error()})
			}
		}
	}
}
