package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jokeApi/internal/core"
	httpx "jokeApi/internal/http"
	"jokeApi/internal/metrics"
	"jokeApi/internal/storage"

	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the joke HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address, overrides HTTP_ADDR (default 127.0.0.1:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1) Конфиг и логи
	if addrFlag != "" {
		if err := os.Setenv("HTTP_ADDR", addrFlag); err != nil {
			return err
		}
	}
	cfg, err := core.Load()
	if err != nil {
		return err
	}
	if err := core.InitLogger(cfg); err != nil {
		return err
	}
	defer core.Close()

	// 2) Каталог шуток
	jokes, err := storage.NewDirectory()
	if err != nil {
		core.LogError("Ошибка инициализации каталога", map[string]interface{}{"error": err.Error()})
		return err
	}

	// 3) Контекст для фоновых задач (ротация логов)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startLogRotation(ctx, cfg)

	// 4) Роутер и HTTP-сервер с таймаутами
	handler := httpx.NewRouter(httpx.Deps{
		Config:  cfg,
		Jokes:   jokes,
		Metrics: metrics.New(),
	})
	srv := core.Server(cfg, handler)

	// 5) Перехват сигналов
	sigs, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6) Запуск сервера
	printEndpoints(cmd.OutOrStdout(), cfg.Addr)
	serverErr := runServer(srv, cfg)

	// 7) Ожидаем сигнал завершения или падение сервера
	select {
	case err := <-serverErr:
		return err
	case <-sigs.Done():
	}
	return waitShutdown(srv, cfg)
}

// startLogRotation — переоткрываем файл лога раз в сутки
func startLogRotation(ctx context.Context, cfg core.Config) {
	if cfg.LogDir == "" {
		return
	}
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := core.InitLogger(cfg); err != nil {
					fmt.Fprintf(os.Stderr, "Ротация логов: %v\n", err)
				}
			}
		}
	}()
}

// runServer — ListenAndServe в горутине; ошибка (кроме штатной остановки) уходит в канал
func runServer(srv *http.Server, cfg core.Config) <-chan error {
	errc := make(chan error, 1)
	go func() {
		core.LogInfo("http: сервер запущен", map[string]interface{}{"addr": cfg.Addr, "env": cfg.Env, "app": cfg.AppName})
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			core.LogError("Ошибка работы сервера", map[string]interface{}{"error": err.Error()})
			errc <- err
		}
	}()
	return errc
}

// waitShutdown — корректное завершение
func waitShutdown(srv *http.Server, cfg core.Config) error {
	core.LogInfo("http: начат процесс завершения", nil)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		core.LogError("Ошибка завершения сервера", map[string]interface{}{"error": err.Error()})
		return err
	}
	core.LogInfo("http: завершение выполнено", nil)
	return nil
}

func printEndpoints(w io.Writer, addr string) {
	fmt.Fprintf(w, "🚀 Starting Joke API server at http://%s\n", addr)
	fmt.Fprintln(w, "📚 Available endpoints:")
	fmt.Fprintln(w, "   GET /                 - Welcome message")
	fmt.Fprintln(w, "   GET /jokes            - Get all jokes")
	fmt.Fprintln(w, "   GET /joke/{id}        - Get joke by ID (1-3)")
}
