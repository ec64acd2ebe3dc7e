package main

//main.go
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Joke API: a small HTTP service with three fixed jokes",
	// Без подкоманды — запускаем сервер
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address, overrides HTTP_ADDR (default 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd, helloCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
