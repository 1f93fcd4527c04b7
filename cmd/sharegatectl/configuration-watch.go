package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/sharegate/pkg/config"
)

// configurationWatchCmd represents the configuration watch command
var configurationWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and reload on change",
	Long: `Watch the configuration file and reload the in-process configuration
whenever the file is written.

Example:
  sharegatectl configuration watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationWatchCmd)
}

func watchConfiguration() error {
	fmt.Printf("Watching %s for configuration changes\n", config.Get().ConfigFilePath())

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	stop := make(chan struct{})
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		close(stop)
	}()

	return config.Watch(stop, func(cfg *config.Config, err error) {
		timestamp := time.Now().Format(time.RFC3339)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] Reload failed: %v\n", timestamp, err)
			return
		}
		fmt.Printf("[%s] Configuration reloaded\n", timestamp)
		fmt.Print(cfg.FormatText())
	})
}
