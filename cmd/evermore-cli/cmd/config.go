package cmd

import (
	"os"
	"strconv"

	"github.com/evermorehealth/portal/cmd/evermore-cli/internal/output"
	"github.com/evermorehealth/portal/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// lookupEnv is the environment the commands read; tests replace it.
var lookupEnv = os.LookupEnv

// loadConfig reads .env when present, then the environment.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load(lookupEnv)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show the configuration the server would start with, after .env and
environment variables are applied. The session secret is never printed.

Examples:
  evermore-cli config
  APP_ENV=production EVERMORE_API_URL=https://api.example.com evermore-cli config --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		secret := "(default)"
		if v, ok := lookupEnv("SESSION_SECRET"); ok && v != "" {
			secret = "(set)"
		}
		contentDir := cfg.GetContentDir()
		if contentDir == "" {
			contentDir = "(embedded)"
		}

		return output.Write(cmd.OutOrStdout(), outputFormat, output.Table{
			Header: []string{"KEY", "VALUE"},
			Rows: [][]string{
				{"app_env", cfg.GetAppEnv()},
				{"server_addr", cfg.GetServerAddr()},
				{"backend_url", cfg.GetBackendURL()},
				{"backend_timeout", cfg.GetBackendTimeout().String()},
				{"rate_limit", strconv.FormatFloat(cfg.GetRateLimit(), 'f', -1, 64)},
				{"content_dir", contentDir},
				{"session_secret", secret},
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
