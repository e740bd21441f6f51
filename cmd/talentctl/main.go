// Package main provides talentctl, the command line client for the
// TalentLoop recruiting platform.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/talentloop/talentloop-go/internal/api"
	"github.com/talentloop/talentloop-go/internal/config"
	"github.com/talentloop/talentloop-go/internal/logging"
	"github.com/talentloop/talentloop-go/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "talentctl",
	Short: "TalentLoop command line client",
	Long:  "talentctl drives the TalentLoop recruiting platform: candidate profiles, job postings, AI-scored video interviews, invite links, and the employer talent pool.",
}

var (
	configPath string
	apiURL     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "TalentLoop API base URL (overrides config and TALENTLOOP_API_URL)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Ctrl-C cancels in-flight requests and polling loops.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges flag, env, and file configuration in that precedence.
func loadConfig() (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := config.FromEnv().MergeWithDefaults(fileCfg)
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newAPIClient builds the client, credential store, and logger every command
// uses.
func newAPIClient() (*api.Client, *session.Store, *logging.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := session.Open(cfg.CredentialsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(cfg.LogLevel)

	// Drop a token that is already past its exp claim instead of burning a
	// request on a guaranteed 401.
	if token, kind, ok := store.Token(); ok && session.Expired(token) {
		_ = store.Clear()
		log.Debug("discarded expired token", "kind", kind)
	}

	client := api.NewClient(api.Config{
		BaseURL:     cfg.APIBaseURL,
		LinkBaseURL: cfg.LinkBaseURL,
		Credentials: store,
		Logger:      log,
	})
	return client, store, log, nil
}

// mapAuthError turns a 401 into a fresh-login prompt after clearing the
// stored tokens. Everything else passes through untouched.
func mapAuthError(store *session.Store, err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		_ = store.Clear()
		return fmt.Errorf("session expired or invalid; run 'talentctl login' again")
	}
	return err
}
