// linnectflow is the command-line companion for LinkedIn outreach:
// message templates with profile-variable substitution, AI drafting,
// and daily usage tracking against LinkedIn's soft limits.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nehilsa2/linnectflow/ai"
	"github.com/Nehilsa2/linnectflow/config"
	"github.com/Nehilsa2/linnectflow/limits"
	"github.com/Nehilsa2/linnectflow/logging"
	"github.com/Nehilsa2/linnectflow/profile"
	"github.com/Nehilsa2/linnectflow/store"
)

var (
	cfg    config.Config
	logger *zap.Logger

	// Global flags
	debug     bool
	storePath string
)

var rootCmd = &cobra.Command{
	Use:   "linnectflow",
	Short: "LinkedIn outreach toolkit: templates, limits, AI drafting",
	Long: `linnectflow keeps your LinkedIn outreach personal and safe:
reusable message templates with {{variable}} placeholders filled from
scraped profile data, optional AI drafting, and daily usage tracking
against LinkedIn's soft rate limits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if debug {
			cfg.Debug = true
		}
		if storePath != "" {
			cfg.StorePath = storePath
		}

		var err error
		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// openStore opens the configured KV backend wrapped in a manager.
// Callers own Close.
func openStore() (*store.Manager, error) {
	var (
		kv  store.KV
		err error
	)

	switch cfg.StoreBackend {
	case "sqlite":
		kv, err = store.OpenSQLite(cfg.StorePath)
	default:
		kv, err = store.OpenJSON(cfg.StorePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	m := store.NewManager(kv)
	if err := m.SeedDefaultTemplates(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// newLimitsManager builds the limits manager for the configured
// account type.
func newLimitsManager(st *store.Manager) *limits.Manager {
	return limits.NewManagerWithTable(st, limits.TableForAccount(cfg.AccountType))
}

// newAIService wires the configured provider.
func newAIService(cmd *cobra.Command, st *store.Manager) (*ai.Service, error) {
	var (
		provider ai.Provider
		err      error
	)

	switch cfg.AIProvider {
	case "openai":
		provider, err = ai.NewOpenAI(cfg.AIAPIKey, cfg.AIModel)
	case "gemini":
		provider, err = ai.NewGemini(cmd.Context(), cfg.AIAPIKey, cfg.AIModel)
	default:
		provider, err = ai.NewGroq(cfg.AIAPIKey, cfg.AIModel)
	}
	if err != nil {
		return nil, fmt.Errorf("AI provider %q: %w", cfg.AIProvider, err)
	}

	return ai.NewService(provider,
		ai.WithCustomPrompt(cfg.CustomPrompt),
		ai.WithUsageRecorder(limits.NewTier(st)),
		ai.WithLogger(logger),
	)
}

// loadProfile reads a profile from a JSON file, or falls back to the
// cached one from the last extraction.
func loadProfile(st *store.Manager, path string) (profile.ProfileData, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return profile.ProfileData{}, fmt.Errorf("failed to read profile: %w", err)
		}

		var p profile.ProfileData
		if err := json.Unmarshal(raw, &p); err != nil {
			return profile.ProfileData{}, fmt.Errorf("failed to parse profile: %w", err)
		}
		p.Normalize()
		return p, nil
	}

	cached, err := st.CachedProfile()
	if err != nil {
		return profile.ProfileData{}, err
	}
	if cached == nil {
		return profile.ProfileData{}, fmt.Errorf("no profile given and no recent extraction cached (run 'linnectflow extract' or pass --profile)")
	}
	return *cached, nil
}

func storeMessage(p profile.ProfileData, content, templateID, templateName string) store.Message {
	return store.Message{
		RecipientName:       p.Name,
		RecipientProfileURL: p.ProfileURL,
		MessageContent:      content,
		TemplateID:          templateID,
		TemplateName:        templateName,
		SentVia:             "cli",
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "override store path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(analyticsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
