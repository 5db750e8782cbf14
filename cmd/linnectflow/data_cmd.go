package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/analytics"
	"github.com/Nehilsa2/linnectflow/store"
)

var (
	exportOut     string
	analyticsDays int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export templates, history and reminders as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		bundle, err := st.Export()
		if err != nil {
			return err
		}

		if exportOut == "" {
			return printJSON(bundle)
		}

		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("💾 Exported %d templates, %d messages, %d reminders to %s\n",
			len(bundle.Templates), len(bundle.Messages), len(bundle.Reminders), exportOut)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported JSON bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading bundle: %w", err)
		}

		var bundle store.ExportBundle
		if err := json.Unmarshal(data, &bundle); err != nil {
			return fmt.Errorf("parsing bundle: %w", err)
		}

		if err := st.Import(bundle); err != nil {
			return err
		}
		fmt.Printf("✅ Imported %d templates, %d messages, %d reminders\n",
			len(bundle.Templates), len(bundle.Messages), len(bundle.Reminders))
		return nil
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Reply-rate report for the trailing date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		messages, err := st.Messages()
		if err != nil {
			return err
		}
		templates, err := st.Templates()
		if err != nil {
			return err
		}

		report := analytics.Analyze(messages, templates, analyticsDays, time.Now())

		fmt.Printf("📊 Last %d days: %d sent, %d replied (%d%% reply rate)\n",
			report.RangeDays, report.TotalSent, report.TotalReplied, report.ReplyRate)
		if len(report.Templates) == 0 {
			fmt.Println("No template activity in this range.")
			return nil
		}
		fmt.Println("\nTemplate performance:")
		for _, t := range report.Templates {
			fmt.Printf("  %s: %d sent, %d replied (%d%%)\n", t.Name, t.Sent, t.Replied, t.ReplyRate)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write the bundle to a file instead of stdout")
	analyticsCmd.Flags().IntVar(&analyticsDays, "days", 30, "trailing range in days")
}
