package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/template"
)

var (
	renderProfilePath string
	renderTemplateID  string
	renderSave        bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template text]",
	Short: "Fill a template's {{variables}} with profile data",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		content := ""
		templateID := ""
		templateName := ""

		switch {
		case renderTemplateID != "":
			t, err := st.GetTemplate(renderTemplateID)
			if err != nil {
				return err
			}
			content = t.Content
			templateID = t.ID
			templateName = t.Name
		case len(args) == 1:
			content = args[0]
		default:
			return fmt.Errorf("pass template text or --template <id>")
		}

		p, err := loadProfile(st, renderProfilePath)
		if err != nil {
			return err
		}

		rendered := template.Render(content, p.Fields())
		fmt.Println(rendered)

		if templateID != "" {
			if err := st.RecordTemplateUsage(templateID); err != nil {
				return err
			}
		}

		if renderSave {
			msg, err := st.SaveMessage(storeMessage(p, rendered, templateID, templateName))
			if err != nil {
				return err
			}
			fmt.Printf("💾 Saved to history (%s)\n", msg.ID)
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <template text>",
	Short: "Render a template against the built-in sample profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(template.Preview(args[0], nil))
		fmt.Printf("📏 Estimated length: %d characters\n", template.EstimateLength(args[0], nil))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <template text>",
	Short: "Check a template for syntax and length problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := template.Validate(args[0])
		if result.Valid {
			fmt.Println("✅ Template is valid")
		} else {
			fmt.Println("❌ Template has problems:")
			for _, e := range result.Errors {
				fmt.Printf("   - %s\n", e)
			}
		}

		for _, s := range template.SuggestVariables(args[0]) {
			fmt.Printf("💡 %s: %s (e.g. %s)\n", s.Variable, s.Reason, s.Example)
		}

		if !result.Valid {
			return fmt.Errorf("%d validation error(s)", len(result.Errors))
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderProfilePath, "profile", "", "profile JSON file (defaults to the cached extraction)")
	renderCmd.Flags().StringVar(&renderTemplateID, "template", "", "stored template ID")
	renderCmd.Flags().BoolVar(&renderSave, "save", false, "save the rendered message to history")
}
