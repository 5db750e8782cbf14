package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/store"
	"github.com/Nehilsa2/linnectflow/template"
)

var (
	tmplName        string
	tmplDescription string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage message templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		templates, err := st.Templates()
		if err != nil {
			return err
		}

		fmt.Println("\n📝 Message Templates:")
		fmt.Println(strings.Repeat("-", 50))
		for _, t := range templates {
			fmt.Printf("\n📌 %s (%s)\n", t.Name, t.ID)
			if t.Description != "" {
				fmt.Printf("   %s\n", t.Description)
			}
			fmt.Printf("   Variables: %v\n", template.Variables(t.Content))
			fmt.Printf("   Used %d times, %d replies\n", t.UsageCount, t.ReplyCount)
		}
		fmt.Println(strings.Repeat("-", 50))
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one template with a sample preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		t, err := st.GetTemplate(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("📌 %s\n\n%s\n\n", t.Name, t.Content)
		fmt.Printf("Preview: %s\n", template.Preview(t.Content, nil))
		fmt.Printf("Estimated length: %d characters\n", template.EstimateLength(t.Content, nil))
		return nil
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Create a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := args[0]

		result := template.Validate(content)
		if !result.Valid {
			return fmt.Errorf("invalid template: %s", strings.Join(result.Errors, "; "))
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		t, err := st.SaveTemplate(store.Template{
			Name:        tmplName,
			Description: tmplDescription,
			Content:     content,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Template %q created (%s)\n", t.Name, t.ID)
		return nil
	},
}

var templateRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteTemplate(args[0]); err != nil {
			return err
		}
		fmt.Println("🗑️ Template deleted")
		return nil
	},
}

func init() {
	templateAddCmd.Flags().StringVar(&tmplName, "name", "", "template name")
	templateAddCmd.Flags().StringVar(&tmplDescription, "description", "", "template description")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateRmCmd)
}
