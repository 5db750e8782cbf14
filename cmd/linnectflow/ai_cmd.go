package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/ai"
)

var (
	genProfilePath string
	genType        string
	genTone        string
	genLength      string
	genSave        bool

	optAction string
	optTone   string
	optTarget int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft a message with AI from profile data",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := loadProfile(st, genProfilePath)
		if err != nil {
			return err
		}

		svc, err := newAIService(cmd, st)
		if err != nil {
			return err
		}

		result, err := svc.Generate(cmd.Context(), p, ai.MessageContext{
			Type:   genType,
			Tone:   genTone,
			Length: genLength,
		})
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("\n📏 %d characters\n", result.CharCount)

		if genSave {
			msg, err := st.SaveMessage(storeMessage(p, result.Message, "", ""))
			if err != nil {
				return err
			}
			fmt.Printf("💾 Saved to history (%s)\n", msg.ID)
		}
		return nil
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize <message>",
	Short: "Rewrite a message with AI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newAIService(cmd, st)
		if err != nil {
			return err
		}

		result, err := svc.Optimize(cmd.Context(), args[0], ai.OptimizeOptions{
			Action:       ai.OptimizeAction(optAction),
			Tone:         optTone,
			TargetLength: optTarget,
		})
		if err != nil {
			return err
		}

		fmt.Println(result.Optimized)
		fmt.Printf("\n📏 %d characters (was %d)\n", result.CharCount, len([]rune(result.Original)))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <message>",
	Short: "Show static improvement hints for a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suggestions := ai.Suggestions(args[0])
		if len(suggestions) == 0 {
			fmt.Println("✅ No suggestions - looks good")
			return nil
		}

		for _, s := range suggestions {
			fmt.Printf("%s %s: %s\n", s.Icon, s.Title, s.Description)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genProfilePath, "profile", "", "profile JSON file (defaults to the cached extraction)")
	generateCmd.Flags().StringVar(&genType, "type", "connection", "message type: connection or message")
	generateCmd.Flags().StringVar(&genTone, "tone", "professional", "tone: professional, friendly, enthusiastic, concise")
	generateCmd.Flags().StringVar(&genLength, "length", "short", "length: short, medium, long")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "save the drafted message to history")

	optimizeCmd.Flags().StringVar(&optAction, "action", "improve", "improve, shorten, lengthen, change_tone, fix_grammar")
	optimizeCmd.Flags().StringVar(&optTone, "tone", "", "target tone for change_tone")
	optimizeCmd.Flags().IntVar(&optTarget, "target-length", 0, "target length for shorten")
}
