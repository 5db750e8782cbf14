package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/store"
)

var (
	historySearch string
	historyLimit  int
	remindDate    string
	remindNote    string
	remindProfile string
	replyUndo     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse sent-message history",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var messages []store.Message
		if historySearch != "" {
			messages, err = st.SearchMessages(historySearch)
		} else {
			messages, err = st.Messages()
		}
		if err != nil {
			return err
		}

		if historyLimit > 0 && len(messages) > historyLimit {
			messages = messages[:historyLimit]
		}

		for _, msg := range messages {
			replied := " "
			if msg.Replied {
				replied = "↩"
			}
			fmt.Printf("%s %s  %-20s  %.60s\n",
				replied, msg.SentAt.Format("2006-01-02 15:04"), msg.RecipientName, msg.MessageContent)
			fmt.Printf("   id: %s\n", msg.ID)
		}
		return nil
	},
}

var historyReplyCmd = &cobra.Command{
	Use:   "reply <message-id>",
	Short: "Mark a message as replied (or un-replied with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SetMessageReplied(args[0], !replyUndo); err != nil {
			return err
		}
		if replyUndo {
			fmt.Println("✅ Reply flag cleared")
		} else {
			fmt.Println("✅ Marked as replied")
		}
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage follow-up reminders",
}

var remindAddCmd = &cobra.Command{
	Use:   "add <recipient name>",
	Short: "Schedule a follow-up reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if remindDate == "" {
			return fmt.Errorf("--date YYYY-MM-DD is required")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := st.SaveReminder(store.Reminder{
			RecipientName:       args[0],
			RecipientProfileURL: remindProfile,
			Note:                remindNote,
			ScheduledDate:       remindDate,
		})
		if err != nil {
			return err
		}

		fmt.Printf("⏰ Reminder %s scheduled for %s\n", r.ID, r.ScheduledDate)
		return nil
	},
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders, flagging the ones due",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		active, err := st.ActiveReminders()
		if err != nil {
			return err
		}
		due, err := st.DueReminders()
		if err != nil {
			return err
		}

		dueSet := make(map[string]bool, len(due))
		for _, r := range due {
			dueSet[r.ID] = true
		}

		for _, r := range active {
			marker := "  "
			if dueSet[r.ID] {
				marker = "🔔"
			}
			fmt.Printf("%s %s  %-20s  %s\n", marker, r.ScheduledDate, r.RecipientName, r.Note)
			fmt.Printf("   id: %s\n", r.ID)
		}
		return nil
	},
}

var remindDoneCmd = &cobra.Command{
	Use:   "done <reminder-id>",
	Short: "Complete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CompleteReminder(args[0]); err != nil {
			return err
		}
		fmt.Println("✅ Reminder completed")
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historySearch, "search", "", "filter by recipient, content or tag")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max entries to show")
	historyReplyCmd.Flags().BoolVar(&replyUndo, "undo", false, "clear the reply flag instead")
	historyCmd.AddCommand(historyReplyCmd)

	remindAddCmd.Flags().StringVar(&remindDate, "date", "", "scheduled date (YYYY-MM-DD)")
	remindAddCmd.Flags().StringVar(&remindNote, "note", "", "reminder note")
	remindAddCmd.Flags().StringVar(&remindProfile, "profile-url", "", "recipient profile URL")
	remindCmd.AddCommand(remindAddCmd)
	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindDoneCmd)
}
