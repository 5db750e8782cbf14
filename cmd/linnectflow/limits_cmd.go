package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/limits"
	"github.com/Nehilsa2/linnectflow/store"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Check today's usage against LinkedIn's soft limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		lm := newLimitsManager(st)

		messages, err := lm.CheckDailyMessageLimit()
		if err != nil {
			return err
		}
		daily, err := lm.CheckDailyConnectionLimit()
		if err != nil {
			return err
		}
		weekly, err := lm.CheckWeeklyConnectionLimit()
		if err != nil {
			return err
		}

		fmt.Println(messages.Message)
		fmt.Println(daily.Message)
		fmt.Println(weekly.Message)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the full limits dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := newLimitsManager(st).Dashboard()
		if err != nil {
			return err
		}

		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("📊 USAGE DASHBOARD")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(data.MessageLimit.Message)
		fmt.Println(data.ConnectionLimitDaily.Message)
		fmt.Println(data.ConnectionLimitWeekly.Message)

		fmt.Println("\nLast 7 days:")
		for _, day := range data.WeekActivity {
			fmt.Printf("   %s  messages %2d  connections %2d  views %2d\n",
				day.Date, day.MessagesSent, day.ConnectionsSent, day.ProfileViews)
		}

		if data.SafeModeRecommended {
			fmt.Println("\n⚠️ Safe mode recommended: slow down until counters reset.")
		}
		fmt.Println("\n" + limits.Recommendation())
		return nil
	},
}

var trackCmd = &cobra.Command{
	Use:   "track <message|connection|profile_view>",
	Short: "Record a tracked action against today's counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var counter store.Counter
		switch args[0] {
		case "message":
			counter = store.CounterMessages
		case "connection":
			counter = store.CounterConnections
		case "profile_view":
			counter = store.CounterProfileView
		default:
			return fmt.Errorf("unknown action %q", args[0])
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		today, err := st.IncrementDailyActivity(counter)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Tracked. Today: %d messages, %d connections, %d profile views\n",
			today.MessagesSent, today.ConnectionsSent, today.ProfileViews)

		// Warn right away when the relevant limit leaves the safe band.
		lm := newLimitsManager(st)
		var status limits.LimitStatus
		switch counter {
		case store.CounterMessages:
			status, err = lm.CheckDailyMessageLimit()
		case store.CounterConnections:
			status, err = lm.CheckDailyConnectionLimit()
		default:
			return nil
		}
		if err != nil {
			return err
		}
		if status.Status != limits.StatusSafe {
			fmt.Println(status.Message)
		}
		return nil
	},
}
