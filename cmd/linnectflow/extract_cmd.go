package main

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/spf13/cobra"

	"github.com/Nehilsa2/linnectflow/profile"
)

var (
	extractHeadless bool
	extractNoCache  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <profile-url>",
	Short: "Extract profile data from a LinkedIn profile page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		u := launcher.New().
			Leakless(false).
			Headless(extractHeadless).
			MustLaunch()

		browser := rod.New().
			ControlURL(u).
			MustConnect()

		defer browser.MustClose()

		extractor := profile.NewExtractor(browser)
		p, err := extractor.Extract(args[0])
		if err != nil {
			return fmt.Errorf("extracting profile: %w", err)
		}

		if !extractNoCache {
			if err := st.CacheProfile(p); err != nil {
				return fmt.Errorf("caching profile: %w", err)
			}
		}

		return printJSON(p)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractHeadless, "headless", true, "run the browser headless")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "skip caching the extracted profile")
}
