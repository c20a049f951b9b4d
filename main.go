// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// slackline is a terminal Slack client with optimistic sends.
//
// Startup order: load configuration, open the stream traffic log, build
// the API client, then hand everything to the Bubble Tea program. Any
// error before the UI is up, and any fatal error the UI carries out of
// its loop, lands in the error log and exits non-zero.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/slackline-tui/internal/config"
	"github.com/jeranaias/slackline-tui/internal/slack"
	"github.com/jeranaias/slackline-tui/internal/ui/chat"
	"github.com/jeranaias/slackline-tui/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(cfg, err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(cfg, err)
	}

	trafficLog, err := slack.OpenTrafficLog(cfg.Log.StreamPath)
	if err != nil {
		fatal(cfg, err)
	}
	defer trafficLog.Close()

	api := slack.NewClient(cfg.APIBaseURL, cfg.Token)
	dialOpts := slack.DialOptions{
		ProxyHost: cfg.StreamProxy,
		HTTPProxy: cfg.HTTPProxy,
		Log:       trafficLog,
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	program := tea.NewProgram(chat.New(cfg, api, dialOpts), opts...)
	final, err := program.Run()
	if err != nil {
		fatal(cfg, err)
	}
	if m, ok := final.(chat.Model); ok {
		if ferr := m.FatalErr(); ferr != nil {
			fatal(cfg, ferr)
		}
	}
}

// fatal writes the diagnostic to the error log and exits non-zero. The
// log write is atomic so a crash mid-write never leaves a torn file.
func fatal(cfg *config.Config, err error) {
	path := "error_log.txt"
	if cfg != nil && cfg.Log.ErrorPath != "" {
		path = cfg.Log.ErrorPath
	}
	diag := fmt.Sprintf("%s %v\n", time.Now().Format(time.RFC3339), err)
	_ = util.AtomicWriteFile(path, []byte(diag), 0644)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
