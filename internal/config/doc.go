// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for slackline.
//
// Configuration comes from three layers, later layers winning:
//
//   - Built-in defaults
//   - ~/.slackline/config.toml (optional)
//   - Environment variables (SLACK_TOKEN, PROXY, HTTP_PROXY, SLACKLINE_API_URL)
//
// The authentication token has no default and no file fallback on
// purpose: it is required from the environment, and starting without one
// is a fatal condition reported before the UI comes up.
package config
