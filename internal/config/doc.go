// Package config loads and merges reviewbot configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (REVIEWBOT_GITEA_URL, REVIEWBOT_OPENROUTER_URL, REVIEWBOT_MODEL)
//  3. Config file ($XDG_CONFIG_HOME/reviewbot/config.json)
//  4. Built-in defaults
//
// API tokens are never part of [Config]. They are read from GITEA_TOKEN and
// OPENROUTER_TOKEN by [LoadCredentials], optionally seeded from a .env file
// by [LoadDotEnv].
package config
