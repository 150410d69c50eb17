// Package config loads, normalizes, and validates reelname configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the ANTHROPIC_API_KEY environment
// fallback. Relative directory settings are resolved against the data root so
// the inbox/renamed/archive layout stays together by default.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
