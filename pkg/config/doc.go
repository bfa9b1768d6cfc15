// Package config loads typed configuration structs from the environment.
//
// Structs declare their surface with `env` tags (parsed by caarlos0/env);
// a local .env file is loaded best-effort once per process via godotenv so
// development setups work without exporting variables. Required values that
// are missing surface as ErrParsingConfig.
//
// # Usage
//
//	var cfg session.Config
//	config.MustLoad(&cfg)
//
// MustLoad panics on failure, which is the intended behavior for
// configuration the process cannot start without, such as the session
// signing secret.
package config
