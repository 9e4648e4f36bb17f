// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Components in this module each declare their own Config struct with
// `env`/`envDefault` tags and a DefaultConfig constructor; this package is the
// twelve-factor path that fills those structs from the environment.
//
//	var cfg lifecycle.Config
//	config.MustLoad(&cfg)
package config
