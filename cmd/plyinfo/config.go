package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/plykit/parser"
)

type fileConfig struct {
	StrictFields  bool   `toml:"strict_fields"`
	MaxListLength int    `toml:"max_list_length"`
	LogLevel      string `toml:"log_level"`
}

type cliConfig struct {
	Parser   parser.Config
	LogLevel zapcore.Level
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Parser:   parser.DefaultConfig(),
		LogLevel: zapcore.WarnLevel,
	}
}

func loadConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load plyinfo config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("load plyinfo config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("strict_fields") {
		cfg.Parser.StrictFields = raw.StrictFields
	}

	if meta.IsDefined("max_list_length") {
		if raw.MaxListLength < 0 {
			return cliConfig{}, fmt.Errorf("max_list_length must not be negative, got %d", raw.MaxListLength)
		}
		cfg.Parser.MaxListLength = raw.MaxListLength
	}

	if meta.IsDefined("log_level") {
		level, err := zapcore.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return cliConfig{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
