package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/sassgen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".sassgen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user actually set
	// are merged; merging unchanged defaults would shadow the config file
	// and environment sections because flag keys are flat.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", nil, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SASSGEN_* prefix). The first underscore
	// separates the section, the rest map to hyphenated keys:
	// SASSGEN_VERBOSE -> verbose
	// SASSGEN_CONVERT_MAX_CLASS_LENGTH -> convert.max-class-length
	// SASSGEN_FORMATTER_INDENT_SIZE -> formatter.indent-size
	if err := k.Load(env.Provider("SASSGEN_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SASSGEN_"))
		parts := strings.SplitN(s, "_", 2)
		if len(parts) == 1 {
			return parts[0]
		}
		return parts[0] + "." + strings.ReplaceAll(parts[1], "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConvertOptions constructs the library's Options value from koanf state.
func buildConvertOptions() sassgen.Options {
	opts := sassgen.DefaultOptions()

	opts.FormatOutput = getBoolWithFallback("format", "convert.format", opts.FormatOutput)
	opts.UseCommentBlocksAsClassName = getBoolWithFallback("comment-names", "convert.comment-names", opts.UseCommentBlocksAsClassName)
	opts.MaxClassNameLength = getIntWithFallback("max-class-length", "convert.max-class-length", opts.MaxClassNameLength)
	opts.PrintComments = getBoolWithFallback("print-comments", "convert.print-comments", opts.PrintComments)

	opts.Formatter.IndentSize = getIntWithFallback("indent-size", "formatter.indent-size", opts.Formatter.IndentSize)
	opts.Formatter.IndentChar = getStringWithFallback("indent-char", "formatter.indent-char", opts.Formatter.IndentChar)
	opts.Formatter.PreserveNewlines = getBoolWithFallback("preserve-newlines", "formatter.preserve-newlines", opts.Formatter.PreserveNewlines)
	opts.Formatter.MaxPreserveNewlines = getIntWithFallback("max-preserve-newlines", "formatter.max-preserve-newlines", opts.Formatter.MaxPreserveNewlines)
	opts.Formatter.EndWithNewline = getBoolWithFallback("newline-at-end", "formatter.newline-at-end", opts.Formatter.EndWithNewline)
	opts.Formatter.WrapLineLength = getIntWithFallback("wrap-line-length", "formatter.wrap-line-length", opts.Formatter.WrapLineLength)
	opts.Formatter.IndentEmptyLines = getBoolWithFallback("indent-empty-lines", "formatter.indent-empty-lines", opts.Formatter.IndentEmptyLines)

	opts.ClassName.Lowercase = getBoolWithFallback("lowercase", "classname.lowercase", opts.ClassName.Lowercase)
	opts.ClassName.ReplaceWith = getStringWithFallback("replace-with", "classname.replace-with", opts.ClassName.ReplaceWith)
	opts.ClassName.Prefix = getStringWithFallback("prefix", "classname.prefix", opts.ClassName.Prefix)
	opts.ClassName.Suffix = getStringWithFallback("suffix", "classname.suffix", opts.ClassName.Suffix)

	return opts
}

// includePatterns resolves the input globs used when no files are given on
// the command line: flag key first, then config key, then the default.
func includePatterns() []string {
	if v := k.Strings("include"); len(v) > 0 {
		return v
	}
	if v := k.Strings("convert.include"); len(v) > 0 {
		return v
	}
	return []string{"**/*.html"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if k.Exists(flagKey) {
		return k.String(flagKey)
	}
	if k.Exists(configKey) {
		return k.String(configKey)
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
