package main

import (
	"io"
	"os"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/omniql-engine/altersql"
	"github.com/omniql-engine/altersql/config"
	"github.com/omniql-engine/altersql/engine/dialect"
	"github.com/omniql-engine/altersql/engine/translator"
)

const (
	// FlagConfig is the name of config flag.
	FlagConfig = "config"
	// FlagDialect is the name of dialect flag.
	FlagDialect = "dialect"
	// FlagTarget is the name of target flag.
	FlagTarget = "target"
	// FlagLower is the name of lower flag.
	FlagLower = "lower"
	// FlagQuote is the name of quote flag.
	FlagQuote = "quote"
	// FlagANSIQuotes is the name of ansi-quotes flag.
	FlagANSIQuotes = "ansi-quotes"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
)

// runtime holds what every subcommand needs once flags and config are merged.
type runtime struct {
	source *dialect.Dialect
	opts   translator.Options
}

// NewRootCommand builds the altersql command tree.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}
	rootCmd := &cobra.Command{
		Use:          "altersql",
		Short:        "altersql formats MySQL-family ALTER TABLE statements.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
	}
	DefineCommonFlags(rootCmd)

	rootCmd.AddCommand(
		newFormatCommand(rt),
		newCheckCommand(rt),
		newRoundTripCommand(rt),
		newImportCommand(rt),
	)
	return rootCmd
}

// DefineCommonFlags defines the flags shared by all subcommands.
func DefineCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "c", "", "Path of a TOML config file")
	cmd.PersistentFlags().StringP(FlagDialect, "d", "mysql", "Dialect of the input: mysql, mariadb or tidb")
	cmd.PersistentFlags().StringP(FlagTarget, "t", "", "Dialect of the output, defaults to the input dialect")
	cmd.PersistentFlags().Bool(FlagLower, false, "Print keywords in lower case")
	cmd.PersistentFlags().String(FlagQuote, "preserve", "Identifier quoting: preserve, always or minimal")
	cmd.PersistentFlags().Bool(FlagANSIQuotes, false, "Read double-quoted text as identifiers")
	cmd.PersistentFlags().StringP(FlagLogLevel, "L", "info", "Set the log level")
}

// init loads the config file, applies explicitly set flags on top and
// initializes the global logger.
func (rt *runtime) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg := config.DefaultConfig()

	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return errors.Trace(err)
	}
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return err
		}
	}

	if flags.Changed(FlagDialect) {
		cfg.Dialect, _ = flags.GetString(FlagDialect)
	}
	if flags.Changed(FlagTarget) {
		cfg.Format.TargetDialect, _ = flags.GetString(FlagTarget)
	}
	if flags.Changed(FlagLower) {
		if lower, _ := flags.GetBool(FlagLower); lower {
			cfg.Format.KeywordCase = translator.KeywordLower.String()
		} else {
			cfg.Format.KeywordCase = translator.KeywordUpper.String()
		}
	}
	if flags.Changed(FlagQuote) {
		cfg.Format.QuoteStyle, _ = flags.GetString(FlagQuote)
	}
	if flags.Changed(FlagANSIQuotes) {
		cfg.ANSIQuotes, _ = flags.GetBool(FlagANSIQuotes)
	}
	if flags.Changed(FlagLogLevel) {
		cfg.Log.Level, _ = flags.GetString(FlagLogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, props, err := log.InitLogger(cfg.Log.ToLogConfig())
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(logger, props)

	if rt.source, err = cfg.SourceDialect(); err != nil {
		return err
	}
	if rt.opts, err = cfg.FormatOptions(); err != nil {
		return err
	}
	log.Debug("configuration loaded",
		zap.String("dialect", rt.source.String()),
		zap.String("target", rt.opts.TargetDialect.String()),
		zap.Stringer("keyword-case", rt.opts.KeywordCase),
		zap.Stringer("quote-style", rt.opts.QuoteStyle))
	return nil
}

// readInput reads the file named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		return string(data), errors.Trace(err)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	return string(data), errors.Trace(err)
}

func newFormatCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "format [file]",
		Short: "Print the canonical text of every statement in the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			stmts, err := altersql.ParseStatementListDialect(sql, rt.source)
			if err != nil {
				return err
			}

			out := make([]string, 0, len(stmts))
			for _, stmt := range stmts {
				text, err := translator.Translate(stmt, rt.opts)
				if err != nil {
					return err
				}
				out = append(out, text)
			}
			if len(out) > 0 {
				cmd.Println(strings.Join(out, "\n"))
			}
			return nil
		},
	}
}

func newCheckCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Format a statement and re-parse the output with the target dialect's grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			text, err := altersql.Check(sql, rt.source, rt.opts)
			if text != "" {
				cmd.Println(text)
			}
			if err != nil {
				log.Warn("check failed", zap.String("target", rt.opts.TargetDialect.String()), zap.Error(err))
			}
			return err
		},
	}
}

func newRoundTripCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Verify that the formatted statement parses back unchanged",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			text, err := altersql.RoundTripDialect(sql, rt.source, rt.opts)
			if err != nil {
				return err
			}
			cmd.Println(text)
			return nil
		},
	}
}

func newImportCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Parse a statement with the TiDB grammar and print its canonical text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			stmt, err := altersql.Import(sql)
			if err != nil {
				return err
			}
			cmd.Println(altersql.Format(stmt, rt.opts))
			return nil
		},
	}
}
