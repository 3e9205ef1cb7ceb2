package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/symchar/character"
	"github.com/katalvlaran/symchar/partition"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrNegativeDegree is returned for n < 0.
	ErrNegativeDegree = errors.New("chartable: degree must be non-negative")

	// ErrDegreeTooLarge is returned for n above the configured max_degree.
	ErrDegreeTooLarge = errors.New("chartable: degree exceeds max_degree")

	// ErrSizeMismatch is returned when λ and ρ partition different integers.
	ErrSizeMismatch = errors.New("chartable: λ and ρ must partition the same n")

	// ErrUnknownFormat is returned for an unsupported --format value.
	ErrUnknownFormat = errors.New("chartable: unknown output format")
)

// app carries flags, config and the logger shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	format     string
	verify     bool

	cfg    *Config
	logger *zap.Logger
}

// newRootCmd builds the command tree with fresh state, so tests can run it
// repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "chartable",
		Short: "Character tables of the symmetric groups",
		Long: `chartable computes irreducible character values of the symmetric group S_n
with the Murnaghan–Nakayama rule.

Rows are characters and columns are conjugacy classes (cycle types), both
indexed by the partitions of n in reverse lexicographic order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "output format: text, yaml or json")

	tableCmd := &cobra.Command{
		Use:   "table N",
		Short: "Print the character table of S_N",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTable,
	}
	tableCmd.Flags().BoolVar(&a.verify, "verify", false, "check row orthogonality of the table")

	valueCmd := &cobra.Command{
		Use:   "value LAMBDA RHO",
		Short: "Print one character value χ_λ(ρ)",
		Long: `Print χ_λ(ρ) for a character λ and a cycle type ρ.

Partitions are written as comma or space separated parts, e.g. 3,2,1 or "[3 2 1]".`,
		Args: cobra.ExactArgs(2),
		RunE: a.runValue,
	}

	partitionsCmd := &cobra.Command{
		Use:   "partitions N",
		Short: "List the partitions of N in table order",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runPartitions,
	}

	root.AddCommand(tableCmd, valueCmd, partitionsCmd)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if cmd.Flags().Changed("verify") {
		cfg.Verify = a.verify
	}
	a.cfg = cfg

	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	n, err := a.parseDegree(args[0])
	if err != nil {
		return err
	}

	ev := character.NewEvaluator(character.WithLogger(a.logger))
	tbl := ev.Table(n)
	if a.cfg.Verify {
		if err := character.CheckOrthogonality(tbl); err != nil {
			return fmt.Errorf("verify S_%d: %w", n, err)
		}
		a.logger.Debug("orthogonality verified", zap.Int("degree", n))
	}

	return writeTable(cmd.OutOrStdout(), tbl, a.cfg.Format)
}

func (a *app) runValue(cmd *cobra.Command, args []string) error {
	lambda, err := partition.Parse(args[0])
	if err != nil {
		return fmt.Errorf("character %q: %w", args[0], err)
	}
	rho, err := partition.Parse(args[1])
	if err != nil {
		return fmt.Errorf("class %q: %w", args[1], err)
	}
	if lambda.Sum() != rho.Sum() {
		return fmt.Errorf("%w: |%v| = %d, |%v| = %d", ErrSizeMismatch, lambda, lambda.Sum(), rho, rho.Sum())
	}
	if err := a.checkDegree(lambda.Sum()); err != nil {
		return err
	}

	ev := character.NewEvaluator(character.WithLogger(a.logger))
	v := ev.Value(lambda, rho)
	a.logger.Debug("character value computed",
		zap.Stringer("lambda", lambda),
		zap.Stringer("rho", rho),
		zap.Int("computed", ev.Stats().Misses),
	)

	return writeValue(cmd.OutOrStdout(), valueResult{Lambda: lambda, Rho: rho, Value: v}, a.cfg.Format)
}

func (a *app) runPartitions(cmd *cobra.Command, args []string) error {
	n, err := a.parseDegree(args[0])
	if err != nil {
		return err
	}

	return writePartitions(cmd.OutOrStdout(), partition.Of(n), a.cfg.Format)
}

// parseDegree reads n from arg and checks it.
func (a *app) parseDegree(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("degree %q: %w", arg, err)
	}

	return n, a.checkDegree(n)
}

// checkDegree enforces 0 ≤ n ≤ max_degree.
func (a *app) checkDegree(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDegree, n)
	}
	if n > a.cfg.MaxDegree {
		return fmt.Errorf("%w: %d > %d", ErrDegreeTooLarge, n, a.cfg.MaxDegree)
	}

	return nil
}
