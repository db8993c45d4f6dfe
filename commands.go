package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/orayew2002/xladdr/domain"
	"github.com/orayew2002/xladdr/excel"
	"github.com/orayew2002/xladdr/processor"
	"github.com/orayew2002/xladdr/report"
	"github.com/orayew2002/xladdr/template"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// errInvalidInput is returned when at least one argument could not be converted.
var errInvalidInput = errors.New("invalid input")

type app struct {
	log     zerolog.Logger
	verbose bool
}

func newRootCommand(logger zerolog.Logger) *cobra.Command {
	a := &app{log: logger}

	root := &cobra.Command{
		Use:           "xladdr",
		Short:         "Convert between spreadsheet cell addresses and row/column numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if a.verbose {
				level = zerolog.DebugLevel
			}
			a.log = a.log.Level(level)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.nameCommand(),
		a.numberCommand(),
		a.addressCommand(),
		a.parseCommand(),
		a.fillCommand(),
		a.sampleCommand(),
	)

	return root
}

func (a *app) nameCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "name NUMBER...",
		Short:   "Print the column name for each column number (27 → AA)",
		Example: "  xladdr name 1 27 703",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, arg := range args {
				n, _ := excel.ParseInteger(arg)
				name, ok := excel.ColumnNumberToName(n)
				if !ok {
					failed++
					a.log.Warn().Str("input", arg).Msg("not a positive integer")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return checkFailed(failed, len(args))
		},
	}
}

func (a *app) numberCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "number NAME...",
		Short:   "Print the column number for each column name (AA → 27)",
		Example: "  xladdr number A aa XFD",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, arg := range args {
				n, ok := excel.ColumnNameToNumber(arg)
				if !ok {
					failed++
					a.log.Warn().Str("input", arg).Msg("not a column name")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return checkFailed(failed, len(args))
		},
	}
}

func (a *app) addressCommand() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:     "address ROW COLUMN",
		Short:   "Print the address of a 1-based row and column",
		Example: "  xladdr address 7 2\n  xladdr address 5 2 --sheet Data",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, rowOK := excel.ParseInteger(args[0])
			column, colOK := excel.ParseInteger(args[1])
			if !rowOK || !colOK {
				return fmt.Errorf("%w: row %q, column %q", excel.ErrInvalidCoordinates, args[0], args[1])
			}

			address, ok := excel.RowAndColumnToAddress(row, column, sheet)
			if !ok {
				return fmt.Errorf("%w: row %d, column %d", excel.ErrInvalidCoordinates, row, column)
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sheet, "sheet", "s", "", "sheet name for a full address")

	return cmd
}

func (a *app) parseCommand() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:     "parse ADDRESS...",
		Short:   "Print each address as JSON {row, column[, sheet]}",
		Example: "  xladdr parse B7 '$B$7' \"'Data'!B5\"\n  xladdr parse A1 ZZ9 --xlsx report.xlsx",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := report.Build(args)

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range entries {
				if !e.OK {
					a.log.Warn().Str("input", e.Input).Msg("not a cell address")
					continue
				}
				if err := enc.Encode(e.Ref); err != nil {
					return fmt.Errorf("encode %q: %w", e.Input, err)
				}
			}

			if xlsxPath != "" {
				if err := report.WriteToFile(entries, xlsxPath); err != nil {
					return fmt.Errorf("report: %w", err)
				}
				a.log.Info().Str("path", xlsxPath).Int("entries", len(entries)).Msg("report written")
			}

			return checkFailed(len(report.Invalid(entries)), len(entries))
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the parsed addresses to an xlsx report")

	return cmd
}

func (a *app) fillCommand() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Expand address placeholders and merge codes in an xlsx template",
		Long: `fill walks every cell of the input workbook in two passes.

The first pass expands {{address}}, {{full_address}}, {{column}}, {{row}} and
{{ref:ADDRESS}}. The second pass applies [rows:cols] merge codes.`,
		Example: "  xladdr fill --input table.xlsx --output result.xlsx",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			placeholders := template.New()
			template.RegisterDefaults(placeholders)

			data, err := processor.New(placeholders).WithLogger(a.log).ProcessFile(input, output)
			if err != nil {
				return fmt.Errorf("placeholders: %w", err)
			}

			merges := template.New()
			template.RegisterMergeHandler(merges)

			data, err = processor.New(merges).WithLogger(a.log).ProcessBytes(data)
			if err != nil {
				return fmt.Errorf("merge codes: %w", err)
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("save: %w", err)
			}

			a.log.Info().Str("output", output).Msg("done")
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "table.xlsx", "path to the input Excel file")
	cmd.Flags().StringVarP(&output, "output", "o", "result.xlsx", "path to the output Excel file")

	return cmd
}

func (a *app) sampleCommand() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random references together with their addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 1 {
				return fmt.Errorf("%w: -n %d", errInvalidInput, n)
			}

			lines := lo.Map(domain.GenerateRefs(n), func(ref excel.Ref, _ int) string {
				return fmt.Sprintf("%d\t%d\t%s\t%s", ref.Row, ref.Column, ref.Sheet, ref)
			})
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of references to generate")

	return cmd
}

func checkFailed(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d arguments", errInvalidInput, failed, total)
}
