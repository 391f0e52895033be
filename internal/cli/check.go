package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/docmerge/pkg/docstring"
)

// ErrDuplicateSections is returned by check when a child docstring repeats
// its parent above the threshold.
var ErrDuplicateSections = errors.New("near-duplicate sections found")

func newCheckCommand() *cobra.Command {
	var opts CheckConfig

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report child docstring sections that duplicate the parent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunCheck(cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.ParentPath, "parent", "", "File holding the parent docstring")
	cmd.Flags().StringVar(&opts.ChildPath, "child", "", "File holding the child docstring")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "numpy", "Docstring dialect: numpy or google")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0.8, "Similarity ratio above which a section is reported")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

// CheckConfig holds configuration for the duplicate check.
type CheckConfig struct {
	ParentPath string
	ChildPath  string
	Dialect    string
	Threshold  float64
}

// RunCheck compares the child docstring against the parent section by
// section and lists the near-duplicates. A non-empty result is an error so
// the command exits non-zero.
func RunCheck(stdout io.Writer, opts *CheckConfig) error {
	dialect, err := docstring.DialectByName(opts.Dialect)
	if err != nil {
		return err
	}

	parentDoc, err := readDocstring(opts.ParentPath)
	if err != nil {
		return err
	}
	childDoc, err := readDocstring(opts.ChildPath)
	if err != nil {
		return err
	}

	matches := docstring.Similar(dialect.Parse(parentDoc), dialect.Parse(childDoc), opts.Threshold)
	if len(matches) == 0 {
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(stdout, "%s: %.2f\n", m.Section, m.Ratio)
	}
	return fmt.Errorf("%d %w", len(matches), ErrDuplicateSections)
}
