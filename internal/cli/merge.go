package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/docmerge/internal/inheritor"
	"github.com/example/docmerge/pkg/docstring"
)

func newMergeCommand() *cobra.Command {
	var opts MergeConfig

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a child docstring with its parent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunMerge(cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.ParentPath, "parent", "", "File holding the parent docstring")
	cmd.Flags().StringVar(&opts.ChildPath, "child", "", "File holding the child docstring")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", "numpy", "Docstring dialect: numpy or google")
	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "Signature parameter name, in order (repeatable)")
	cmd.Flags().BoolVar(&opts.ClassLevel, "class", false, "Merge class-level docstrings (no call signature)")
	cmd.Flags().StringVar(&opts.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("child")

	return cmd
}

// MergeConfig holds configuration for a single merge.
type MergeConfig struct {
	ParentPath string
	ChildPath  string
	Dialect    string
	Params     []string
	ClassLevel bool
	OutputPath string
}

// RunMerge merges the child docstring with the parent docstring and writes
// the rendered result.
func RunMerge(stdout io.Writer, opts *MergeConfig) error {
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

	in := inheritor.New(inheritor.Options{Dialect: dialect, Enabled: true})

	var merged string
	if opts.ClassLevel {
		merged, err = in.InheritClass(parentDoc, childDoc)
	} else {
		merged, err = in.InheritFunction(parentDoc, childDoc, opts.Params)
	}
	if err != nil {
		return err
	}

	return writeResult(stdout, opts.OutputPath, merged)
}

func readDocstring(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read docstring: %w", err)
	}
	return string(data), nil
}

func writeResult(stdout io.Writer, path, text string) error {
	if path == "-" || path == "" {
		_, err := io.WriteString(stdout, text+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
