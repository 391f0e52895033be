package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/example/docmerge/internal/config"
	"github.com/example/docmerge/internal/inheritor"
	"github.com/example/docmerge/internal/logging"
	"github.com/example/docmerge/pkg/docstring"
)

func newApplyCommand() *cobra.Command {
	var opts ApplyConfig

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Merge a batch of docstrings listed in a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunApply(cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.ManifestPath, "manifest", "", "YAML manifest listing the merges to perform")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory for merged docstrings (default: overwrite the child files)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent merges (default: number of CPUs)")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

// ApplyConfig holds configuration for batch application.
type ApplyConfig struct {
	ManifestPath string
	OutputDir    string
	Workers      int
}

// Manifest lists the merges a batch run performs. Ancestors are ordered
// nearest first.
type Manifest struct {
	Entries []ManifestEntry `yaml:"entries" validate:"required,min=1,dive"`
}

// ManifestEntry describes one child docstring and its ancestor chain.
type ManifestEntry struct {
	Child     string   `yaml:"child" validate:"required"`
	Ancestors []string `yaml:"ancestors" validate:"required,min=1,dive,required"`
	Params    []string `yaml:"params"`
	Class     bool     `yaml:"class"`
	Dialect   string   `yaml:"dialect" validate:"omitempty,oneof=numpy google"`
	Output    string   `yaml:"output"`
}

var validateManifest = validator.New()

// RunApply loads the manifest and merges every entry, bounded-concurrently.
// The global configuration supplies the default dialect, the enable gate,
// the similarity threshold and the logger.
func RunApply(stdout io.Writer, opts *ApplyConfig) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	manifest, err := loadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}

	// One inheritor per dialect so all entries of a dialect share a parse
	// cache. Built up front; the workers only read it.
	inheritors := map[string]*inheritor.Inheritor{}
	for _, name := range []string{"numpy", "google"} {
		dialect, err := docstring.DialectByName(name)
		if err != nil {
			return err
		}
		inheritors[name] = inheritor.New(inheritor.Options{
			Dialect:         dialect,
			Enabled:         cfg.Enabled,
			SimilarityRatio: cfg.SimilarityRatio,
			Logger:          logger,
		})
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, entry := range manifest.Entries {
		entry := entry
		g.Go(func() error {
			if err := applyEntry(opts, cfg, inheritors, entry); err != nil {
				return fmt.Errorf("%s: %w", entry.Child, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "merged %d docstrings\n", len(manifest.Entries))
	return nil
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := validateManifest.Struct(&manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &manifest, nil
}

func applyEntry(opts *ApplyConfig, cfg *config.Config, inheritors map[string]*inheritor.Inheritor, entry ManifestEntry) error {
	dialect := entry.Dialect
	if dialect == "" {
		dialect = cfg.Dialect
	}
	in := inheritors[dialect]

	childDoc, err := readDocstring(entry.Child)
	if err != nil {
		return err
	}
	ancestorDocs := make([]string, 0, len(entry.Ancestors))
	for _, path := range entry.Ancestors {
		doc, err := readDocstring(path)
		if err != nil {
			return err
		}
		ancestorDocs = append(ancestorDocs, doc)
	}

	var merged string
	if entry.Class {
		merged, err = in.InheritClassChain(ancestorDocs, childDoc)
	} else {
		merged, err = in.InheritFunctionChain(ancestorDocs, childDoc, entry.Params)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath(opts, entry), []byte(merged+"\n"), 0o600)
}

func outputPath(opts *ApplyConfig, entry ManifestEntry) string {
	if entry.Output != "" {
		return entry.Output
	}
	if opts.OutputDir != "" {
		return filepath.Join(opts.OutputDir, filepath.Base(entry.Child))
	}
	return entry.Child
}
