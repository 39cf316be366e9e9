package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	yang "github.com/PudgeKim/yang"
	"github.com/PudgeKim/yang/i18n"
	"github.com/PudgeKim/yang/internal/config"
)

// app carries the state shared by the subcommands.
type app struct {
	fs afero.Fs

	configPath string
	dir        string
	format     string
	lang       string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the yang command tree. fs is the filesystem
// collections are read from; nil selects the OS filesystem.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	a := &app{fs: fs, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "yang",
		Short: "Load and check YAML resource tables",
		Long: `yang loads resource tables (one document per collection) and checks that
no record property holds a mapping, directly or inside a sequence.

Examples:
  yang check --dir resources monster item
  yang list --dir resources
  yang get --dir resources monster 1 Drops`,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to config file (default ./yang.yaml)")
	f.StringVarP(&a.dir, "dir", "d", "", "Directory holding the collection documents")
	f.StringVarP(&a.format, "format", "f", "", "Document format: yaml or json")
	f.StringVar(&a.lang, "lang", "", "Message language: en or ja")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logs")

	cmd.AddCommand(a.newCheckCommand(), a.newListCommand(), a.newGetCommand())
	return cmd
}

func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = a.dir
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("lang") {
		cfg.Lang = a.lang
	}
	a.cfg = cfg
	i18n.SetLanguage(cfg.Lang)

	if a.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to create logger: %v\n", err)
			logger = zap.NewNop()
		}
		a.logger = logger
	}
	return nil
}

func (a *app) loader() (*yang.Loader, error) {
	format, err := yang.FormatByName(a.cfg.Format)
	if err != nil {
		return nil, err
	}
	return yang.NewLoader(
		yang.WithFormat(format),
		yang.WithFs(a.fs),
		yang.WithLogger(a.logger),
	), nil
}

// collections picks the collection names: arguments first, then the
// configured list, then every document in the directory.
func (a *app) collections(l *yang.Loader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(a.cfg.Collections) > 0 {
		return a.cfg.Collections, nil
	}
	entries, err := afero.ReadDir(a.fs, a.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.cfg.Dir, err)
	}
	ext := "." + l.Format().Extension()
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no *%s documents found in %s", ext, a.cfg.Dir)
	}
	sort.Strings(names)
	return names, nil
}

// load builds a loader and loads the selected collections.
func (a *app) load(args []string) (*yang.Loader, []string, error) {
	l, err := a.loader()
	if err != nil {
		return nil, nil, err
	}
	names, err := a.collections(l, args)
	if err != nil {
		return nil, nil, err
	}
	if err := l.Load(a.cfg.Dir, names); err != nil {
		return nil, nil, err
	}
	a.logger.Debug("collections loaded", zap.Strings("collections", names), zap.String("dir", a.cfg.Dir))
	return l, names, nil
}
