// Package cli implements the syncparse command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/syncparse/internal/locate"
	"github.com/mesh-intelligence/syncparse/internal/paths"
	"github.com/mesh-intelligence/syncparse/internal/report"
	"github.com/mesh-intelligence/syncparse/internal/scan"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	database  string
	path      string
	outFile   string
	verbose   int
	format    string
	workers   int
	logLevel  string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags  rootFlags
	fs     afero.Fs
	loc    *time.Location
	config *viper.Viper
	logger *zap.Logger
}

// NewRootCmd creates the top-level "syncparse" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{fs: afero.NewOsFs(), loc: time.Local, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "syncparse",
		Short: "Recover accounts, devices and browsing artifacts from browser sync databases",
		Long: `syncparse reads the sync-state database a Chromium-family browser keeps in
each profile (Sync Data/SyncData.sqlite3) and reports the accounts, attached
computers, identity details, extensions and synced sites it holds.

Point it at a recovered database with --database, or at a filesystem root
(for example a mounted image) with --path to search the default profile
locations of Windows, macOS and Linux.`,
		SilenceUsage:          true,
		SilenceErrors:         true,
		PersistentPreRunE:     a.setup,
		PersistentPostRun:     a.teardown,
		RunE:                  a.runScan,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.IntVarP(&a.flags.verbose, "verbose", "v", types.DefaultVerbosity, "show messages at or above this level (1-3, 3 shows least)")
	pf.StringVarP(&a.flags.outFile, "outFile", "o", "", "write the report to this file instead of the screen (overwritten)")
	pf.StringVar(&a.flags.logLevel, "log-level", types.DefaultLogLevel, "diagnostic log level (debug, info, warn, error)")

	f := root.Flags()
	f.StringVarP(&a.flags.database, "database", "d", "", "sync database file to parse")
	f.StringVarP(&a.flags.path, "path", "p", "", "filesystem root to search for sync databases")
	f.StringVar(&a.flags.format, "format", types.FormatText, "report format (text, yaml)")
	f.IntVar(&a.flags.workers, "workers", types.DefaultWorkers, "databases processed at once")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newTablesCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return exitUserError
	}
	return exitSuccess
}

// setup loads configuration and builds the diagnostic logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}
	if err := bindFlags(v, cmd); err != nil {
		return sysError(err)
	}
	a.config = v

	logger, err := newLogger(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return userError(err)
	}
	a.logger = logger
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	_ = a.logger.Sync()
}

// runConfig returns the effective configuration: flags over config.yaml
// over defaults.
func (a *app) runConfig() (types.Config, error) {
	outFile, err := paths.ResolveOutFile(a.flags.outFile, a.config.GetString(cfgKeyOutFile))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve out file: %w", err)
	}
	cfg := types.Config{
		Verbosity: a.config.GetInt(cfgKeyVerbose),
		OutFile:   outFile,
		Format:    a.config.GetString(cfgKeyFormat),
		Workers:   a.config.GetInt(cfgKeyWorkers),
		LogLevel:  a.config.GetString(cfgKeyLogLevel),
	}
	return cfg, cfg.Validate()
}

// openOutput returns the report destination and a function releasing it.
func (a *app) openOutput(cmd *cobra.Command, cfg types.Config) (io.Writer, func() error, error) {
	if cfg.OutFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	out, err := report.CreateOutFile(cfg.OutFile)
	if err != nil {
		return nil, nil, err
	}
	return out, out.Close, nil
}

func (a *app) runScan(cmd *cobra.Command, args []string) (err error) {
	if a.flags.database == "" && a.flags.path == "" {
		return userError(errors.New("one of --database or --path is required"))
	}

	cfg, err := a.runConfig()
	if err != nil {
		return userError(err)
	}

	// Inputs are checked before the out file is truncated.
	if err := a.validateDatabase(cmd, cfg); err != nil {
		return err
	}

	out, release, err := a.openOutput(cmd, cfg)
	if err != nil {
		if errors.Is(err, types.ErrOutFileBusy) {
			return userError(err)
		}
		return sysError(err)
	}
	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			err = sysError(fmt.Errorf("close report: %w", cerr))
		}
	}()

	rc := report.NewContext(out, cfg.Verbosity, a.loc)

	dbs, err := a.collect(rc)
	if err != nil {
		return err
	}

	scanner := scan.New(
		scan.WithFs(a.fs),
		scan.WithLogger(a.logger),
		scan.WithWorkers(cfg.Workers),
		scan.WithLocation(a.loc),
	)
	results := scanner.All(dbs)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	rc.Printf(report.LevelLow, "Processed %d database(s), %d failed", len(results), failed)
	rc.Println(report.LevelLow, "")

	if err := report.Write(rc, cfg.Format, results); err != nil {
		return sysError(fmt.Errorf("write report: %w", err))
	}
	return nil
}

// validateDatabase checks --database before anything is opened or written.
// The failure is reported at high severity on the screen, or on stderr when
// the report goes to a file.
func (a *app) validateDatabase(cmd *cobra.Command, cfg types.Config) error {
	if a.flags.database == "" {
		return nil
	}
	err := locate.ValidateDatabase(a.fs, a.flags.database)
	if err == nil {
		return nil
	}
	w := cmd.OutOrStdout()
	if cfg.OutFile != "" {
		w = cmd.ErrOrStderr()
	}
	report.NewContext(w, cfg.Verbosity, a.loc).Println(report.LevelHigh, "Error: "+err.Error())
	return userError(err)
}

// collect returns the validated --database followed by the databases found
// under --path. An empty search is reported and is not an error.
func (a *app) collect(rc *report.Context) ([]string, error) {
	var dbs []string

	if a.flags.database != "" {
		dbs = append(dbs, a.flags.database)
	}

	if a.flags.path != "" {
		found, err := locate.Search(a.fs, a.flags.path)
		switch {
		case errors.Is(err, types.ErrNoDatabasesFound):
			rc.Printf(report.LevelMedium, "No sync databases found under %s", a.flags.path)
		case err != nil:
			return nil, sysError(fmt.Errorf("search %s: %w", a.flags.path, err))
		default:
			rc.Printf(report.LevelLow, "Found %d sync database(s) under %s", len(found), a.flags.path)
			for _, p := range found {
				rc.Println(report.LevelLow, "  "+p)
			}
			dbs = append(dbs, found...)
		}
	}

	return dbs, nil
}
