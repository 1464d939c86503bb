// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading, the lazily opened
// slot store and the version reporting shared by every subcommand.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wondertext/wondertext/buildvars"
	"github.com/wondertext/wondertext/internal/clipboard"
	"github.com/wondertext/wondertext/internal/config"
	"github.com/wondertext/wondertext/internal/db"
	"github.com/wondertext/wondertext/internal/i18n"
	"github.com/wondertext/wondertext/internal/logging"
	"github.com/wondertext/wondertext/internal/morse"
	"github.com/wondertext/wondertext/internal/speech"
	"github.com/wondertext/wondertext/internal/textops"
	"github.com/wondertext/wondertext/internal/tui"
	"golang.org/x/term"
)

var (
	// version is injected through buildvars at link time.
	version   = buildvars.VersionOrDefault("dev")
	gitCommit = "dev" // set at build time with the short commit SHA
	buildDate = ""    // set at build time (RFC3339)
)

// app holds the state shared by the commands of one root command.
type app struct {
	cfgFile string
	verbose bool

	config config.Config
	store  db.Store

	clipboard  clipboard.Clipboard
	newSpeaker func(command string, rate int) (tui.Speaker, error)
	// stdinIsTerminal reports whether input has to come from arguments.
	stdinIsTerminal func() bool
	runTUI          func(deps tui.Deps, text string) error
}

func defaultApp() *app {
	return &app{
		clipboard:       clipboard.System(),
		newSpeaker:      newSystemSpeaker,
		stdinIsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		runTUI:          tui.Run,
	}
}

// newSystemSpeaker avoids handing a typed nil *speech.Speaker to callers.
func newSystemSpeaker(command string, rate int) (tui.Speaker, error) {
	s, err := speech.New(command, rate)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Execute runs the CLI entrypoint. The main package calls it and handles
// the process exit. An interrupt cancels the command context, which also
// stops running speech.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root := NewRootCmd()
	root.SetArgs(protectTextArgs(root, os.Args[1:]))
	return root.ExecuteContext(ctx)
}

// NewRootCmd creates the root command with its subcommands. Each call
// returns an independent tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wondertext",
		Short: "Wondertext transforms, analyzes and stores text.",
		Long: `Wondertext is a small text toolkit: case conversion, whitespace cleanup,
Morse code, text statistics, clipboard and speech helpers and named
storage slots.

Subcommands read their input from arguments or, when none are given, from
standard input. Running without a subcommand launches the interactive TUI.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		Args:               cobra.NoArgs,
		RunE:               a.runEditor,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (including DB logs)")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./wondertext.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("storage.slot", db.DefaultSlot, "Storage slot used by save, load and clear-storage")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		readsText(newTransformCmd(a, "encode", "Encode text as Morse code", morse.Encode)),
		readsText(newTransformCmd(a, "decode", "Decode Morse code to text", morse.Decode)),
		readsText(newTransformCmd(a, "upper", "Convert text to uppercase", textops.Upper)),
		readsText(newTransformCmd(a, "lower", "Convert text to lowercase", textops.Lower)),
		readsText(newTransformCmd(a, "trim", "Collapse runs of whitespace and trim the ends", textops.CollapseSpaces)),
		readsText(newStatsCmd(a)),
		newTableCmd(),
		readsText(newSaveCmd(a)),
		newLoadCmd(a),
		newClearStorageCmd(a),
		newSlotsCmd(a),
		readsText(newCopyCmd(a)),
		newPasteCmd(a),
		readsText(newSpeakCmd(a)),
		newBackupCmd(a),
		newRestoreCmd(a),
		newDBMaintainCmd(a),
		versionCmd,
	)
	return cmd
}

// textArgsAnnotation marks commands whose positional arguments are text.
const textArgsAnnotation = "wondertext/text-args"

func readsText(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[textArgsAnnotation] = "true"
	return cmd
}

// protectTextArgs lets Morse code such as "-.-" or "--- ..." through as
// text: for commands marked with readsText it inserts "--" before the first
// argument after the command name that consists only of dots, dashes,
// slashes and spaces. Arguments are returned unchanged when a "--" is
// already present.
func protectTextArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root || cmd.Annotations[textArgsAnnotation] == "" {
		return args
	}
	afterName := false
	for i, arg := range args {
		switch {
		case arg == "--":
			return args
		case !afterName:
			afterName = arg == cmd.Name()
		case looksLikeMorse(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func looksLikeMorse(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return false
	}
	return strings.Trim(arg, ".-/ ") == ""
}

// setup loads the configuration and initializes i18n. It runs before every
// command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	a.config, err = config.LoadConfig[config.Config](cmd, defaults, path)
	// A missing file is expected on first run: persist the defaults so the
	// user has something to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&a.config, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in the file fall back to defaults.
	if a.config.Database.Type == "" {
		a.config.Database.Type = defaults["database.type"].(string)
	}
	if a.config.Database.Dsn == "" {
		a.config.Database.Dsn = defaults["database.dsn"].(string)
	}
	if a.config.Language == "" {
		a.config.Language = defaults["language"].(string)
	}
	if a.config.Storage.Slot == "" {
		a.config.Storage.Slot = db.DefaultSlot
	}
	if a.config.Editor.ReadingWPM <= 0 {
		a.config.Editor.ReadingWPM = defaults["editor.reading_wpm"].(int)
	}

	i18n.Init(a.config.Language)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// openStore opens the configured database on first use.
func (a *app) openStore() (db.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := db.New(a.config.Database.Type, a.config.Database.Dsn)
	if err != nil {
		return nil, errors.New(i18n.T("config.error_init_db", err))
	}
	a.store = store
	return store, nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	return a.close()
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// saveConfig persists c to the file it was loaded from, or to the user
// config path.
func (a *app) saveConfig(c config.Config) error {
	a.config = c
	if a.cfgFile != "" {
		return config.WriteConfigFileTo(a.cfgFile, &c)
	}
	return config.WriteConfigFile(&c, false)
}

// speaker returns the configured speech backend or nil when none is
// available.
func (a *app) speaker() tui.Speaker {
	sp, err := a.newSpeaker(a.config.Speech.Command, a.config.Speech.Rate)
	if err != nil {
		logging.Debugf("speech disabled: %v", err)
		return nil
	}
	return sp
}

// runEditor starts the TUI. Logging is silenced while the TUI owns the
// terminal.
func (a *app) runEditor(cmd *cobra.Command, _ []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	deps := tui.Deps{
		Store:      store,
		Clipboard:  a.clipboard,
		Speaker:    a.speaker(),
		Config:     a.config,
		SaveConfig: a.saveConfig,
	}
	if !a.verbose {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(os.Stderr)
	}
	return a.runTUI(deps, "")
}

// readInput joins args, or reads standard input when no args are given and
// stdin is not a terminal. One trailing newline is dropped.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if a.stdinIsTerminal() {
		return "", errors.New(i18n.T("cli.no_input"))
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return "", errors.New(i18n.T("cli.no_input"))
	}
	return text, nil
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/wondertext/wondertext" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
