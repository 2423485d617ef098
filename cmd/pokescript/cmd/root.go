// Package cmd contains all CLI commands for pokescript.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mimiqdev/pokescript/internal/catalog"
	"github.com/mimiqdev/pokescript/internal/colorscripts"
	"github.com/mimiqdev/pokescript/internal/config"
	"github.com/mimiqdev/pokescript/internal/generation"
	"github.com/mimiqdev/pokescript/internal/pokemon"
	"github.com/mimiqdev/pokescript/internal/render"
	"github.com/mimiqdev/pokescript/internal/selector"
	"github.com/mimiqdev/pokescript/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootFlags holds the selection flags of the root command.
type rootFlags struct {
	list          bool
	name          string
	form          string
	shiny         bool
	noTitle       bool
	random        string
	randomByNames string
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgFile string
		flags   rootFlags
	)

	rootCmd := &cobra.Command{
		Use:   "pokescript [OPTION] [POKEMON NAME]",
		Short: "CLI utility to print out unicode image of a pokemon in your shell",
		Long: `pokescript prints a colored unicode sprite of a pokemon in your terminal.

Pick a pokemon by name, at random from one or more generations, or at
random from a list of names. Every random encounter has a 1 in 128 chance
of being shiny.

Examples:
  pokescript pikachu
  pokescript --name raichu --form alola --big
  pokescript --random            # any generation
  pokescript --random=1-3        # generations 1 to 3
  pokescript --random 2,4        # generation 2 or 4
  pokescript --random-by-names charmander,bulbasaur,squirtle

Sprites:
  Only a few sprites ship inside the binary. To get every pokemon, unpack a
  full colorscripts pack laid out as {small,large}/{regular,shiny}/<name>
  and point colorscripts_dir in the config file (or the
  POKESCRIPT_COLORSCRIPTS_DIR environment variable) at it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// init writes the file rather than reading it.
			return initConfig(v, cfgFile, cmd.Name() != "init")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, v, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pokescript/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	f := rootCmd.Flags()
	f.BoolVarP(&flags.list, "list", "l", false, "Print list of all pokemon")
	f.StringVarP(&flags.name, "name", "n", "", "Select pokemon by name")
	f.StringVarP(&flags.form, "form", "f", "", "Show an alternate form of a pokemon")
	f.BoolVarP(&flags.shiny, "shiny", "s", false, "Show the shiny version of the pokemon instead")
	f.BoolP("big", "b", false, "Show a larger version of the sprite")
	f.Bool("show-title", true, "Display the pokemon name")
	f.BoolVar(&flags.noTitle, "no-title", false, "Do not display pokemon name")
	f.StringVarP(&flags.random, "random", "r", "", "Show a random pokemon from a specific generation (1-8) or range (eg. 1-3)")
	f.Lookup("random").NoOptDefVal = generation.DefaultSpec
	f.StringVar(&flags.randomByNames, "random-by-names", "", "Show a random pokemon from a comma-separated list of names (eg. charmander,bulbasaur)")

	v.BindPFlag("large", f.Lookup("big"))
	v.BindPFlag("show_title", f.Lookup("show-title"))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", pokemon.ErrUsage, err)
	})

	rootCmd.AddCommand(
		newInitCmd(v),
		newBrowseCmd(v),
		newGenerationsCmd(),
	)

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, out, errOut io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	if err := rootCmd.Execute(); err != nil {
		reportError(errOut, err)
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pokemon.ErrUsage):
		return 2
	default:
		return 1
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string, readFile bool) error {
	def := config.Default()
	v.SetDefault("show_title", def.ShowTitle)
	v.SetDefault("large", def.Large)
	v.SetDefault("colorscripts_dir", def.ColorscriptsDir)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix("POKESCRIPT")
	v.AutomaticEnv()

	explicit := cfgFile != ""
	if !explicit {
		dir, err := config.GetConfigDir()
		if err != nil {
			// No home directory; run on defaults and environment.
			return nil
		}
		cfgFile = filepath.Join(dir, config.FileName)
	}
	v.Set("config_file", cfgFile)
	v.SetConfigFile(cfgFile)
	if !readFile {
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// loadConfig returns the merged configuration.
func loadConfig(v *viper.Viper) (config.Config, error) {
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a debug logger on w when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// app bundles the loaded catalog and sprite store.
type app struct {
	cfg     config.Config
	catalog *catalog.Catalog
	store   *colorscripts.Store
	logger  *slog.Logger
}

func loadApp(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	store, err := colorscripts.Open(cfg.ColorscriptsDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded",
		slog.Int("pokemon", cat.Len()),
		slog.String("colorscripts_dir", cfg.ColorscriptsDir),
		slog.String("config_file", v.GetString("config_file")))

	return &app{cfg: cfg, catalog: cat, store: store, logger: logger}, nil
}

// buildRequest works out which selection mode the flags ask for.
func buildRequest(cmd *cobra.Command, flags rootFlags, args []string) (pokemon.SelectionRequest, error) {
	req := pokemon.SelectionRequest{
		Form:  flags.form,
		Shiny: flags.shiny,
	}

	randomSet := cmd.Flags().Changed("random")
	spec := flags.random
	// "--random 3" leaves the generation list as a positional argument.
	if randomSet && spec == generation.DefaultSpec && len(args) == 1 {
		spec = args[0]
		args = nil
	}

	name := flags.name
	if len(args) == 1 {
		if name != "" {
			return req, fmt.Errorf("%w: pokemon name given twice (%q and %q)", pokemon.ErrUsage, name, args[0])
		}
		name = args[0]
	}

	var modes []pokemon.Mode
	if flags.list {
		modes = append(modes, pokemon.ModeList)
	}
	if name != "" {
		modes = append(modes, pokemon.ModeExplicit)
		req.Name = name
	}
	if randomSet {
		modes = append(modes, pokemon.ModeRandomByGeneration)
		req.GenerationSpec = spec
	}
	if cmd.Flags().Changed("random-by-names") {
		modes = append(modes, pokemon.ModeRandomByNames)
		req.Names = flags.randomByNames
	}

	switch len(modes) {
	case 0:
		req.Mode = pokemon.ModeNone
	case 1:
		req.Mode = modes[0]
	default:
		return req, fmt.Errorf("%w: %s and %s cannot be used together", pokemon.ErrUsage, modes[0], modes[1])
	}

	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

func runRoot(cmd *cobra.Command, v *viper.Viper, flags rootFlags, args []string) error {
	req, err := buildRequest(cmd, flags, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch req.Mode {
	case pokemon.ModeNone:
		if req.Form != "" {
			return fmt.Errorf("%w: --form requires a pokemon name", pokemon.ErrUsage)
		}
		return cmd.Help()
	case pokemon.ModeList:
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		return cat.WriteNames(out)
	}

	a, err := loadApp(cmd, v)
	if err != nil {
		return err
	}
	req.Large = a.cfg.Large
	showTitle := a.cfg.ShowTitle && !flags.noTitle

	sel := selector.New(a.catalog, selector.WithLogger(a.logger))
	res, err := sel.Resolve(req)
	warnRejected(cmd.ErrOrStderr(), res.Rejected)
	if err != nil {
		return err
	}

	a.logger.Debug("rendering", slog.String("key", res.Asset.Key()), slog.Bool("title", showTitle))
	return render.New(a.store, out).Render(res.Asset, showTitle)
}

func warnStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Foreground(tui.ColorPrimary)
}

// warnRejected prints one line per name missing from the catalog.
func warnRejected(w io.Writer, rejected []string) {
	style := warnStyle(w)
	for _, name := range rejected {
		fmt.Fprintln(w, style.Render("Invalid pokemon "+name))
	}
}

const spritePackHint = "Only a few sprites are bundled. Set colorscripts_dir or POKESCRIPT_COLORSCRIPTS_DIR to a full colorscripts pack, see 'pokescript --help'."

// reportError prints err with any extra diagnostics it carries.
func reportError(w io.Writer, err error) {
	var formErr *pokemon.UnknownFormError
	switch {
	case errors.As(err, &formErr):
		fmt.Fprintf(w, "Invalid form '%s' for pokemon %s\n", formErr.Form, formErr.Name)
		if len(formErr.Alternatives) == 0 {
			fmt.Fprintf(w, "No alternate forms available for %s\n", formErr.Name)
			return
		}
		fmt.Fprintln(w, "Available alternate forms are:")
		for _, alt := range formErr.Alternatives {
			fmt.Fprintf(w, "- %s\n", alt)
		}
	case errors.Is(err, pokemon.ErrNoValidNames):
		fmt.Fprintln(w, "No correct pokemon names have been provided.")
	case errors.Is(err, pokemon.ErrUsage):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Run 'pokescript --help' for usage.")
	case errors.Is(err, pokemon.ErrAssetNotFound):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, spritePackHint)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
