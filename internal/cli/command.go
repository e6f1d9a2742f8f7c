package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dl/statik/internal/input"
	"github.com/dl/statik/internal/output"
)

// Version is the version identifier printed by -v.
const Version = 1

// Exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const synopsis = "statik [-r] [-b body_template] [-l line_template] [-v] [-h] [src] dest"

var (
	errVersion = errors.New("version requested")
	errHelp    = errors.New("help requested")
)

// usageError is an invalid command line: reported with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute runs statik with args (excluding the program name) and returns the
// process exit code. Usage, help and version go to stdout, diagnostics to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(args, stdout, stderr, input.NewLoader())
}

func execute(args []string, stdout, stderr io.Writer, reader input.Reader) int {
	logger := newLogger(stderr, verboseBuild)
	printer := output.NewPrinter(stdout)

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd := newCommand(reader, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var err error
	if isCompletionRequest(args) {
		// statik has no shell completion; these are ordinary positionals.
		err = cmd.RunE(cmd, args)
	} else {
		err = cmd.Execute()
	}
	var uerr *usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errVersion):
		printer.Version(Version)
		return ExitSuccess
	case errors.Is(err, errHelp):
		printer.Usage(synopsis, cmd.Flags().FlagUsages())
		return ExitSuccess
	case errors.As(err, &uerr):
		printer.Error(uerr)
		printer.Usage(synopsis, cmd.Flags().FlagUsages())
		return ExitFailure
	default:
		logger.Error("fatal", "err", err)
		return ExitFailure
	}
}

// isCompletionRequest reports whether cobra would route args to its hidden
// shell completion command.
func isCompletionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

// newCommand builds the root command. Flag parsing is done in RunE so flags
// are handled in command-line order: the first -v or -h stops parsing.
func newCommand(reader input.Reader, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:                synopsis,
		Short:              "Generate a static site from a directory tree",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolP("recursive", "r", false, "recurse into subdirectories")
	flags.StringP("body", "b", "", "`path` to the HTML body template")
	flags.StringP("line", "l", "", "`path` to the per-entry line template")
	flags.BoolP("version", "v", false, "print the version and exit")
	flags.BoolP("help", "h", false, "print this help and exit")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := parseArgs(cmd.Flags(), args)
		if err != nil {
			return err
		}
		return run(cfg, reader, logger)
	}
	return cmd
}

// parseArgs fills a Config from the command line.
func parseArgs(flags *pflag.FlagSet, args []string) (Config, error) {
	err := flags.ParseAll(args, func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "version":
			return errVersion
		case "help":
			return errHelp
		}
		return flags.Set(flag.Name, value)
	})
	if err != nil {
		if errors.Is(err, errVersion) || errors.Is(err, errHelp) {
			return Config{}, err
		}
		return Config{}, &usageError{err}
	}

	var cfg Config
	cfg.Recursive, _ = flags.GetBool("recursive")
	cfg.BodyTemplatePath, _ = flags.GetString("body")
	cfg.LineTemplatePath, _ = flags.GetString("line")
	cfg.Paths = flags.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, &usageError{err}
	}
	return cfg, nil
}

func run(cfg Config, reader input.Reader, logger *log.Logger) error {
	logger.Debug("arguments",
		"recursive", cfg.Recursive,
		"body", cfg.BodyTemplatePath,
		"line", cfg.LineTemplatePath,
	)
	logger.Debug("directories", "src", cfg.Src(), "dest", cfg.Dest())

	tmpl, err := LoadTemplates(cfg, reader)
	if err != nil {
		return err
	}
	logger.Debug("templates loaded", "body", len(tmpl.Body), "line", len(tmpl.Line))

	// Site generation from src into dest is not implemented.
	if cfg.Recursive {
		logger.Debug("recursive mode has no effect yet")
	}
	return nil
}

