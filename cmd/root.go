package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/George-Madeley/Tools/internal/config"
	"github.com/George-Madeley/Tools/internal/delivery"
	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/git"
	"github.com/George-Madeley/Tools/internal/history"
	"github.com/George-Madeley/Tools/internal/logging"
	"github.com/George-Madeley/Tools/internal/models"
	"github.com/George-Madeley/Tools/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "commitmsg HOURS",
	Short: "Collect your recent commit messages",
	Long: `commitmsg gathers the commit messages one author wrote in the last HOURS
hours, optionally grouped by branch, prints them as an indented outline and
copies the result to the clipboard.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			hours, err := parseHours(args[0])
			if err != nil {
				return err
			}
			viper.Set("hours", hours)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringP("author", "a", "", "author to collect commits for (default is git user.name)")
	flags.StringP("branch", "b", "", "only collect commits reachable from this branch")
	flags.BoolP("group", "g", false, "group commits by branch")
	flags.String("format", models.DefaultFormatScheme, "git pretty-format scheme for each commit; must emit the configured separator between commits")
	flags.StringP("repo", "C", ".", "repository to query")
	flags.String("backend", git.BackendCLI, "git backend: cli or gogit")
	flags.String("clipboard", delivery.ClipboardAuto, "clipboard: auto, system, osc52 or none")
	flags.IntP("jobs", "j", 1, "concurrent branch queries in grouped mode")
	flags.Duration("timeout", 0, "timeout for each git query (default from config, 30s)")
	flags.BoolP("interactive", "i", false, "preview the report in a full-screen view")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.config/commitmsg/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	for key, flag := range map[string]string{
		"author":          "author",
		"branch":          "branch",
		"group":           "group",
		"format":          "format",
		"repo":            "repo",
		"backend":         "backend",
		"clipboard":       "clipboard",
		"jobs":            "jobs",
		"query_timeout":   "timeout",
		"interactive":     "interactive",
		"logging.verbose": "verbose",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COMMITMSG")
	// COMMITMSG_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

func parseHours(arg string) (int, error) {
	hours, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewConfigError("hours", arg, errors.New("must be a whole number of hours"))
	}
	if hours <= 0 {
		return 0, errors.NewConfigError("hours", hours, errors.New("hours must be greater than zero"))
	}
	return hours, nil
}

// run executes one collection with a loaded configuration.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Verbose)
	printer := delivery.NewPrinter(stdout, stderr, delivery.IsTerminal(stdout))

	clip, err := delivery.NewClipboard(cfg.Clipboard, stdout)
	if err != nil {
		return err
	}

	backend, err := git.Open(cfg.Backend, cfg.Repo, cfg.QueryTimeout)
	if err != nil {
		return err
	}

	author := cfg.Author
	if author == "" {
		author, err = backend.DefaultAuthor(ctx)
		if err != nil || author == "" {
			return errors.NewConfigError("author", "", errors.New("no author given and git user.name is not set"))
		}
		logger.Debug("using git user.name as author", "author", author)
	}

	printer.Status("Getting all commit messages for %s from %d hours ago", author, cfg.Hours)

	agg := history.NewAggregator(cfg.AggregatorConfig(), backend, backend, logger)

	var report models.Report
	if cfg.Group {
		report, err = agg.RunGrouped(ctx, author, cfg.Hours)
	} else {
		report, err = agg.RunSingle(ctx, author, cfg.Hours, cfg.BranchRef())
	}
	if err != nil {
		return err
	}

	if cfg.Interactive && delivery.IsTerminal(stdout) {
		title := fmt.Sprintf("%s, last %d hours", author, cfg.Hours)
		if err := ui.Preview(title, history.Render(report), clip); err != nil {
			return err
		}
	} else {
		if cfg.Interactive {
			logger.Debug("stdout is not a terminal, printing instead of previewing")
		}
		if _, err := delivery.NewDeliverer(printer, clip, logger).Deliver(report); err != nil {
			return err
		}
	}

	printer.Status("Done!")
	return nil
}
