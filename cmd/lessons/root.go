package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/go-basics/internal/basics"
	"github.com/aanand-mishra/go-basics/internal/config"
	"github.com/aanand-mishra/go-basics/internal/lesson"
	"github.com/aanand-mishra/go-basics/internal/practice/fibonacci"
	"github.com/aanand-mishra/go-basics/internal/practice/fizzbuzz"
	"github.com/aanand-mishra/go-basics/internal/practice/password"
	"github.com/spf13/cobra"
)

// app is what every subcommand needs once config is loaded.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	catalogue *lesson.Catalogue
}

// newCatalogue lists every lesson in the order "run everything" uses.
// The practice lessons are factories: they capture their input from the
// config here, once.
func newCatalogue(cfg *config.Config) (*lesson.Catalogue, error) {
	return lesson.NewCatalogue(
		lesson.Lesson{Name: "variables", Title: "Variables and constants", Run: basics.Variables},
		lesson.Lesson{Name: "security", Title: "Security monitoring practice", Run: basics.Security},
		lesson.Lesson{Name: "datatypes", Title: "Scalar, compound and custom types", Run: basics.DataTypes},
		lesson.Lesson{Name: "functions", Title: "Functions, statements and return values", Run: basics.Functions},
		lesson.Lesson{Name: "controlflow", Title: "if, switch and loops", Run: basics.ControlFlow},
		lesson.Lesson{Name: "password", Title: "Password strength scorer", Run: password.Lesson(cfg.Password)},
		lesson.Lesson{Name: "fibonacci", Title: "Nth Fibonacci number", Run: fibonacci.Lesson(cfg.FibonacciN)},
		lesson.Lesson{Name: "fizzbuzz", Title: "FizzBuzz from 0 to 99", Run: fizzbuzz.Lesson},
	)
}

// newRootCmd builds the command tree. logOut is where slog writes.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		configFlag string
		a          app
	)

	root := &cobra.Command{
		Use:          "lessons",
		Short:        "Run the language-basics lessons and practice exercises",
		SilenceUsage: true,
		Args:         cobra.NoArgs,

		// PersistentPreRunE runs before every subcommand: load config once,
		// then build the logger and catalogue from it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ResolvePath(configFlag))
			if err != nil {
				return err
			}

			catalogue, err := newCatalogue(cfg)
			if err != nil {
				return fmt.Errorf("build catalogue: %w", err)
			}

			a = app{
				cfg:       cfg,
				log:       setupLogger(cfg.Env, logOut),
				catalogue: catalogue,
			}
			a.log.Debug("config loaded", slog.String("env", cfg.Env))
			return nil
		},

		// No subcommand: run everything.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.catalogue.Run(cmd.OutOrStdout(), a.log)
		},
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to a YAML config file (CONFIG_PATH takes priority)")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the available lessons",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				for _, l := range a.catalogue.All() {
					if _, err := fmt.Fprintf(out, "%-12s %s\n", l.Name, l.Title); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "run <lesson>...",
			Short: "Run the named lessons in order",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.catalogue.Run(cmd.OutOrStdout(), a.log, args...)
			},
		},
	)

	return root
}
