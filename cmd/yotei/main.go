package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/yotei-dev/yotei"
	"github.com/yotei-dev/yotei/internal/cliconfig"
	"github.com/yotei-dev/yotei/internal/watch"
)

const helpDescription = `
Keep a small personal schedule in a single JSON file.

Highlights:
  - Rejects entries that overlap an existing one, naming the conflict.
  - Saves the whole calendar atomically; a failed command never corrupts it.
  - Configure the calendar file via config file, env (YOTEI_*), or flags.
  - Watch mode re-renders the list when the file changes on disk.

Timestamps use the format 2006-01-02T15:04:05 (local time, seconds precision).
`

var exampleUsage = strings.TrimSpace(`
  yotei add "会議" 2025-05-01T10:00:00 2025-05-01T11:00:00
  yotei list --file ./schedules.json
  yotei delete 1
  yotei watch
`)

// displayLayout is how timestamps are shown in list output.
const displayLayout = "2006-01-02 15:04"

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func printEntries(entries []yotei.Entry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tSUBJECT")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			e.ID, e.Start.Format(displayLayout), e.End.Format(displayLayout), e.Subject)
	}
	w.Flush()
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "yotei",
		Short:         "Keep a small personal schedule in a single JSON file",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.yotei/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (YOTEI_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.InfoLevel)
			}
			log.Debug().Interface("config", cfg).Msg("configuration")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print all schedule entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := yotei.NewFileRepository(cfg.CalendarPath)
			store, err := yotei.Load(cmd.Context(), repo)
			if err != nil {
				return err
			}
			printEntries(store.List())
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <subject> <start> <end>",
		Short: "Add a schedule entry, rejecting overlaps",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := yotei.ParseTime(args[1])
			if err != nil {
				return &yotei.ValidationError{
					Field:  "start",
					Reason: fmt.Sprintf("%q is not a %s timestamp", args[1], yotei.TimeLayout),
				}
			}
			end, err := yotei.ParseTime(args[2])
			if err != nil {
				return &yotei.ValidationError{
					Field:  "end",
					Reason: fmt.Sprintf("%q is not a %s timestamp", args[2], yotei.TimeLayout),
				}
			}

			repo := yotei.NewFileRepository(cfg.CalendarPath)
			store, err := yotei.Load(cmd.Context(), repo)
			if err != nil {
				return err
			}
			entry, err := store.Add(args[0], start, end)
			if err != nil {
				return err
			}
			if err := yotei.Save(cmd.Context(), repo, store); err != nil {
				return err
			}
			log.Debug().Str("path", cfg.CalendarPath).Msg("calendar saved")
			fmt.Printf("added schedule %d: %s\n", entry.ID, entry.Subject)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a schedule entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil || id == 0 {
				return &yotei.ValidationError{
					Field:  "id",
					Reason: fmt.Sprintf("%q is not a positive integer", args[0]),
				}
			}

			repo := yotei.NewFileRepository(cfg.CalendarPath)
			store, err := yotei.Load(cmd.Context(), repo)
			if err != nil {
				return err
			}
			entry, err := store.Delete(id)
			if err != nil {
				return err
			}
			if err := yotei.Save(cmd.Context(), repo, store); err != nil {
				return err
			}
			log.Debug().Str("path", cfg.CalendarPath).Msg("calendar saved")
			fmt.Printf("deleted schedule %d: %s\n", entry.ID, entry.Subject)
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print the schedule whenever the calendar file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			repo := yotei.NewFileRepository(cfg.CalendarPath)
			render := func() {
				store, err := yotei.Load(ctx, repo)
				if err != nil {
					log.Error().Err(err).Msg("reload calendar")
					return
				}
				printEntries(store.List())
			}

			w := watch.New(cfg.CalendarPath, cfg.DebounceDelay, log, render)
			return w.Run(ctx)
		},
	}

	// Flags
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.yotei/config.toml)")
	root.PersistentFlags().StringVarP(&cfg.CalendarPath, "file", "f", cfg.CalendarPath, "calendar file holding the schedule entries")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	watchCmd.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay before re-reading after a change")

	root.AddCommand(listCmd, addCmd, deleteCmd, watchCmd)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("yotei")
		os.Exit(1)
	}
}
