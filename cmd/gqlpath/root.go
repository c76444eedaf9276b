package main

// root.go has the (only) command, its flags and how they are combined with the config file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/andrewwphillips/gqlpath"
	"github.com/andrewwphillips/gqlpath/internal/config"
	"github.com/andrewwphillips/gqlpath/internal/logging"
)

type flags struct {
	containing, glob      bool
	typesOnly, fieldsOnly bool
	showRelay, json       bool
	strict, verbose       bool
	saveConfig            bool
	color                 string
	roots                 []string
	headers               []string
	token                 string
	configPath            string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "gqlpath [FILE SEARCH]",
		Short: "Find the paths to GraphQL types and fields",
		Long: `gqlpath finds the shortest chain of fields from each field of the Query and Mutation
types to the types and/or fields named by SEARCH.

FILE is the JSON result of an introspection query, a schema in SDL (.graphql, .graphqls or
.gql), the URL of a GraphQL server (http, https, ws or wss), or - to read standard input.

SEARCH is a name, or several names separated by commas.  Use --containing to match part of
a name or --glob for patterns like "*Connection".

With --save-config the settings are written to the config file, and FILE and SEARCH
may be left out.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.saveConfig && len(args) == 0 {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return run(cmd, f, "", "")
			}
			return run(cmd, f, args[0], args[1])
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.containing, "containing", "c", false, "match names that contain SEARCH")
	fl.BoolVarP(&f.glob, "glob", "g", false, "SEARCH is a glob pattern (eg *Connection)")
	fl.BoolVarP(&f.typesOnly, "type", "t", false, "only search type names")
	fl.BoolVarP(&f.fieldsOnly, "field", "f", false, "only search field names")
	fl.BoolVar(&f.showRelay, "show-relay", false, "include relay types (connections, edges, page info)")
	fl.BoolVar(&f.json, "json", false, "write results as JSON")
	fl.StringVar(&f.color, "color", config.ColorAuto, "use colors: auto, always or never")
	fl.BoolVar(&f.strict, "strict", false, "check the schema before searching")
	fl.StringArrayVar(&f.roots, "root", nil, "type to search from (may be repeated, default Query and Mutation)")
	fl.StringArrayVarP(&f.headers, "header", "H", nil, `extra request header "Key: Value" (may be repeated)`)
	fl.StringVar(&f.token, "token", "", "bearer token for the GraphQL server")
	fl.StringVar(&f.configPath, "config", "", "config file (default $HOME/"+config.FileName+")")
	fl.BoolVar(&f.saveConfig, "save-config", false, "write the settings (config file plus flags) to the config file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages to stderr")
	cmd.MarkFlagsMutuallyExclusive("containing", "glob")

	return cmd
}

func run(cmd *cobra.Command, f *flags, source, query string) error {
	out := cmd.OutOrStdout()
	log := logging.New(cmd.ErrOrStderr(), f.verbose)

	cfg, path, err := loadConfig(cmd, f, log)
	if err != nil {
		return err
	}
	if f.saveConfig {
		if path == "" {
			return errors.New("no config file to save to (use --config)")
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		log.Debug("saved config", "file", path)
		if source == "" {
			return nil
		}
	}
	options, err := getOptions(cmd, f, cfg, log)
	if err != nil {
		return err
	}

	s, err := gqlpath.Load(cmd.Context(), source, options...)
	if err != nil {
		return err
	}
	if s.IsEmpty() {
		_, err := fmt.Fprintln(out, "Empty schema")
		return err
	}
	if cfg.Strict {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	results, err := s.Search(query, options...)
	if err != nil {
		return err
	}
	log.Debug("found paths", "search", query, "results", len(results))

	return s.Render(out, results, append(options,
		gqlpath.JSON(cfg.Format == config.FormatJSON),
		gqlpath.Color(useColor(cfg.Color, out)),
	)...)
}

// loadConfig reads the config file then overrides its settings with any flags that were used.
// It also returns the path of the config file (empty if there is none).
func loadConfig(cmd *cobra.Command, f *flags, log *slog.Logger) (config.Config, string, error) {
	path := f.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.Warn("config file not read", "error", err)
		}
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, path, err
		}
		log.Debug("config", "file", path, "settings", cfg)
	}

	changed := cmd.Flags().Changed
	if changed("show-relay") {
		cfg.ShowRelay = f.showRelay
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("json") {
		cfg.Format = config.FormatText
		if f.json {
			cfg.Format = config.FormatJSON
		}
	}
	return cfg, path, cfg.Validate()
}

// getOptions works out the options for loading and searching the schema
func getOptions(cmd *cobra.Command, f *flags, cfg config.Config, log *slog.Logger) ([]func(*gqlpath.Options), error) {
	options := []func(*gqlpath.Options){
		gqlpath.Logger(log),
		gqlpath.Stdin(cmd.InOrStdin()),
		gqlpath.Timeout(cfg.Timeout),
		gqlpath.ShowRelay(cfg.ShowRelay),
	}

	switch {
	case f.glob:
		options = append(options, gqlpath.Match(gqlpath.Glob))
	case f.containing:
		options = append(options, gqlpath.Match(gqlpath.Containing))
	}
	switch {
	case f.typesOnly && !f.fieldsOnly:
		options = append(options, gqlpath.Only(gqlpath.Types))
	case f.fieldsOnly && !f.typesOnly:
		options = append(options, gqlpath.Only(gqlpath.Fields))
	}

	// Headers from the config file (in name order so requests are repeatable) then from the command line
	keys := make([]string, 0, len(cfg.Headers))
	for k := range cfg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		options = append(options, gqlpath.Header(k, cfg.Headers[k]))
	}
	for _, h := range f.headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("header %q should be like \"Key: Value\"", h)
		}
		options = append(options, gqlpath.Header(strings.TrimSpace(key), strings.TrimSpace(value)))
	}
	if f.token != "" {
		options = append(options, gqlpath.Bearer(f.token))
	}
	if len(f.roots) > 0 {
		options = append(options, gqlpath.Roots(f.roots...))
	}
	return options, nil
}

// useColor decides whether to use ANSI colors - with "auto" only if writing to a terminal
func useColor(setting string, w io.Writer) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
