package main

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"ridingcourse/config"
	"ridingcourse/internal/deeplink"
	"ridingcourse/internal/errors"
	"ridingcourse/internal/infra/shortlink"

	"github.com/spf13/cobra"
)

type parseOptions struct {
	lenient bool
	offline bool
	timeout time.Duration
	appName string
}

func buildParseCmd() *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse [link|-]",
		Short: "Normalize a shared map link and print the route as JSON",
		Long: `Normalize a shared map link and print the route as JSON.

The link may be surrounded by other text. Pass "-" to read one link per line from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Print a placeholder instead of failing on unrecognized links")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Do not expand naver.me shortlinks")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", deeplink.DefaultShortlinkTimeout, "Shortlink expansion timeout")
	cmd.Flags().StringVar(&opts.appName, "app-name", deeplink.DefaultAppName, "appname parameter of canonical nmap links")

	return cmd
}

func runParse(cmd *cobra.Command, arg string, opts parseOptions) error {
	normalizer := newNormalizer(cmd, opts)

	mode := deeplink.ModeStrict
	if opts.lenient {
		mode = deeplink.ModeLenient
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	parse := func(raw string) error {
		route, err := normalizer.NormalizeWithMode(cmd.Context(), raw, mode)
		if err != nil {
			return err
		}

		return errors.WithStack(enc.Encode(route))
	}

	if arg != "-" {
		return parse(arg)
	}

	return forEachLine(cmd.InOrStdin(), parse)
}

func newNormalizer(cmd *cobra.Command, opts parseOptions) *deeplink.Normalizer {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	options := []deeplink.Option{
		deeplink.WithAppName(opts.appName),
		deeplink.WithLogger(logger),
	}
	if !opts.offline {
		resolver := shortlink.NewHTTPResolver(config.BreakerConfig{}, nil, logger)
		options = append(options, deeplink.WithResolver(resolver, opts.timeout))
	}

	return deeplink.New(options...)
}

// forEachLine stops at the first failing line.
func forEachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return errors.WithStack(scanner.Err())
}
