package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kanengo/kuid/codecx"
	"github.com/kanengo/kuid/config"
	"github.com/kanengo/kuid/hashidx"
	"github.com/urfave/cli/v2"
)

var errNoArgs = errors.New("at least one argument is required")

// runner is the state shared by all commands once Before has run.
type runner struct {
	out    io.Writer
	logger *slog.Logger
	cfg    *config.Config
	hashID *hashidx.HashID
	codec  codecx.Codec
	json   bool
}

func newApp(stdout, stderr io.Writer) *cli.App {
	r := &runner{out: stdout}

	return &cli.App{
		Name:      "kuid",
		Usage:     "Encode integers into short salted hashids and back",
		Writer:    stdout,
		ErrWriter: stderr,
		// errors are reported by main so tests can run the app in-process.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
			},
			&cli.StringFlag{
				Name:  "salt",
				Usage: "Salt (overrides config and " + config.EnvSalt + ")",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "Alphabet, at least 16 unique characters without spaces",
			},
			&cli.StringFlag{
				Name:  "separators",
				Usage: "Separator candidates",
			},
			&cli.IntFlag{
				Name:  "min-length",
				Usage: "Minimum hashid length (overrides config and " + config.EnvMinLength + ")",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "warn",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Before: func(c *cli.Context) error {
			return r.setup(c, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode one or more non-negative integers into a single hashid",
				ArgsUsage: "<n>...",
				Action:    r.encode,
			},
			{
				Name:      "decode",
				Usage:     "Decode hashids, one result per argument",
				ArgsUsage: "<hashid>...",
				Action:    r.decode,
			},
			{
				Name:      "encode-hex",
				Usage:     "Encode a hexadecimal string",
				ArgsUsage: "<hex>",
				Action:    r.encodeHex,
			},
			{
				Name:      "decode-hex",
				Usage:     "Decode a hashid produced by encode-hex",
				ArgsUsage: "<hashid>",
				Action:    r.decodeHex,
			},
			{
				Name:   "info",
				Usage:  "Show the derived alphabet, separators and guards",
				Action: r.info,
			},
		},
	}
}

func (r *runner) setup(c *cli.Context, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	r.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	r.json = c.Bool("json")

	cfg, err := r.loadConfig(c)
	if err != nil {
		return err
	}
	r.cfg = cfg

	r.hashID, err = cfg.Builder().Build()
	if err != nil {
		return fmt.Errorf("build hashid: %w", err)
	}

	r.codec = codecx.Hashids(r.hashID)
	if cfg.Cache.Size > 0 {
		r.codec = codecx.Cached(r.codec, cfg.Cache.Size)
	}

	r.logger.Debug("hashid ready",
		"min_length", r.hashID.Length(),
		"fingerprint", fmt.Sprintf("%016x", r.hashID.Fingerprint()),
	)
	return nil
}

// loadConfig layers the config file, the environment and then flags.
func (r *runner) loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.IsSet("salt") {
		cfg.Salt = c.String("salt")
	}
	if c.IsSet("alphabet") {
		cfg.Alphabet = c.String("alphabet")
	}
	if c.IsSet("separators") {
		cfg.Separators = c.String("separators")
	}
	if c.IsSet("min-length") {
		cfg.MinLength = c.Int("min-length")
	}

	return cfg, cfg.Validate()
}

func (r *runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func joinValues(values []uint64) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
