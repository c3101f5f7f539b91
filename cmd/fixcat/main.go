// Command fixcat frames FIX tag=value capture files and prints one line
// per message. It is a consumer of the fixwire layer, useful for sanity
// checking captures and reproducing framing failures.
//
// Usage:
//
//	fixcat [-config framing.toml] [-separator "|"] [-no-verify-checksum] [file...]
//
// With no files, fixcat reads a single stream from stdin. Flags override
// the config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/fixwire"
	"github.com/danmuck/fixwire/internal/config"
	"github.com/danmuck/fixwire/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "TOML framing policy file")
	separator := flag.String("separator", "", `field separator: one character or "SOH"`)
	noVerify := flag.Bool("no-verify-checksum", false, "skip checksum comparison")
	maxBytes := flag.Int("max-message-bytes", 0, "reject messages larger than this (0 = no cap)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := observability.InitLogger("fixcat", *debug)

	opts, err := buildOptions(*configPath, *separator, *noVerify, *maxBytes)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad framing policy")
	}

	paths := flag.Args()
	if len(paths) == 0 {
		if err := inspect(logger, "stdin", os.Stdin, opts); err != nil {
			logger.Fatal().Err(err).Msg("stream failed")
		}
		return
	}

	var group errgroup.Group
	group.SetLimit(4)
	for _, path := range paths {
		path := path
		group.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "open %s", path)
			}
			defer f.Close()
			return inspect(logger, path, f, opts)
		})
	}
	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("stream failed")
	}
}

func buildOptions(configPath, separator string, noVerify bool, maxBytes int) ([]fixwire.Option, error) {
	var opts []fixwire.Option
	if configPath != "" {
		fileOpts, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		opts = fileOpts
	}
	if separator != "" {
		sep, err := config.SeparatorByte(separator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fixwire.WithSeparator(sep))
	}
	if noVerify {
		opts = append(opts, fixwire.WithChecksumVerification(false))
	}
	if maxBytes != 0 {
		if maxBytes < 0 {
			return nil, errors.New("max-message-bytes must not be negative")
		}
		opts = append(opts, fixwire.WithMaxMessageBytes(maxBytes))
	}
	return opts, nil
}

// inspect drives one StreamDecoder over r until the stream ends, logging
// each decoded frame.
func inspect(logger zerolog.Logger, name string, r io.Reader, opts []fixwire.Option) error {
	dec := fixwire.NewStreamDecoder(opts...)
	count := 0
	filled := 0
	for {
		region := dec.SupplyBuffer()
		if len(region) > 0 {
			n, err := io.ReadFull(r, region)
			filled += n
			if err == io.EOF && filled == 0 {
				// Clean end of stream between messages.
				logger.Debug().Str("stream", name).Int("frames", count).Msg("done")
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "%s: truncated message after %d frame(s)", name, count)
			}
		}

		frame, err := dec.CurrentFrame()
		if err != nil {
			return errors.Wrapf(err, "%s: frame %d", name, count)
		}
		if frame == nil {
			continue
		}
		count++
		logger.Info().
			Str("stream", name).
			Int("frame", count).
			Str("begin_string", string(frame.BeginString())).
			Int("payload_len", len(frame.Payload())).
			Int("payload_offset", frame.PayloadOffset()).
			Msg("frame")
		if _, err := fmt.Fprintf(os.Stdout, "%s\n", frame.Bytes()); err != nil {
			return errors.Wrap(err, "write frame")
		}
		dec.Clear()
		filled = 0
	}
}
