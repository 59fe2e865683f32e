// outbreak converts and validates pandemic-tracking records between wire
// formats. It reads one document from stdin, decodes it as the chosen
// record type with every field rule enforced, and writes it back out in
// the target format (or its fingerprint).
//
//	outbreak --record status --from json --to yaml < status.json
//	outbreak --record summary --from jsonc --fingerprint sha256 < summary.jsonc
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"

	"github.com/zoobzio/outbreak"
	"github.com/zoobzio/outbreak/bson"
	"github.com/zoobzio/outbreak/internal/clock"
	"github.com/zoobzio/outbreak/json"
	"github.com/zoobzio/outbreak/msgpack"
	"github.com/zoobzio/outbreak/yaml"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var codecs = map[string]func() outbreak.Codec{
	"json":    json.New,
	"jsonc":   json.NewJSONC,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
}

// converter reads one record from data and renders it for output.
type converter func(ctx context.Context, data []byte, opts options) ([]byte, error)

var records = map[string]struct {
	name    string
	convert converter
}{
	"last-update": {"LastUpdate", convert[outbreak.LastUpdate]},
	"news":        {"NewsItems", convert[outbreak.NewsItems]},
	"summary":     {"Summary", convert[outbreak.Summary]},
	"status":      {"Status", convert[outbreak.Status]},
	"flat-status": {"FlatStatus", convert[outbreak.FlatStatus]},
}

type options struct {
	from     outbreak.Codec
	to       outbreak.Codec
	location *time.Location
	hasher   outbreak.Hasher
	logger   *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		record      string
		from        string
		to          string
		tz          string
		fingerprint string
		fields      bool
		now         bool
		verbose     bool
	)

	flagSet := pflag.NewFlagSet("outbreak", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&record, "record", "r", "", "record type: "+strings.Join(names(records), ", "))
	flagSet.StringVar(&from, "from", "json", "input format: "+strings.Join(names(codecs), ", "))
	flagSet.StringVar(&to, "to", "", "output format (default: same as --from, jsonc writes json)")
	flagSet.StringVar(&tz, "tz", "UTC", "IANA zone for local date-times and calendar dates")
	flagSet.StringVar(&fingerprint, "fingerprint", "", "print the record digest instead of the record: blake2b, blake3, sha256, sha512")
	flagSet.BoolVar(&fields, "fields", false, "list the keys the record accepts and exit")
	flagSet.BoolVar(&now, "now", false, "write a last_update stamped with the current minute instead of reading stdin")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log conversion details to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rec, ok := records[record]
	if !ok {
		return fmt.Errorf("unknown --record %q (want one of %s)", record, strings.Join(names(records), ", "))
	}
	if fields {
		_, err := fmt.Fprintln(stdout, strings.Join(outbreak.Fields(rec.name), "\n"))
		return err
	}

	opts, err := resolve(from, to, tz, fingerprint)
	if err != nil {
		return err
	}
	opts.logger = logger

	if now {
		if record != "last-update" {
			return errors.New("--now only applies to --record last-update")
		}
		return stamp(context.Background(), clock.Real{}, stdout, opts)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := rec.convert(context.Background(), data, opts)
	if err != nil {
		var fe *outbreak.FieldError
		if errors.As(err, &fe) {
			logger.Debug("record rejected",
				"record", fe.Record,
				"field", fe.Field,
				"path", fe.Path,
			)
		}
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func resolve(from, to, tz, fingerprint string) (options, error) {
	var opts options

	newFrom, ok := codecs[from]
	if !ok {
		return opts, fmt.Errorf("unknown --from %q (want one of %s)", from, strings.Join(names(codecs), ", "))
	}
	opts.from = newFrom()

	if to == "" {
		to = from
	}
	newTo, ok := codecs[to]
	if !ok {
		return opts, fmt.Errorf("unknown --to %q (want one of %s)", to, strings.Join(names(codecs), ", "))
	}
	opts.to = newTo()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return opts, fmt.Errorf("--tz: %w", err)
	}
	opts.location = loc

	if fingerprint != "" {
		algo := outbreak.HashAlgo(fingerprint)
		if !outbreak.IsValidHashAlgo(algo) {
			return opts, fmt.Errorf("unknown --fingerprint %q", fingerprint)
		}
		opts.hasher, err = outbreak.HasherFor(algo)
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// stamp writes a LastUpdate for the current minute of clk.
func stamp(ctx context.Context, clk clock.Clock, stdout io.Writer, opts options) error {
	writer, err := outbreak.Use[outbreak.LastUpdate](opts.to, outbreak.WithLocation(opts.location))
	if err != nil {
		return err
	}
	rec := outbreak.NewLastUpdate(clk, writer.Formats())
	out, err := writer.Write(ctx, &rec)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func convert[T outbreak.Record[T]](ctx context.Context, data []byte, opts options) ([]byte, error) {
	start := time.Now()

	reader, err := outbreak.Use[T](opts.from, outbreak.WithLocation(opts.location))
	if err != nil {
		return nil, err
	}
	rec, err := reader.Read(ctx, data)
	if err != nil {
		return nil, err
	}

	if opts.hasher != nil {
		// the digest is taken over the output encoding
		writer, err := outbreak.NewProcessor[T](opts.to,
			outbreak.WithLocation(opts.location),
			outbreak.WithHasher(opts.hasher),
		)
		if err != nil {
			return nil, err
		}
		sum, err := writer.Fingerprint(ctx, rec)
		if err != nil {
			return nil, err
		}
		opts.logger.Debug("fingerprinted",
			"content_type", writer.ContentType(),
			"duration", time.Since(start),
		)
		return []byte(sum + "\n"), nil
	}

	writer, err := outbreak.Use[T](opts.to, outbreak.WithLocation(opts.location))
	if err != nil {
		return nil, err
	}
	out, err := writer.Write(ctx, rec)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("converted",
		"from", reader.ContentType(),
		"to", writer.ContentType(),
		"in_bytes", len(data),
		"out_bytes", len(out),
		"duration", time.Since(start),
	)
	return out, nil
}

func names[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
