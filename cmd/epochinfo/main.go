package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cfal/go-epoch/calendar"
	"github.com/cfal/go-epoch/calfmt"
	"github.com/cfal/go-epoch/localtz"
	"github.com/cfal/go-epoch/tzoffset"
	"github.com/cfal/go-epoch/zonetab"
)

func main() {
	cmd := &cli.Command{
		Name:      "epochinfo",
		Usage:     "Show a Unix millisecond instant as calendar fields",
		ArgsUsage: "[instant-millis]",
		Description: `Decompose a count of milliseconds since the Unix epoch into calendar
fields under a fixed UTC offset and print the common textual renderings.
Without an argument the current wall clock is used.

EXAMPLES:
   epochinfo                          Current time in UTC
   epochinfo 1721300611846            A specific instant in UTC
   epochinfo -o +08:00 1721300611846  The same instant east of UTC
   epochinfo -l                       Current time at the host's offset`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "fixed UTC offset, e.g. +08:00 or -0430",
			},
			&cli.StringFlag{
				Name:    "zone",
				Aliases: []string{"z"},
				Usage:   "named zone from the zone table",
			},
			&cli.StringFlag{
				Name:  "zones",
				Usage: "path to a YAML zone table",
			},
			&cli.BoolFlag{
				Name:    "local",
				Aliases: []string{"l"},
				Usage:   "use the host's current UTC offset",
			},
		},
		Action: action,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	zone, err := resolveZone(ctx, cmd)
	if err != nil {
		return err
	}

	ms := uint64(time.Now().UnixMilli())
	if cmd.Args().Len() > 0 {
		ms, err = strconv.ParseUint(cmd.Args().Get(0), 10, 64)
		if err != nil {
			return fmt.Errorf("instant must be a non-negative millisecond count: %v", err)
		}
	}

	f, err := calendar.FromInstant(ms, zone)
	if err != nil {
		return err
	}

	fmt.Println("instant =", ms)
	fmt.Println("zone    =", zone.Name, zone)
	fmt.Printf("fields  = year=%d month=%d day=%d hour=%d minute=%d second=%d millis=%d dow=%s\n",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond, f.DayOfWeek)
	fmt.Println("iso8601 =", calfmt.ISO8601(f))
	fmt.Println("java    =", calfmt.Java(f))
	fmt.Println("locale  =", calfmt.Locale(f))
	return nil
}

func resolveZone(ctx context.Context, cmd *cli.Command) (tzoffset.Offset, error) {
	given := 0
	for _, set := range []bool{cmd.IsSet("offset"), cmd.IsSet("zone"), cmd.Bool("local")} {
		if set {
			given++
		}
	}
	if given > 1 {
		return tzoffset.Offset{}, fmt.Errorf("--offset, --zone and --local are mutually exclusive")
	}

	switch {
	case cmd.IsSet("offset"):
		return tzoffset.FromString(cmd.String("offset"))
	case cmd.IsSet("zone"):
		tab := zonetab.Builtin()
		if path := cmd.String("zones"); path != "" {
			file, err := os.Open(path)
			if err != nil {
				return tzoffset.Offset{}, fmt.Errorf("open zone table: %w", err)
			}
			defer file.Close()
			if err := tab.Load(file); err != nil {
				return tzoffset.Offset{}, err
			}
		}
		name := cmd.String("zone")
		off, ok := tab.Lookup(name)
		if !ok {
			return tzoffset.Offset{}, fmt.Errorf("unknown zone %q (known: %s)", name, strings.Join(tab.Names(), ", "))
		}
		return off, nil
	case cmd.Bool("local"):
		return localtz.System(ctx)
	}
	return tzoffset.UTC, nil
}
