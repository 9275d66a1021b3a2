// Command counterctl drives a laboratory counter described by a YAML device
// profile: it opens the device session, establishes the trigger state and runs
// one acquisition, printing the collected samples to stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/ks53230"
	"github.com/labkit/go-counter/logger"
	"github.com/labkit/go-counter/measure"
	"github.com/labkit/go-counter/profile"
	"github.com/labkit/go-counter/scpitcp"
)

var log logger.Logger

func main() {
	cmd := &cli.Command{
		Name:  "counterctl",
		Usage: "Acquire measurements from a laboratory frequency/time-interval counter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Value:   "counter.yaml",
				Usage:   "path to the device profile",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "expose session metrics on this address, e.g. :9090",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "freq",
				Usage: "Measure frequency, e.g. -c \"ch:1 cou:ac exp:10E6 sampl:10\"",
				Flags: append(configFlags(),
					&cli.BoolFlag{
						Name:  "stream",
						Usage: "fetch samples in chunks while the acquisition runs",
					},
				),
				Action: runFreq,
			},
			{
				Name:   "period",
				Usage:  "Measure period, e.g. -c \"ch1:1 ch2:2\"",
				Flags:  configFlags(),
				Action: runPeriod,
			},
			{
				Name:   "tinterval",
				Usage:  "Measure time interval, e.g. -c \"ref:A sampl:5 cou:dc imp:50 tstamp:Y\"",
				Flags:  configFlags(),
				Action: runTimeInterval,
			},
			{
				Name:   "models",
				Usage:  "List registered instrument drivers",
				Action: runModels,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "measurement configuration string (space-separated key:value tokens)",
			Required: true,
		},
	}
}

func runFreq(ctx context.Context, cmd *cli.Command) error {
	return withCounter(cmd, func(cnt *ks53230.Counter) error {
		out := measure.NewSet()
		if err := cnt.Freq(cmd.String("config"), out, cmd.Bool("stream")); err != nil {
			return err
		}
		printSamples(out)

		return nil
	})
}

func runPeriod(ctx context.Context, cmd *cli.Command) error {
	return withCounter(cmd, func(cnt *ks53230.Counter) error {
		return cnt.Period(cmd.String("config"))
	})
}

func runTimeInterval(ctx context.Context, cmd *cli.Command) error {
	return withCounter(cmd, func(cnt *ks53230.Counter) error {
		out := measure.NewSet()
		if err := cnt.TimeInterval(cmd.String("config"), out); err != nil {
			return err
		}
		printSamples(out)

		return nil
	})
}

func runModels(ctx context.Context, cmd *cli.Command) error {
	for _, model := range counter.Models() {
		fmt.Println(model)
	}

	return nil
}

// withCounter loads the profile, dials the session, establishes the trigger
// state and hands a ready driver to fn.
func withCounter(cmd *cli.Command, fn func(*ks53230.Counter) error) error {
	level := logger.InfoLevel
	if cmd.Bool("debug") {
		level = logger.DebugLevel
	}
	log = logger.NewSlog(level, false)

	prof, err := profile.Load(cmd.String("profile"))
	if err != nil {
		return err
	}

	transport, err := prof.TransportKind()
	if err != nil {
		return err
	}

	session, err := scpitcp.Dial(prof.Address, scpitcp.WithLogger(log))
	if err != nil {
		return err
	}

	cnt, err := ks53230.New(transport, session, driverOptions(prof)...)
	if err != nil {
		_ = session.Close()
		return err
	}
	defer func() { _ = cnt.Close() }()

	info, err := cnt.Open()
	if err != nil {
		return err
	}
	log.Info("connected", "device", info, "profile", prof.Name)

	if addr := cmd.String("metrics-addr"); addr != "" {
		go serveMetrics(addr, cnt.Metrics())
	}

	if prof.Trigger != "" {
		if err := cnt.ConfigureTrigger(prof.Trigger); err != nil {
			return err
		}
	}
	if prof.TriggerLevel != "" {
		if err := cnt.TrigLevel(prof.TriggerLevel); err != nil {
			return err
		}
	}

	return fn(cnt)
}

func driverOptions(prof *profile.Profile) []ks53230.Option {
	opts := []ks53230.Option{ks53230.WithLogger(log)}
	if prof.Step > 0 {
		opts = append(opts, ks53230.WithStep(prof.Step))
	}
	if prof.DeadTime != "" {
		opts = append(opts, ks53230.WithDeadTime(profile.Duration(prof.DeadTime, 0)))
	}
	if prof.GateTime != "" {
		opts = append(opts, ks53230.WithGateTime(profile.Duration(prof.GateTime, 0)))
	}
	if prof.SettleTime != "" {
		opts = append(opts, ks53230.WithSettleTime(profile.Duration(prof.SettleTime, 0)))
	}

	return opts
}

func printSamples(out *measure.Set) {
	for _, sample := range out.Samples() {
		if sample.Timestamp != "" {
			fmt.Printf("%s\t%.12e\n", sample.Timestamp, sample.Value)
		} else {
			fmt.Printf("%.12e\n", sample.Value)
		}
	}
}
