package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ridwatch/ridwatch/internal/capture"
	"github.com/ridwatch/ridwatch/internal/config"
	"github.com/ridwatch/ridwatch/internal/iface"
	"github.com/ridwatch/ridwatch/internal/logging"
	"github.com/ridwatch/ridwatch/internal/platform"
	"github.com/ridwatch/ridwatch/internal/sighting"
	"github.com/ridwatch/ridwatch/internal/tools"
	"github.com/ridwatch/ridwatch/ui"
)

const banner = `
       _     _               _       _
  _ __(_) __| |_      ____ _| |_ ___| |__
 | '__| |/ _' \ \ /\ / / _' | __/ __| '_ \
 | |  | | (_| |\ V  V / (_| | || (__| | | |
 |_|  |_|\__,_| \_/\_/ \__,_|\__\___|_| |_|
`

func Execute(version string) error {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "ridwatch",
		Short: "Drone Remote ID sniffer for monitor-mode wireless adapters",
		Long:  banner + "\n  ridwatch v" + version + " - drone Remote ID sniffer\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(cfg, version)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := rootCmd.Flags()
	f.StringVarP(&cfg.Interface, "interface", "i", "", "Wireless interface (default: resolved from the detected platform)")
	f.IntVarP(&cfg.Channel, "channel", "c", cfg.Channel, "Wireless channel to listen on")
	f.DurationVar(&cfg.Settle, "settle", cfg.Settle, "Delay between interface configuration steps")
	f.BoolVar(&cfg.Hop, "hop", false, "Hop across 2.4 GHz channels instead of staying on one")
	f.DurationVar(&cfg.HopInterval, "hop-interval", cfg.HopInterval, "Dwell time per channel when hopping")
	f.BoolVar(&cfg.Output.NoUI, "no-ui", false, "Log sightings as lines instead of the TUI")
	f.StringVarP(&cfg.Output.SightingsFile, "output", "o", cfg.Output.SightingsFile, "Sightings output file")
	f.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	f.StringVar(&cfg.Log.File, "log-file", "", "Mirror logs to this file")

	rootCmd.AddCommand(devicesCmd())
	rootCmd.AddCommand(sightingsCmd(cfg))
	rootCmd.AddCommand(depsCmd())

	return rootCmd.Execute()
}

func runMain(cfg *config.Config, version string) error {
	fmt.Print(banner)
	fmt.Printf("  ridwatch v%s\n\n", version)

	if runtime.GOOS != "linux" {
		return fmt.Errorf("monitor-mode capture requires Linux; only 'ridwatch sightings' works here")
	}
	if os.Geteuid() != 0 {
		return fmt.Errorf("ridwatch must be run as root (try: sudo ridwatch)")
	}

	deps := tools.NewDependencyChecker()
	if missing := deps.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("missing required tools: %v\n  Install with: %s", missing, tools.InstallHint())
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}

	// The interface name is resolved exactly once and never changes for the
	// rest of the run.
	name := cfg.Interface
	if name == "" {
		plat, err := platform.Detect()
		if err != nil {
			return fmt.Errorf("platform detection: %w", err)
		}
		name = plat.Interface()
		fmt.Printf("  Detected %s, using interface %s\n", plat, name)
	}

	if !iface.Exists(name) {
		log.Warnf("interface %s not present in /sys/class/net", name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	ctrl := iface.NewExecController()
	mgr := iface.NewManager(ctrl, cfg.Settle)

	fmt.Printf("  Enabling monitor mode on %s...\n", name)
	if err := mgr.EnableMonitor(ctx, name, cfg.Channel); err != nil {
		return fmt.Errorf("monitor mode: %w", err)
	}
	fmt.Printf("  %s is in monitor mode on channel %d\n\n", name, cfg.Channel)

	defer func() {
		fmt.Println("\n  Restoring interface...")
		mgr.Restore(context.Background())
		fmt.Println("  Done.")
	}()

	tracker := sighting.NewTracker()
	store := sighting.NewStore(cfg.Output.SightingsFile)

	sniffer := capture.NewSniffer(name, tracker, log)
	if err := sniffer.Start(ctx); err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	defer sniffer.Stop()

	channelFn := func() int { return cfg.Channel }
	if cfg.Hop {
		hopper := iface.NewHopper(ctrl, name, iface.Channels2GHz, cfg.HopInterval)
		hopper.Start(ctx)
		defer hopper.Stop()
		channelFn = hopper.Current
	}

	// Persist once at exit; Add merges beacon counts across runs, so writing
	// the same run twice would double-count.
	defer func() {
		for _, s := range tracker.Sightings() {
			store.Add(s)
		}
	}()

	if cfg.Output.NoUI {
		// The sniffer logs each sighting; just wait for a signal.
		<-ctx.Done()
		return nil
	}

	app := ui.NewApp(tracker, name, channelFn)
	return ui.Run(app)
}

// devicesCmd lists the wireless interfaces on the system.
func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List wireless interfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := iface.List()
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Println("No wireless interfaces found.")
				return nil
			}
			fmt.Printf("  %-12s %-10s %-8s %-18s %s\n", "NAME", "DRIVER", "PHY", "MAC", "MODE")
			for _, d := range devices {
				fmt.Printf("  %-12s %-10s %-8s %-18s %s\n", d.Name, d.Driver, d.PHY, d.MAC, d.Mode)
			}
			return nil
		},
	}
}

// sightingsCmd shows previously recorded sightings.
func sightingsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sightings",
		Short: "Show recorded Remote ID sightings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := sighting.NewStore(cfg.Output.SightingsFile)
			fmt.Print(banner)
			fmt.Println("\n  Recorded sightings:")
			fmt.Println()
			fmt.Print(store.FormatTable())
			return nil
		},
	}
}

// depsCmd shows dependency status.
func depsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check tool dependencies",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(banner)
			fmt.Println("\n  Dependency Check:")
			deps := tools.NewDependencyChecker()
			fmt.Print(tools.FormatStatus(deps.CheckAll()))
		},
	}
}
