// Command gbcpu runs or interactively debugs a Game Boy (DMG) CPU core
// against boot-ROM and cartridge-ROM images supplied as flat files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmgcore/gbcpu/cpu"
	"github.com/dmgcore/gbcpu/mem"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gbcpu",
		Short: "Run or debug a Game Boy (DMG) CPU core",
	}

	var bootPath, romPath string
	var hz uint64
	var verbose bool

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level, including Void-region accesses")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Free-run the CPU until it faults or is interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCPU(bootPath, romPath, verbose)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			clock := cpu.NewClock(hz)
			if err := c.Run(ctx, clock); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image (mapped at 0x0000-0x00FF)")
	runCmd.Flags().StringVar(&romPath, "rom", "", "cartridge ROM image (mapped at 0x0000-0x7FFF)")
	runCmd.Flags().Uint64Var(&hz, "hz", cpu.DefaultHz, "clock rate in Hz")

	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Launch the interactive single-step debugger",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCPU(bootPath, romPath, verbose)
			if err != nil {
				return err
			}
			return cpu.Debug(c, c.Reg.PC)
		},
	}
	debugCmd.Flags().StringVar(&bootPath, "boot", "", "boot ROM image (mapped at 0x0000-0x00FF)")
	debugCmd.Flags().StringVar(&romPath, "rom", "", "cartridge ROM image (mapped at 0x0000-0x7FFF)")

	root.AddCommand(runCmd, debugCmd)
	return root
}

// buildCPU wires the memory map described in the core's external
// interfaces: an optional boot ROM shadowing the low page of an optional
// cartridge ROM, work RAM, its echo mirror, and high RAM.
func buildCPU(bootPath, romPath string, verbose bool) (*cpu.CPU, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	composite := mem.NewComposite(logger)

	if bootPath != "" {
		data, err := os.ReadFile(bootPath)
		if err != nil {
			return nil, fmt.Errorf("gbcpu: reading boot ROM: %w", err)
		}
		composite.Add(mem.NewRom(0x0000, data))
	}
	if romPath != "" {
		data, err := os.ReadFile(romPath)
		if err != nil {
			return nil, fmt.Errorf("gbcpu: reading cartridge ROM: %w", err)
		}
		composite.Add(mem.NewRom(0x0000, data))
	}

	workRAM := mem.NewRam(0xC000, 0x2000)
	composite.Add(workRAM)
	composite.Add(mem.NewRamMirror(0xE000, workRAM, 0x1E00))
	composite.Add(mem.NewRam(0xFF80, 0x7F))

	return cpu.New(composite, cpu.WithLogger(logger)), nil
}
