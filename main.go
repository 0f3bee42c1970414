// main.go - the ia32core CLI: wires Config -> Emulator -> Loader -> PortBus
// (with a UART at COM1) -> TerminalHost -> the outer fetch/dispatch/
// interrupt-service loop spec.md §4.7 and §6 describe, then reports the
// final fault (if any) and exit status.
//
// Rewritten from the host's main.go, which bootstraps a multi-architecture
// GUI machine; this is a single-architecture, headless CLI instead, in the
// same plain-fmt, no-logging-framework style the host uses throughout.

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v2"
)

func boilerPlate() {
	fmt.Println("ia32core - a 32-bit x86 instruction-set emulator core")
}

func main() {
	app := &cli.App{
		Name:  "ia32core",
		Usage: "run and inspect flat x86 program images",
		Commands: []*cli.Command{
			runCommand(),
			disasmCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ia32core:", err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "load a flat binary image and execute it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-dir", Usage: "sandbox directory for the image path; empty disables sandboxing"},
			&cli.Uint64Flag{Name: "load-addr", Value: 0x7C00, Usage: "address the image is copied to"},
			&cli.Uint64Flag{Name: "entry", Value: 0x7C00, Usage: "initial EIP"},
			&cli.Uint64Flag{Name: "esp", Value: 0x7C00, Usage: "initial ESP"},
			&cli.Uint64Flag{Name: "mem-size", Value: 1 << 20, Usage: "memory size in bytes"},
			&cli.Uint64Flag{Name: "max-steps", Value: 0, Usage: "stop after N instructions (0 = unlimited)"},
			&cli.BoolFlag{Name: "trace", Usage: "print a one-line trace per instruction"},
			&cli.BoolFlag{Name: "interactive", Usage: "wire stdin/stdout to the COM1 UART"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("usage: ia32core run [flags] <image>")
			}
			cfg := DefaultConfig()
			cfg.ImagePath = c.Args().Get(0)
			cfg.BaseDir = c.String("base-dir")
			cfg.LoadAddr = uint32(c.Uint64("load-addr"))
			cfg.Entry = uint32(c.Uint64("entry"))
			cfg.InitESP = uint32(c.Uint64("esp"))
			cfg.MemSize = int(c.Uint64("mem-size"))
			cfg.Steps = c.Uint64("max-steps")
			cfg.Trace = c.Bool("trace")

			boilerPlate()
			return runImage(cfg, c.Bool("interactive"))
		},
	}
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:  "disasm",
		Usage: "disassemble a flat binary image",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "base", Value: 0x7C00, Usage: "address of the first byte, for display only"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("usage: ia32core disasm [flags] <image>")
			}
			data, err := os.ReadFile(c.Args().Get(0))
			if err != nil {
				return err
			}
			base := uint32(c.Uint64("base"))
			for off := 0; off < len(data); {
				text, n := DisassembleOne(data, off)
				if n == 0 {
					break
				}
				fmt.Printf("0x%08X  %s\n", base+uint32(off), text)
				off += n
			}
			return nil
		},
	}
}

// runImage builds the engine and its host collaborators from cfg and runs
// until a terminal condition is reached, per spec.md §4.7's FETCH/DECODE/
// EXECUTE/RETIRE state machine and §6's interrupt-service contract.
func runImage(cfg Config, interactive bool) error {
	e := NewEmulator(cfg.MemSize, cfg.Entry, cfg.InitESP)

	loader := NewLoader(cfg.BaseDir)
	if err := loader.LoadFile(e, cfg.ImagePath, cfg.LoadAddr); err != nil {
		return err
	}

	uart := NewUARTPort()
	bus := NewPortBus()
	RegisterUART(bus, uart)
	bus.Attach(e)

	bios := NewBIOS(uart)

	var host *TerminalHost
	if interactive {
		host = NewTerminalHost(uart)
		host.Start()
		defer host.Stop()
	}

	var steps uint64
	for {
		if interactive {
			host.PrintOutput()
		}

		eipBefore := e.EIP()
		opcode := e.GetMemory8(eipBefore)

		if cfg.Trace {
			fmt.Println(TraceLine(eipBefore, opcode, e))
		}

		if fault := e.Step(); fault != nil {
			if interactive {
				host.PrintOutput()
			}
			return fault
		}

		if vector := e.PendingInterrupt(); vector >= 0 {
			terminate, exitCode, diagnostic := bios.Service(e, vector)
			e.ClearInterrupt()
			if diagnostic != "" {
				fmt.Fprintln(os.Stderr, "ia32core:", diagnostic)
			}
			if terminate {
				if interactive {
					host.PrintOutput()
				}
				if exitCode != 0 {
					os.Exit(int(exitCode))
				}
				return nil
			}
		}

		steps++
		if cfg.Steps != 0 && steps >= cfg.Steps {
			return nil
		}
	}
}
