// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ezrec/chip8/emulator"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(os.Args[0])))
}

// loadRom reads a ROM image from a host path.
func loadRom(emu *emulator.Emulator, path string) (err error) {
	dir, name := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}

	return emu.LoadFile(os.DirFS(dir), name)
}

func main() {
	var compile string
	var output string
	var config string
	var ui string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&output, "o", "", "Write the ROM image to this file, do not execute")
	flag.StringVar(&config, "config", "", ".toml or .yaml configuration file")
	flag.StringVar(&ui, "ui", "raw", "User interface: raw, termloop or none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [-c file.asm | rom.ch8]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("unknown arguments: %v", flag.Args()[1:])
	}

	if (len(compile) == 0) == (flag.NArg() == 0) {
		flag.Usage()
		os.Exit(2)
	}

	cfg := emulator.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = emulator.LoadConfig(config)
		if err != nil {
			log.Fatal(err)
		}
	}

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	emu.Verbose = verbose

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatal(err)
		}
		err = emu.Assemble(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		err = loadRom(emu, flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(output) != 0 {
		err = os.WriteFile(output, emu.Cpu.Rom(), 0o644)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	switch ui {
	case "raw":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = runRaw(ctx, emu)
		stop()
	case "termloop":
		err = runTermloop(emu)
	case "none":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = runHeadless(ctx, emu)
		stop()
	default:
		log.Fatalf("-ui %v: unknown interface", ui)
	}

	if err != nil {
		log.Fatal(err)
	}
}
