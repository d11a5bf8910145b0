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
	"strings"

	"go.uber.org/zap"

	"github.com/ezrec/analytical/emulator"
)

func newLogger(verbose bool) (logger *zap.Logger, err error) {
	if verbose {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func main() {
	var stripComments bool
	var libraryPath string
	var listOnly bool
	var verbose bool
	var maxCards int
	var curve string

	flag.BoolVar(&stripComments, "strip-comments", false, "Remove comment cards before mounting")
	flag.StringVar(&libraryPath, "library-path", "", "Library directories to search, in order")
	flag.BoolVar(&listOnly, "list-only", false, "List the compiled cards, do not execute")
	flag.BoolVar(&verbose, "verbose", false, "Verbose mode")
	flag.IntVar(&maxCards, "max-cards", 0, "Stop after executing this many cards (0 for no limit)")
	flag.StringVar(&curve, "curve", "", "Write the curve drawing to this SVG file")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program file, given %v", os.Args[0], flag.Args())
	}
	program := flag.Arg(0)

	logger, err := newLogger(verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Logger = logger
	emu.MaxCards = maxCards
	emu.Engine.Attendant.StripComments = stripComments
	emu.Engine.Attendant.OnBell = func() {
		fmt.Fprint(os.Stderr, "\a")
	}

	for _, dir := range filepath.SplitList(libraryPath) {
		if len(dir) != 0 {
			emu.Library.AddPath(dir)
		}
	}

	err = emu.LoadFile(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if listOnly {
		for _, c := range emu.Engine.Reader.Cards() {
			fmt.Println(c.String())
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx)

	report := emu.Report()
	if len(report) != 0 {
		if !strings.HasSuffix(report, "\n") {
			report += "\n"
		}
		fmt.Print(report)
	}

	if len(curve) != 0 {
		ouf, cerr := os.Create(curve)
		if cerr != nil {
			log.Fatalf("%v: %v", curve, cerr)
		}
		_, cerr = emu.Curve.WriteTo(ouf)
		ouf.Close()
		if cerr != nil {
			log.Fatalf("%v: %v", curve, cerr)
		}
	}

	if err != nil {
		stop()
		log.Fatalf("%v: %v", program, err)
	}
}
