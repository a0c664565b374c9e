// nescart loads an iNES image and reports what its header says.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/bdwalton/nescart/mappers"
	"github.com/bdwalton/nescart/nesrom"
)

// glogObserver reports loads through glog.
type glogObserver struct{}

func (glogObserver) LoadStarted(path string) {
	glog.V(1).Infof("Loading %q", path)
}

func (glogObserver) LoadFinished(ev nesrom.Event) {
	if ev.Err != nil {
		glog.Errorf("Loading %q failed after %v: %v", ev.Path, ev.Elapsed, ev.Err)
		return
	}
	glog.Infof("Loaded %q in %v: %s", ev.Path, ev.Elapsed, ev.Header)
	for st, n := range ev.Sizes {
		glog.V(1).Infof("%s: %d bytes", st, n)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <rom.nes>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	romFile := flag.Arg(0)

	rom, err := nesrom.OpenObserved(romFile, glogObserver{})
	if err != nil {
		glog.Exitf("Invalid ROM: %v", err)
	}

	fmt.Print(rom)
	fmt.Printf("Board:       %s\n", mappers.Name(rom.MapperNum()))
}
