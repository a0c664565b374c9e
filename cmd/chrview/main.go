// chrview shows the CHR ROM tiles of an iNES image in a window, or
// writes them to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/bdwalton/nescart/chrview"
	"github.com/bdwalton/nescart/nesrom"
)

var (
	scale  = flag.Int("scale", 3, "Pixel scale factor.")
	pngOut = flag.String("png", "", "Write the tile sheet to this PNG file instead of opening a window.")
)

func writePNG(path string, rom *nesrom.ROM) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chrview.WritePNG(f, rom.Chr(), *scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
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

	rom, err := nesrom.Open(romFile)
	if err != nil {
		glog.Exitf("Invalid ROM: %v", err)
	}

	if *pngOut != "" {
		if err := writePNG(*pngOut, rom); err != nil {
			glog.Exitf("Couldn't write %q: %v", *pngOut, err)
		}
		glog.Infof("Wrote %q", *pngOut)
		return
	}

	v, err := chrview.NewViewer(filepath.Base(romFile), rom, *scale)
	if err != nil {
		glog.Exitf("Couldn't show %q: %v", romFile, err)
	}
	if err := v.Run(); err != nil {
		glog.Exitf("Viewer failed: %v", err)
	}
}
