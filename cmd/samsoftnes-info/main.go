// samsoftnes-info prints the decoded iNES / NES 2.0 header of a cartridge
// image. It understands plain .nes files and zip/gzip/7z archives.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/samsoft/samsoftnes/samsoftnes"
)

var showTrainer = flag.Bool("trainer", false, "hexdump the trainer block if present")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <rom file>\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}
	path := flag.Arg(0)

	cart, err := samsoftnes.LoadROMFile(path)
	if err != nil {
		glog.Exitf("%v", err)
	}

	fmt.Println(filepath.Base(cart.Path))
	for _, line := range cart.Header.Summary() {
		fmt.Printf("  %s\n", line)
	}
	fmt.Printf("  Image hash: %016x\n", cart.Hash)

	if *showTrainer && cart.Trainer != nil {
		fmt.Println("  Trainer:")
		for off := 0; off < len(cart.Trainer); off += 16 {
			fmt.Printf("    %04x  % x\n", off, cart.Trainer[off:off+16])
		}
	}

	glog.Flush()
}
