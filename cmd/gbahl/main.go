// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

// Command gbahl inspects and patches GBA ROM images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
)

var (
	romPath    = flag.String("rom", "", "path to GBA ROM file")
	configPath = flag.String("config", "", "path to named offset table (YAML or JSON)")
	vramSafe   = flag.Bool("vram-safe", false, "compress without displacement-1 back-references")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: gbahl -rom FILE [-config FILE] COMMAND [ARGS]

commands:
  header                        print the cartridge title, game code and maker code
  pointer AT                    decode the pointer stored at AT
  decompress AT OUT             decompress the block at AT into file OUT
  compress IN AT                compress file IN and write the block at AT
  size AT                       print the size of the compressed block at AT
  find HEX [FROM] [ALIGN]       find a byte pattern
  freespace N [FROM] [ALIGN]    find N bytes of free space
  repoint OLD NEW               rewrite every pointer to OLD so it points to NEW

offsets are numbers (0x hex allowed) or names from the -config table

flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	opts := options{ROM: *romPath, Config: *configPath, VRAMSafe: *vramSafe}
	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		glog.Exitf("gbahl: %v", err)
	}
}
