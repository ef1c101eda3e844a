package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/woozymasta/gbahl/compression"
	"github.com/woozymasta/gbahl/internal/config"
	"github.com/woozymasta/gbahl/rom"
)

var errUsage = errors.New("usage")

// options are the global command line settings.
type options struct {
	ROM      string
	Config   string
	VRAMSafe bool
}

// command runs one subcommand against an opened ROM.
type command struct {
	minArgs, maxArgs int
	writable         bool
	run              func(e *env, args []string) error
}

var commands = map[string]command{
	"header":     {0, 0, false, cmdHeader},
	"pointer":    {1, 1, false, cmdPointer},
	"decompress": {2, 2, false, cmdDecompress},
	"compress":   {2, 2, true, cmdCompress},
	"size":       {1, 1, false, cmdSize},
	"find":       {1, 3, false, cmdFind},
	"freespace":  {1, 3, false, cmdFreeSpace},
	"repoint":    {2, 2, true, cmdRepoint},
}

// env is the state shared by subcommands.
type env struct {
	s    *rom.Stream
	cfg  *config.Config
	opts options
	out  io.Writer
}

func run(opts options, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return fmt.Errorf("%w: wrong number of arguments", errUsage)
	}
	if opts.ROM == "" {
		return fmt.Errorf("%w: -rom is required", errUsage)
	}

	e := &env{opts: opts, out: stdout}
	if opts.Config != "" {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			return err
		}
		e.cfg = cfg
		glog.V(1).Infof("loaded %d named offsets from %s", len(cfg.Offsets), opts.Config)
	}

	var err error
	if cmd.writable {
		e.s, err = rom.Open(opts.ROM)
	} else {
		e.s, err = rom.OpenReadOnly(opts.ROM)
	}
	if err != nil {
		return err
	}
	defer e.s.Close()

	if !rom.ValidSize(e.s.Len()) {
		glog.Warningf("%s: size %d is not a multiple of 16 MiB", opts.ROM, e.s.Len())
	}

	if err := cmd.run(e, args); err != nil {
		return err
	}
	if cmd.writable {
		return e.s.Flush()
	}
	return nil
}

// offset resolves a named or numeric offset argument.
func (e *env) offset(arg string) (int64, error) {
	off, err := e.cfg.Resolve(arg)
	if err != nil {
		return 0, err
	}
	if !e.s.IsValidOffset(off) {
		return 0, fmt.Errorf("offset 0x%X is outside the ROM (0x%X bytes)", off, e.s.Len())
	}
	return off, nil
}

// seek resolves arg and moves the cursor there.
func (e *env) seek(arg string) (int64, error) {
	off, err := e.offset(arg)
	if err != nil {
		return 0, err
	}
	_, err = e.s.Seek(off, io.SeekStart)
	return off, err
}

// searchArgs parses the optional FROM and ALIGN arguments.
func (e *env) searchArgs(args []string) (from int64, alignment int, err error) {
	alignment = 1
	if len(args) > 0 {
		if from, err = e.offset(args[0]); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 1 {
		if alignment, err = parseInt(args[1]); err != nil {
			return 0, 0, fmt.Errorf("alignment: %w", err)
		}
	}
	return from, alignment, nil
}

// parseInt parses a count argument; 0x hex is allowed.
func parseInt(arg string) (int, error) {
	v, err := strconv.ParseInt(arg, 0, 0)
	return int(v), err
}

func cmdHeader(e *env, _ []string) error {
	h, err := e.s.ReadHeader()
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "title: %s\ncode:  %s\nmaker: %s\n", h.Title, h.Code, h.Maker)
	return nil
}

func cmdPointer(e *env, args []string) error {
	at, err := e.seek(args[0])
	if err != nil {
		return err
	}

	p, err := e.s.ReadPointer()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "0x%06X: %s\n", at, p)
	return nil
}

func cmdDecompress(e *env, args []string) error {
	at, err := e.seek(args[0])
	if err != nil {
		return err
	}

	data, err := e.s.ReadCompressed()
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], data, 0o644); err != nil { //nolint:gosec // output is a user file
		return err
	}

	fmt.Fprintf(e.out, "0x%06X: %d bytes from a %d byte block\n", at, len(data), e.s.Position()-at)
	return nil
}

func cmdCompress(e *env, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	at, err := e.seek(args[1])
	if err != nil {
		return err
	}

	old := e.s.CompressedSize(at, 0)
	n, err := e.s.WriteCompressed(data, &compression.CompressOptions{VRAMSafe: e.opts.VRAMSafe})
	if err != nil {
		return err
	}
	if old >= 0 && n > old {
		glog.Warningf("0x%06X: new block is %d bytes, old block was %d; the next %d bytes were overwritten", at, n, old, n-old)
	}

	fmt.Fprintf(e.out, "0x%06X: wrote %d byte block for %d bytes\n", at, n, len(data))
	return nil
}

func cmdSize(e *env, args []string) error {
	at, err := e.offset(args[0])
	if err != nil {
		return err
	}

	n := e.s.CompressedSize(at, 0)
	if n < 0 {
		return fmt.Errorf("0x%06X: no compressed block", at)
	}
	fmt.Fprintf(e.out, "0x%06X: %d\n", at, n)
	return nil
}

func cmdFind(e *env, args []string) error {
	pattern, err := hex.DecodeString(strings.ReplaceAll(args[0], " ", ""))
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	from, alignment, err := e.searchArgs(args[1:])
	if err != nil {
		return err
	}

	return e.printFound(e.s.Find(pattern, from, alignment))
}

func cmdFreeSpace(e *env, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}
	from, alignment, err := e.searchArgs(args[1:])
	if err != nil {
		return err
	}

	return e.printFound(e.s.FindFreeSpace(n, from, alignment))
}

func (e *env) printFound(offset int64, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(e.out, "not found")
		return nil
	}

	fmt.Fprintf(e.out, "0x%06X\n", offset)
	return nil
}

func cmdRepoint(e *env, args []string) error {
	oldOffset, err := e.cfg.Resolve(args[0])
	if err != nil {
		return err
	}
	newOffset, err := e.cfg.Resolve(args[1])
	if err != nil {
		return err
	}

	patched, err := e.s.Repoint(oldOffset, newOffset)
	if err != nil {
		return err
	}
	for _, at := range patched {
		fmt.Fprintf(e.out, "0x%06X\n", at)
	}
	glog.Infof("repointed %d references from 0x%06X to 0x%06X", len(patched), oldOffset, newOffset)
	return nil
}
