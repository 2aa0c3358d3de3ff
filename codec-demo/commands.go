package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	codec "github.com/bangzek/modbus-codec"
)

type readFunc func(devAddr byte, addr, count uint16) codec.Request

var reads = []struct {
	use, short string
	fn         readFunc
}{
	{"rc", "Read coils", func(d byte, a, n uint16) codec.Request {
		return codec.NewReadCoilsCmd(d, a, n)
	}},
	{"rdi", "Read discrete inputs", func(d byte, a, n uint16) codec.Request {
		return codec.NewReadDInputsCmd(d, a, n)
	}},
	{"rhr", "Read holding registers", func(d byte, a, n uint16) codec.Request {
		return codec.NewReadHRegsCmd(d, a, n)
	}},
	{"rir", "Read input registers", func(d byte, a, n uint16) codec.Request {
		return codec.NewReadIRegsCmd(d, a, n)
	}},
}

func addCommands(root *cobra.Command) {
	for _, r := range reads {
		root.AddCommand(&cobra.Command{
			Use:   r.use + " UNIT ADDR COUNT",
			Short: r.short,
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				unit, err := parseUnit(args[0])
				if err != nil {
					return err
				}
				addr, err := parseUint16("address", args[1])
				if err != nil {
					return err
				}
				count, err := parseUint16("count", args[2])
				if err != nil {
					return err
				}
				req, err := build(func() codec.Request {
					return r.fn(unit, addr, count)
				})
				if err != nil {
					return err
				}
				return run(cmd, req)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "w1c UNIT ADDR on|off",
		Short: "Write single coil",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, addr, err := parseUnitAddr(args)
			if err != nil {
				return err
			}
			val, err := parseBool(args[2])
			if err != nil {
				return err
			}
			return run(cmd, codec.NewWriteCoilCmd(unit, addr, val))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "w1r UNIT ADDR VALUE",
		Short: "Write single register",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, addr, err := parseUnitAddr(args)
			if err != nil {
				return err
			}
			val, err := parseUint16("value", args[2])
			if err != nil {
				return err
			}
			return run(cmd, codec.NewWriteRegCmd(unit, addr, val))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "wc UNIT ADDR on|off...",
		Short: "Write multiple coils",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, addr, err := parseUnitAddr(args)
			if err != nil {
				return err
			}
			vals := make([]bool, len(args)-2)
			for i, s := range args[2:] {
				if vals[i], err = parseBool(s); err != nil {
					return err
				}
			}
			req, err := build(func() codec.Request {
				return codec.NewWriteCoilsCmd(unit, addr, vals)
			})
			if err != nil {
				return err
			}
			return run(cmd, req)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "wr UNIT ADDR VALUE...",
		Short: "Write multiple registers",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, addr, err := parseUnitAddr(args)
			if err != nil {
				return err
			}
			vals := make([]uint16, len(args)-2)
			for i, s := range args[2:] {
				if vals[i], err = parseUint16("value", s); err != nil {
					return err
				}
			}
			req, err := build(func() codec.Request {
				return codec.NewWriteRegsCmd(unit, addr, vals)
			})
			if err != nil {
				return err
			}
			return run(cmd, req)
		},
	})
}

// build turns a constructor panic on bad arguments into an error.
func build(fn func() codec.Request) (req codec.Request, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn(), nil
}

func run(cmd *cobra.Command, req codec.Request) error {
	if mbapFlag {
		req = codec.AsTCP(req, tidFlag)
	}
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, req.Tx())
		fmt.Fprintf(out, "% X\n", codec.Encode(req))
		return nil
	}

	res, err := con.Send(req)
	if res != nil {
		fmt.Fprintln(out, res)
	} else if err == nil {
		fmt.Fprintln(out, req.Tx())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", req.Tx(), err)
	}
	return nil
}

func parseUnit(s string) (byte, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid unit %q", s)
	}
	return byte(n), nil
}

func parseUint16(name, s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return uint16(n), nil
}

func parseUnitAddr(args []string) (byte, uint16, error) {
	unit, err := parseUnit(args[0])
	if err != nil {
		return 0, 0, err
	}
	addr, err := parseUint16("address", args[1])
	return unit, addr, err
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "on", "true":
		return true, nil
	case "0", "off", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid coil value %q", s)
	}
}
