// Codec-demo sends single Modbus requests to a device and prints the
// decoded response.
//
// Usage:
//
//	codec-demo [--config FILE] [--dev DEV | --tcp ADDR] COMMAND UNIT ARGS...
//
// The port comes from the YAML config file unless --dev or --tcp is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	codec "github.com/bangzek/modbus-codec"
)

var (
	configFile string
	devFlag    string
	tcpFlag    string
	logLevel   string
	mbapFlag   bool
	tidFlag    uint16
	dryRun     bool

	con *codec.Controller
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codec-demo",
	Short: "Send Modbus requests from the command line",
	Long: `Send one Modbus request over a serial line or a TCP socket and print
the request and the decoded response.

Frames are RTU unless --mbap is set, in which case the request is sent with
an MBAP header to a Modbus TCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging(logLevel); err != nil {
			return err
		}
		if dryRun {
			return nil
		}
		cfg, err := loadConfig(configFile)
		if err != nil {
			return err
		}
		if devFlag != "" {
			cfg.Serial = &codec.SerialPort{Dev: devFlag}
			cfg.TCP = nil
		} else if tcpFlag != "" {
			cfg.TCP = &codec.TCPPort{Addr: tcpFlag}
			cfg.Serial = nil
		}
		port, err := cfg.port()
		if err != nil {
			return err
		}
		con = &codec.Controller{
			Port:    port,
			Timeout: cfg.Timeout,
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if con != nil {
			con.Close()
		}
		syncLogging()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	f := rootCmd.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "YAML port config file")
	f.StringVar(&devFlag, "dev", "", "serial device, e.g. /dev/ttyUSB0")
	f.StringVar(&tcpFlag, "tcp", "", "TCP address, e.g. 10.0.0.7:502")
	f.StringVar(&logLevel, "log-level", "",
		"debug, info, warn or error (default $"+LogLevelEnvVar+")")
	f.BoolVar(&mbapFlag, "mbap", false, "send Modbus TCP frames")
	f.Uint16Var(&tidFlag, "tid", 1, "transaction id for --mbap")
	f.BoolVarP(&dryRun, "dry-run", "n", false,
		"print the encoded request without sending it")

	addCommands(rootCmd)
}
