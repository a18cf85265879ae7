package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"msphal/config"
	"msphal/host/console"
	"msphal/host/logging"
	"msphal/host/serial"
)

var (
	device   = flag.String("device", "", "Serial device to take commands from (default stdin)")
	baud     = flag.Int("baud", 9600, "Baud rate of the serial device")
	board    = flag.String("board", "", "JSON board file to configure at startup")
	launch   = flag.Bool("launchpad", false, "Configure the LaunchPad LEDs and S2 button at startup")
	loglevel = flag.Int("loglevel", int(logrus.InfoLevel), "Log level (0-6, higher is more verbose)")
)

func main() {
	flag.Parse()

	log := logging.New(os.Stderr, logrus.Level(*loglevel), "gpiosim")
	logging.RouteCoreDebug(log.WithField("prefix", "gpio"))

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	prompt := "> "

	if *device != "" {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud

		port, err := serial.Open(cfg)
		if err != nil {
			log.WithError(err).Fatal("cannot open command port")
		}
		defer port.Close()

		if err := port.Flush(); err != nil {
			log.WithError(err).Warn("flush failed")
		}
		in, out, prompt = port, port, ""
		log.WithField("baud", cfg.Baud).Infof("reading commands from %s", cfg.Device)
	}

	con := console.New(out, log)
	con.Prompt = prompt

	if err := loadBoard(con); err != nil {
		log.WithError(err).Fatal("cannot configure board")
	}

	if err := con.Run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func loadBoard(con *console.Console) error {
	switch {
	case *board != "":
		data, err := os.ReadFile(*board)
		if err != nil {
			return err
		}
		b, err := config.LoadConfig(data)
		if err != nil {
			return fmt.Errorf("%s: %w", *board, err)
		}
		return con.Load(b)
	case *launch:
		return con.Load(config.DefaultBoard())
	}
	return nil
}
