package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/calvinmclean/pushpull/config"
	"github.com/calvinmclean/pushpull/firmware/panel"
	"github.com/calvinmclean/pushpull/firmware/sim"
	"github.com/calvinmclean/pushpull/monitor"
	"github.com/calvinmclean/pushpull/runlog"
	"github.com/calvinmclean/pushpull/ui"
)

const usage = `usage: pushpull <command> [flags]

commands:
  monitor   follow the board's console and record runs
  runlog    serve the run history API
  sim       open the desktop panel simulator
  ports     list USB serial ports
`

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		panic(err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	args := os.Args[2:]
	switch os.Args[1] {
	case "monitor":
		err = runMonitor(ctx, cfg, args)
	case "runlog":
		err = runRunlog(cfg, args)
	case "sim":
		err = runSim(ctx, cfg, args)
	case "ports":
		err = listPorts()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runMonitor(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	fs.StringVar(&cfg.SerialPort, "port", cfg.SerialPort, "Serial port of the board. Default is the first USB serial port")
	fs.IntVar(&cfg.BaudRate, "baud", cfg.BaudRate, "Baud rate of the board's console")
	fs.StringVar(&cfg.RunlogAddr, "runlog", cfg.RunlogAddr, "Address of the run log API to record runs to")
	_ = fs.Parse(args)

	port, err := monitor.OpenSerial(cfg.SerialPort, cfg.BaudRate)
	if err != nil {
		return err
	}
	defer port.Close()

	var recorder monitor.Recorder
	if cfg.RunlogAddr != "" {
		recorder = runlog.NewClient(cfg.RunlogAddr)
	}

	return monitor.New(os.Stdout, recorder).Run(ctx, port)
}

func runRunlog(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("runlog", flag.ExitOnError)
	fs.StringVar(&cfg.RunlogListen, "addr", cfg.RunlogListen, "Address to listen on")
	_ = fs.Parse(args)

	return runlog.NewAPI().Serve(cfg.RunlogListen)
}

func runSim(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print every button change")
	_ = fs.Parse(args)

	hw := sim.NewRealTime()
	go panel.New(hw, panel.Config{Verbose: cfg.Verbose}).Run()

	ui.NewPanelUI(hw).Run(ctx)
	return nil
}

func listPorts() error {
	ports, err := monitor.GetSerialPorts()
	if errors.Is(err, monitor.ErrNoUSBSerial) {
		fmt.Println("no USB serial ports found")
		return nil
	}
	if err != nil {
		return err
	}

	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}
