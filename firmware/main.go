//go:build tinygo

package main

import (
	"github.com/calvinmclean/pushpull/firmware/device"
	"github.com/calvinmclean/pushpull/firmware/panel"
)

func main() {
	d, err := device.New(pinConfig)
	if err != nil {
		panic(err)
	}

	panel.New(d, panel.Config{Verbose: false}).Run()
}
