package monitor

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

var ErrNoUSBSerial = errors.New("no USB serial ports found")

// GetSerialPorts lists the names of USB serial ports, which is how the board shows up
func GetSerialPorts() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var result []string
	for _, p := range ports {
		if p.IsUSB {
			result = append(result, p.Name)
		}
	}
	if len(result) == 0 {
		return nil, ErrNoUSBSerial
	}

	return result, nil
}

// OpenSerial opens the board's console port
func OpenSerial(name string, baudRate int) (serial.Port, error) {
	if name == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, err
		}
		name = ports[0]
	}

	port, err := serial.Open(name, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", name, err)
	}
	return port, nil
}
