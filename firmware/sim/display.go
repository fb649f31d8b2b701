package sim

const (
	displayCols  = 16
	line2Address = 0x40
	ddramSize    = 0x80
)

// display models the DDRAM of an HD44780-style 2-line character LCD. Only the commands the
// firmware uses are interpreted: clear, return home and set DDRAM address. Entry mode is
// always increment.
type display struct {
	ddram   [ddramSize]byte
	address byte
}

func newDisplay() *display {
	d := &display{}
	d.clear()
	return d
}

func (d *display) clear() {
	for i := range d.ddram {
		d.ddram[i] = ' '
	}
	d.address = 0
}

func (d *display) command(b byte) {
	switch {
	case b&0x80 != 0:
		d.address = b & 0x7F
	case b == 0x01:
		d.clear()
	case b&0xFE == 0x02:
		d.address = 0
	}
}

func (d *display) data(b byte) {
	d.ddram[d.address] = b
	d.address = (d.address + 1) % ddramSize
}

func (d *display) lines() [2]string {
	return [2]string{
		string(d.ddram[:displayCols]),
		string(d.ddram[line2Address : line2Address+displayCols]),
	}
}
