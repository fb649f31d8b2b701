package ui

import (
	"context"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/sim"
)

const refreshInterval = 50 * time.Millisecond

var (
	lcdBackground = color.RGBA{R: 96, G: 160, B: 48, A: 255}
	lcdForeground = color.RGBA{R: 16, G: 32, B: 16, A: 255}
	segmentColor  = color.RGBA{R: 220, G: 20, B: 20, A: 255}
)

// PanelUI shows a simulated board: the LCD, the countdown digit, the motor and the buttons.
// The firmware loop is expected to be running against the same board
type PanelUI struct {
	hw      *sim.Hardware
	buttons pushpull.Buttons
}

func NewPanelUI(hw *sim.Hardware) *PanelUI {
	return &PanelUI{hw: hw}
}

func newLCDLine() *canvas.Text {
	t := canvas.NewText("                ", lcdForeground)
	t.TextStyle = fyne.TextStyle{Monospace: true}
	t.TextSize = 22
	return t
}

// createButton is a toggle so a button can be held down across loop passes
func (ui *PanelUI) createButton(label string, set func(*pushpull.Buttons, bool)) *widget.Check {
	return widget.NewCheck(label, func(pressed bool) {
		set(&ui.buttons, pressed)
		ui.hw.Hold(ui.buttons)
	})
}

func (ui *PanelUI) Run(ctx context.Context) {
	application := app.New()
	window := application.NewWindow("Push/Pull Panel")

	line1 := newLCDLine()
	line2 := newLCDLine()
	lcd := container.NewStack(
		canvas.NewRectangle(lcdBackground),
		container.NewPadded(container.NewVBox(line1, line2)),
	)

	digit := canvas.NewText(" ", segmentColor)
	digit.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	digit.TextSize = 64

	motorLabel := widget.NewLabel("")
	uptime := widget.NewLabel("")

	buttons := container.NewHBox(
		ui.createButton("Button 1 (pull)", func(b *pushpull.Buttons, v bool) { b.Button1 = v }),
		ui.createButton("Button 2 (push)", func(b *pushpull.Buttons, v bool) { b.Button2 = v }),
		ui.createButton("Reset", func(b *pushpull.Buttons, v bool) { b.Reset = v }),
	)

	content := container.NewVBox(
		container.NewHBox(lcd, layout.NewSpacer(), container.NewPadded(digit)),
		container.NewGridWithColumns(2,
			widget.NewLabel("Motor:"),
			motorLabel,
			widget.NewLabel("Uptime:"),
			uptime,
		),
		widget.NewCard("Buttons", "", buttons),
	)

	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			v := newView(ui.hw.Snapshot())
			fyne.Do(func() {
				line1.Text = v.line1
				line1.Refresh()
				line2.Text = v.line2
				line2.Refresh()
				digit.Text = v.digit
				digit.Refresh()
				motorLabel.SetText(v.motor)
				uptime.SetText(v.uptime)
			})
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.SetContent(content)
	window.Resize(fyne.NewSize(480, 240))
	window.ShowAndRun()
}
