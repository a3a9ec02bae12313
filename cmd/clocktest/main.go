//go:build rp2040 || rp2350

// cmd/clocktest/main.go
//
// Bring-up demo: programs the board's 5P49V69xx clock tree from the
// embedded profile, runs VCO calibration and reports over USB CDC and
// UART0. The status LED latches on once the clock tree is up.
package main

import (
	"fmt"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"versaclock-go/boardcfg"
	"versaclock-go/drivers/versaclock5p49"
)

// ---------- Configuration ----------

const boardID = "pico"

// Wiring for the bring-up board: PLL on I2C1, status UART0, LED on GP25.
const (
	pinSDA = machine.GPIO14
	pinSCL = machine.GPIO15
	pinLED = machine.GPIO25

	uartBaud = 115200
)

// ---------- Minimal output to console + UART ----------

type out struct {
	u *uartx.UART
}

func (o *out) println(a ...any) {
	line := fmt.Sprintln(a...)
	print(line)
	if o.u != nil {
		_, _ = o.u.Write([]byte(line))
	}
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	led := pinLED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{BaudRate: uartBaud})
	o := &out{u: u}
	o.println("clocktest: boot")

	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{SDA: pinSDA, SCL: pinSCL}); err != nil {
		o.println("clocktest: i2c configure:", err.Error())
		return
	}

	prof, err := boardcfg.Load(boardID)
	if err != nil {
		o.println("clocktest: profile:", err.Error())
		return
	}
	o.println("clocktest: profile", boardID,
		"ref", prof.Request.RefHz, "vco", prof.Request.VCOHz)

	pll := versaclock5p49.New(i2c)
	if err := pll.Configure(prof.Config); err != nil {
		o.println("clocktest: config:", err.Error())
		return
	}

	band, err := pll.Program(prof.Request)
	if err != nil {
		o.println("clocktest: program:", err.Error())
		return
	}
	o.println("clocktest: clock tree up, vco band", band)

	led.High()
	for {
		time.Sleep(time.Second)
	}
}
