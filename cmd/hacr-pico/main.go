//go:build tinygo && rp2040

// Command hacr-pico is the RP2040 firmware build of the controller: ESC on
// GPIO16, push button on GPIO15 (pulled down, high when pressed) and the
// potentiometer wiper on ADC0 (GPIO26).
package main

import (
	"machine"
	"time"

	"github.com/altiis/hacr/internal/control"
	"github.com/altiis/hacr/internal/logic"
	"github.com/altiis/hacr/internal/pwm"
	"tinygo.org/x/drivers/servo"
)

const (
	pinESC    = machine.GPIO16
	pinButton = machine.GPIO15
)

// escOutput drives one channel of a PWM slice. The slice is configured for
// the frame rate here rather than by servo.NewArray, which fixes 50Hz.
type escOutput struct {
	slice   servo.PWM
	channel uint8
}

func newESCOutput(slice servo.PWM, pin machine.Pin, frequencyHz int) (*escOutput, error) {
	if err := slice.Configure(machine.PWMConfig{Period: uint64(time.Second) / uint64(frequencyHz)}); err != nil {
		return nil, err
	}
	ch, err := slice.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &escOutput{slice: slice, channel: ch}, nil
}

func (o *escOutput) SetDuty(duty uint32) { o.slice.Set(o.channel, duty) }
func (o *escOutput) FullScale() uint32   { return o.slice.Top() }
func (o *escOutput) Close() error {
	o.slice.Set(o.channel, 0)
	return nil
}

// potentiometer returns 12-bit samples; machine.ADC scales to 16 bits.
type potentiometer struct {
	adc machine.ADC
}

func (p *potentiometer) ReadRaw() (uint16, error) { return p.adc.Get() >> 4, nil }
func (p *potentiometer) Close() error             { return nil }

type button struct {
	pin machine.Pin
}

func (b *button) Read() (bool, error) { return b.pin.Get(), nil }
func (b *button) Close() error        { return nil }

func main() {
	cfg := control.DefaultConfig()

	machine.InitADC()
	pot := &potentiometer{adc: machine.ADC{Pin: machine.ADC0}}
	pot.adc.Configure(machine.ADCConfig{})

	pinButton.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	// GPIO16 is PWM slice 0, channel A.
	esc, err := newESCOutput(machine.PWM0, pinESC, cfg.FrequencyHz)
	if err != nil {
		halt("pwm: " + err.Error())
	}
	out, err := pwm.NewEncoder(esc, cfg.FrequencyHz)
	if err != nil {
		halt("encoder: " + err.Error())
	}

	sampler := control.NewSampler(pot, &button{pin: pinButton}, cfg.Limits, cfg.RawMax)
	ctrl := control.New(cfg, out, sampler, time.Now, time.Sleep)

	report(ctrl.Arm())
	for {
		events, err := ctrl.Step()
		if err != nil {
			println("control error:", err.Error())
		}
		for _, e := range events {
			report(e)
		}
		time.Sleep(cfg.Poll)
	}
}

func report(e logic.Event) {
	println(string(e.Type), int(e.From), "->", int(e.To))
}

// halt leaves the output unconfigured and parks; an ESC without a signal
// stays disarmed.
func halt(msg string) {
	for {
		println("fatal:", msg)
		time.Sleep(time.Second)
	}
}
