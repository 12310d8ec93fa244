// Package control sequences arming, soft-start, live adjustment and
// shutdown of a single ESC/servo output.
//
// The Controller is single-threaded: ramps block the caller for their full
// duration and no input is sampled while one runs.
package control

import (
	"errors"
	"fmt"
	"time"

	"github.com/altiis/hacr/internal/logic"
	"github.com/altiis/hacr/internal/pwm"
)

// ErrNotArmed is returned by Step before Arm has completed.
var ErrNotArmed = errors.New("controller not armed")

// Controller owns the on/off state and the last commanded pulse width.
type Controller struct {
	cfg     Config
	out     *pwm.Encoder
	sampler *Sampler
	press   *logic.PressDetector
	now     func() time.Time
	sleep   func(time.Duration)

	state   logic.State
	current logic.PulseWidth
	armed   bool
	counts  logic.EventCounts
}

// New creates a Controller in the OFF state. now and sleep are the clock
// and blocking delay (time.Now and time.Sleep outside tests).
func New(cfg Config, out *pwm.Encoder, sampler *Sampler, now func() time.Time, sleep func(time.Duration)) *Controller {
	return &Controller{
		cfg:     cfg,
		out:     out,
		sampler: sampler,
		press:   logic.NewPressDetector(cfg.LongPress),
		now:     now,
		sleep:   sleep,
		state:   logic.StateOff,
		current: cfg.Limits.Min,
	}
}

// Arm outputs the minimum pulse width and holds it for the arm delay.
// ESCs need a stable neutral signal before they accept throttle.
func (c *Controller) Arm() logic.Event {
	min := c.cfg.Limits.Min
	c.out.SetPulse(min)
	c.current = min
	c.state = logic.StateOff
	c.sleep(c.cfg.ArmDelay)
	c.armed = true

	return logic.Event{
		Timestamp: c.now(),
		Type:      logic.EventArmed,
		State:     logic.StateOff,
		From:      min,
		To:        min,
	}
}

// Step runs one sample-decide-act cycle and returns what it did.
// On error the remainder of the cycle is skipped; the output is left at
// the last commanded value.
func (c *Controller) Step() ([]logic.Event, error) {
	if !c.armed {
		return nil, ErrNotArmed
	}

	pressed, err := c.sampler.ReadButtonLevel()
	if err != nil {
		return nil, err
	}

	var events []logic.Event

	if press, ok := c.press.Process(pressed, c.now()); ok {
		if !press.Long {
			c.counts.IgnoredPresses++
		} else {
			event, err := c.toggle(press)
			if err != nil {
				return events, err
			}
			events = append(events, event)
		}
	}

	if c.state == logic.StateOn {
		event, changed, err := c.track()
		if err != nil {
			return events, err
		}
		if changed {
			events = append(events, event)
		}
	}

	return events, nil
}

// Disarm sets the output to the minimum pulse width immediately, without a
// ramp, and switches the controller OFF. Safe to call repeatedly.
func (c *Controller) Disarm() logic.Event {
	from := c.current
	min := c.cfg.Limits.Min
	c.out.SetPulse(min)
	c.current = min
	if c.state == logic.StateOn {
		c.counts.Off++
	}
	c.state = logic.StateOff

	return logic.Event{
		Timestamp: c.now(),
		Type:      logic.EventSystemOff,
		State:     logic.StateOff,
		From:      from,
		To:        min,
	}
}

func (c *Controller) toggle(press logic.Press) (logic.Event, error) {
	if c.state == logic.StateOn {
		event := c.Disarm()
		event.Held = press.Held
		return event, nil
	}

	target, err := c.sampler.ReadPotentiometer()
	if err != nil {
		return logic.Event{}, fmt.Errorf("soft start: %w", err)
	}
	target = c.cfg.Limits.Clamp(target)

	from := c.cfg.Limits.Min
	c.ramp(from, target, c.cfg.SoftStart)
	c.current = target
	c.state = logic.StateOn
	c.counts.On++

	return logic.Event{
		Timestamp: c.now(),
		Type:      logic.EventSystemOn,
		State:     logic.StateOn,
		From:      from,
		To:        target,
		Held:      press.Held,
	}, nil
}

// track ramps toward the potentiometer position if it moved.
func (c *Controller) track() (logic.Event, bool, error) {
	target, err := c.sampler.ReadPotentiometer()
	if err != nil {
		return logic.Event{}, false, fmt.Errorf("adjust: %w", err)
	}
	target = c.cfg.Limits.Clamp(target)
	if target == c.current {
		return logic.Event{}, false, nil
	}

	from := c.current
	c.ramp(from, target, c.cfg.AdjustRamp)
	c.current = target
	c.counts.Adjust++

	return logic.Event{
		Timestamp: c.now(),
		Type:      logic.EventAdjust,
		State:     logic.StateOn,
		From:      from,
		To:        target,
	}, true, nil
}

// ramp writes every value of from->to, sleeping between values. Blocks for
// roughly d and cannot be cancelled.
func (c *Controller) ramp(from, to logic.PulseWidth, d time.Duration) {
	interval := c.cfg.stepInterval(d)
	steps := logic.NewRamp(from, to, c.cfg.RampSteps).Iter()
	for v, ok := steps.Next(); ok; v, ok = steps.Next() {
		c.out.SetPulse(c.cfg.Limits.Clamp(v))
		c.sleep(interval)
	}
}

// State returns the on/off state.
func (c *Controller) State() logic.State {
	return c.state
}

// Current returns the last commanded pulse width.
func (c *Controller) Current() logic.PulseWidth {
	return c.current
}

// Armed reports whether Arm has completed.
func (c *Controller) Armed() bool {
	return c.armed
}

// Counts returns a copy of the event counters.
func (c *Controller) Counts() logic.EventCounts {
	return c.counts
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}
