// Command hacr drives a single ESC or servo from a potentiometer and a
// push button, and optionally reports its state over MQTT and HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/altiis/hacr/internal/adc"
	"github.com/altiis/hacr/internal/board"
	"github.com/altiis/hacr/internal/control"
	"github.com/altiis/hacr/internal/gpio"
	"github.com/altiis/hacr/internal/logic"
	"github.com/altiis/hacr/internal/mqtt"
	"github.com/altiis/hacr/internal/pwm"
	"github.com/altiis/hacr/internal/status"
	"github.com/altiis/hacr/internal/web"
)

// options collects the flag values that are not part of control.Config.
type options struct {
	pwmPin          int
	pwmCycle        uint
	adcChannel      uint
	spiSpeed        int
	buttonPin       int
	buttonActiveLow bool
	broker          string
	clientID        string
	heartbeat       time.Duration
	httpAddr        string
	printInputs     bool
}

func main() {
	def := control.DefaultConfig()
	var cfg control.Config
	var opts options
	var minUS, maxUS, rawMax int

	flag.DurationVar(&cfg.Poll, "poll", def.Poll, "Input polling interval")
	flag.DurationVar(&cfg.LongPress, "long-press", def.LongPress, "Hold time that toggles the output")
	flag.DurationVar(&cfg.SoftStart, "soft-start", def.SoftStart, "Ramp duration from min to target when switching on")
	flag.DurationVar(&cfg.AdjustRamp, "adjust-ramp", def.AdjustRamp, "Ramp duration when following the potentiometer")
	flag.DurationVar(&cfg.ArmDelay, "arm-delay", def.ArmDelay, "Time to hold min pulse at startup")
	flag.IntVar(&cfg.FrequencyHz, "freq", def.FrequencyHz, "PWM frame rate in Hz")
	flag.IntVar(&minUS, "min-us", int(def.Limits.Min), "Minimum pulse width in microseconds")
	flag.IntVar(&maxUS, "max-us", int(def.Limits.Max), "Maximum pulse width in microseconds")
	flag.IntVar(&cfg.RampSteps, "steps", def.RampSteps, "Number of steps per ramp")
	flag.IntVar(&rawMax, "raw-max", int(def.RawMax), "Full-scale potentiometer reading")
	flag.IntVar(&opts.pwmPin, "pwm-pin", pwm.DefaultPin, "BCM pin for hardware PWM output")
	flag.UintVar(&opts.pwmCycle, "pwm-cycle", pwm.DefaultCycle, "PWM counts per frame")
	flag.UintVar(&opts.adcChannel, "adc-channel", adc.DefaultChannel, "MCP3208 channel of the potentiometer")
	flag.IntVar(&opts.spiSpeed, "spi-speed", adc.DefaultSPISpeed, "SPI clock in Hz")
	flag.IntVar(&opts.buttonPin, "button-pin", gpio.DefaultPinButton, "BCM pin for the push button")
	flag.BoolVar(&opts.buttonActiveLow, "button-active-low", false, "Button pulls the pin low when pressed")
	flag.StringVar(&opts.broker, "broker", "", "MQTT broker address (empty to disable)")
	flag.StringVar(&opts.clientID, "client-id", "hacr", "MQTT client ID")
	flag.DurationVar(&opts.heartbeat, "heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	flag.StringVar(&opts.httpAddr, "http", ":8080", "HTTP status address (empty to disable)")
	flag.BoolVar(&opts.printInputs, "print-inputs", false, "Print button and potentiometer readings and exit")

	flag.Parse()

	cfg.Limits = logic.Limits{Min: logic.PulseWidth(minUS), Max: logic.PulseWidth(maxUS)}
	if rawMax <= 0 || rawMax > 0xFFFF {
		log.Fatalf("fatal: raw max %d out of range", rawMax)
	}
	cfg.RawMax = uint16(rawMax)

	if err := run(cfg, opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg control.Config, opts options) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := board.Open(); err != nil {
		return err
	}
	defer board.Close()

	pot, err := adc.NewRealReader(uint8(opts.adcChannel), opts.spiSpeed)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer pot.Close()

	button, err := gpio.NewRealReader(opts.buttonPin, opts.buttonActiveLow)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer button.Close()

	sampler := control.NewSampler(pot, button, cfg.Limits, cfg.RawMax)

	if opts.printInputs {
		return printInputs(sampler)
	}

	writer, err := pwm.NewRealWriter(opts.pwmPin, cfg.FrequencyHz, uint32(opts.pwmCycle))
	if err != nil {
		return fmt.Errorf("init pwm: %w", err)
	}
	defer writer.Close()

	out, err := pwm.NewEncoder(writer, cfg.FrequencyHz)
	if err != nil {
		return fmt.Errorf("init encoder: %w", err)
	}

	ctrl := control.New(cfg, out, sampler, time.Now, time.Sleep)

	log.Printf("arming: %dus for %v", cfg.Limits.Min, cfg.ArmDelay)
	armed := ctrl.Arm()
	logEvent(armed)

	var publisher mqtt.Publisher = mqtt.NopPublisher{}
	var mqttStatus mqtt.ConnectionStatus = mqtt.NopPublisher{}
	if opts.broker != "" {
		p, err := mqtt.NewRealPublisher(opts.broker, opts.clientID)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		publisher, mqttStatus = p, p
	}
	defer publisher.Close()

	// Tracker exists before STARTUP so the snapshot is available.
	tracker := status.NewTracker(time.Now(), statusConfig(cfg, opts))
	tracker.Update(ctrl.State(), ctrl.Current(), ctrl.Armed(), ctrl.Counts())
	tracker.SetMQTTConnected(mqttStatus.IsConnected())

	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	}
	if err := publisher.Publish(armed); err != nil {
		log.Printf("publish error: %v", err)
	}

	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", opts.httpAddr)
	}

	log.Printf("started: range=%d-%dus freq=%dHz poll=%v long-press=%v soft-start=%v adjust-ramp=%v",
		cfg.Limits.Min, cfg.Limits.Max, cfg.FrequencyHz, cfg.Poll, cfg.LongPress, cfg.SoftStart, cfg.AdjustRamp)

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(ctrl, publisher, mqttStatus, tracker, opts.heartbeat, time.Now, ticker.C, sigCh)
}

// runLoop steps the controller on every tick until a signal arrives, then
// disarms. A ramp in progress delays signal handling until it completes.
func runLoop(ctrl *control.Controller, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	hb := logic.NewHeartbeat(now())

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			off := ctrl.Disarm()
			log.Printf("disarmed: output %dus", off.To)

			signalName := signalName(s)
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				refresh(tracker, ctrl, mqttStatus)
				event.RawPayload = status.FormatStatusEvent(tracker.Snapshot(), "SHUTDOWN", signalName)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-tick:
			events, err := ctrl.Step()
			if err != nil {
				log.Printf("control error: %v", err)
			}

			for _, event := range events {
				logEvent(event)
				if err := publisher.Publish(event); err != nil {
					log.Printf("publish error: %v", err)
				}
			}

			// now() is read after Step: a ramp may have blocked for a while.
			if hbData := hb.Check(now(), heartbeat); hbData != nil {
				counts := ctrl.Counts()
				log.Printf("heartbeat: uptime=%v state=%s pulse=%dus on=%d off=%d adjust=%d",
					hbData.Uptime, ctrl.State(), ctrl.Current(), counts.On, counts.Off, counts.Adjust)

				hbEvent := mqtt.SystemEvent{
					Timestamp: hbData.Timestamp,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					refresh(tracker, ctrl, mqttStatus)
					hbEvent.RawPayload = status.FormatStatusEvent(tracker.Snapshot(), "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			if tracker != nil {
				refresh(tracker, ctrl, mqttStatus)
			}
		}
	}
}

func refresh(tracker *status.Tracker, ctrl *control.Controller, mqttStatus mqtt.ConnectionStatus) {
	tracker.Update(ctrl.State(), ctrl.Current(), ctrl.Armed(), ctrl.Counts())
	if mqttStatus != nil {
		tracker.SetMQTTConnected(mqttStatus.IsConnected())
	}
}

func logEvent(event logic.Event) {
	switch event.Type {
	case logic.EventSystemOn, logic.EventSystemOff:
		log.Printf("event: %s %dus -> %dus (held %v)", event.Type, event.From, event.To, event.Held)
	default:
		log.Printf("event: %s %dus -> %dus", event.Type, event.From, event.To)
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}

func printInputs(sampler *control.Sampler) error {
	pressed, err := sampler.ReadButtonLevel()
	if err != nil {
		return err
	}
	raw, err := sampler.ReadRaw()
	if err != nil {
		return err
	}
	us, err := sampler.ReadPotentiometer()
	if err != nil {
		return err
	}
	fmt.Printf("button: %s, pot: %d (%dus)\n", buttonString(pressed), raw, us)
	return nil
}

func buttonString(pressed bool) string {
	if pressed {
		return "PRESSED"
	}
	return "RELEASED"
}

func statusConfig(cfg control.Config, opts options) status.Config {
	return status.Config{
		PollMs:       cfg.Poll.Milliseconds(),
		LongPressMs:  cfg.LongPress.Milliseconds(),
		SoftStartMs:  cfg.SoftStart.Milliseconds(),
		AdjustRampMs: cfg.AdjustRamp.Milliseconds(),
		ArmDelayMs:   cfg.ArmDelay.Milliseconds(),
		FrequencyHz:  cfg.FrequencyHz,
		MinUS:        int(cfg.Limits.Min),
		MaxUS:        int(cfg.Limits.Max),
		RampSteps:    cfg.RampSteps,
		Broker:       opts.broker,
		HTTPAddr:     opts.httpAddr,
	}
}
