package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string     `json:"event,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	State         string     `json:"state"`
	PulseUS       int        `json:"pulse_us"`
	Armed         bool       `json:"armed"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	MQTT          MQTTStatus `json:"mqtt"`
	Counts        CountsJSON `json:"event_counts"`
	Config        ConfigJSON `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Enabled   bool   `json:"enabled"`
	Connected bool   `json:"connected"`
	Broker    string `json:"broker,omitempty"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	On             int `json:"on"`
	Off            int `json:"off"`
	Adjust         int `json:"adjust"`
	IgnoredPresses int `json:"ignored_presses"`
}

// ConfigJSON is the JSON representation of controller config.
type ConfigJSON struct {
	PollMs       int64  `json:"poll_ms"`
	LongPressMs  int64  `json:"long_press_ms"`
	SoftStartMs  int64  `json:"soft_start_ms"`
	AdjustRampMs int64  `json:"adjust_ramp_ms"`
	ArmDelayMs   int64  `json:"arm_delay_ms"`
	FrequencyHz  int    `json:"frequency_hz"`
	MinUS        int    `json:"min_us"`
	MaxUS        int    `json:"max_us"`
	RampSteps    int    `json:"ramp_steps"`
	HTTPAddr     string `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	state := string(snap.State)
	if state == "" {
		state = "UNKNOWN"
	}

	return StatusInner{
		State:         state,
		PulseUS:       int(snap.Pulse),
		Armed:         snap.Armed,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT: MQTTStatus{
			Enabled:   snap.Config.Broker != "",
			Connected: snap.MQTTConnected,
			Broker:    snap.Config.Broker,
		},
		Counts: CountsJSON{
			On:             snap.Counts.On,
			Off:            snap.Counts.Off,
			Adjust:         snap.Counts.Adjust,
			IgnoredPresses: snap.Counts.IgnoredPresses,
		},
		Config: ConfigJSON{
			PollMs:       snap.Config.PollMs,
			LongPressMs:  snap.Config.LongPressMs,
			SoftStartMs:  snap.Config.SoftStartMs,
			AdjustRampMs: snap.Config.AdjustRampMs,
			ArmDelayMs:   snap.Config.ArmDelayMs,
			FrequencyHz:  snap.Config.FrequencyHz,
			MinUS:        snap.Config.MinUS,
			MaxUS:        snap.Config.MaxUS,
			RampSteps:    snap.Config.RampSteps,
			HTTPAddr:     snap.Config.HTTPAddr,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
