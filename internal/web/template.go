package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/altiis/hacr/internal/logic"
	"github.com/altiis/hacr/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	// percent of the usable range the current pulse sits at, for the bar
	"throttle": func(pulse logic.PulseWidth, min, max int) int {
		if max <= min {
			return 0
		}
		p := (int(pulse) - min) * 100 / (max - min)
		if p < 0 {
			return 0
		}
		if p > 100 {
			return 100
		}
		return p
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="2">
<title>Actuator Controller</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.connected { color: green; }
.disconnected { color: red; }
.bar { background: #eee; height: 10px; width: 100%; }
.bar div { background: green; height: 10px; }
</style>
</head>
<body>
<h1>Actuator Controller</h1>

<h2>Output</h2>
<table>
<tr><th>State</th><td id="state" class="{{if eq (printf "%s" .State) "ON"}}on{{else}}off{{end}}">{{.State}}</td></tr>
<tr><th>Pulse</th><td id="pulse">{{.Pulse}}us</td></tr>
<tr><th>Throttle</th><td><div class="bar"><div style="width: {{throttle .Pulse .Config.MinUS .Config.MaxUS}}%"></div></div></td></tr>
<tr><th>Armed</th><td>{{if .Armed}}yes{{else}}no{{end}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
{{if .Config.Broker}}<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>{{else}}<tr><th>MQTT</th><td>disabled</td></tr>{{end}}
</table>

<h2>Event Counts</h2>
<table>
<tr><th>System ON</th><td>{{.Counts.On}}</td></tr>
<tr><th>System OFF</th><td>{{.Counts.Off}}</td></tr>
<tr><th>Adjust</th><td>{{.Counts.Adjust}}</td></tr>
<tr><th>Short presses</th><td>{{.Counts.IgnoredPresses}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Range</th><td>{{.Config.MinUS}}-{{.Config.MaxUS}}us @ {{.Config.FrequencyHz}}Hz</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Long press</th><td>{{.Config.LongPressMs}}ms</td></tr>
<tr><th>Soft start</th><td>{{.Config.SoftStartMs}}ms</td></tr>
<tr><th>Adjust ramp</th><td>{{.Config.AdjustRampMs}}ms</td></tr>
<tr><th>Ramp steps</th><td>{{.Config.RampSteps}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
