package render

const overlayTemplate = `{{define "overlay"}}<div class="pitch">
{{- range .Rects}}
  <div class="zone" style="{{.Style}}" title="{{.Tooltip}}"></div>
{{- end}}
</div>{{end}}`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Caption.Name}} heat map</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0 auto; max-width: 960px; padding: 1rem; color: #1a1a2e; }
header h1 { font-size: 1.4rem; margin: 0 0 .25rem; }
header p { color: #6c757d; font-size: .875rem; margin: 0; }
.pitch { position: relative; width: 100%; aspect-ratio: 3 / 2; margin: 1rem 0; background: #2e7d32; border: 2px solid #fff; box-sizing: border-box; overflow: hidden; }
.pitch::before { content: ""; position: absolute; left: 50%; top: 0; bottom: 0; border-left: 2px solid rgba(255, 255, 255, 0.6); }
.zone { position: absolute; }
.summary { display: flex; gap: 1.5rem; font-size: .875rem; }
.summary .value { font-weight: 700; }
.muted { color: #6c757d; }
</style>
</head>
<body>
<header>
  <h1>{{.Caption.Name}}{{with .Caption.Jersey}} <span class="muted">#{{.}}</span>{{end}}</h1>
  <p>{{.Caption.Team}} &middot; {{.Caption.Position}} &middot; {{.TotalEvents}} events</p>
</header>
{{template "overlay" .}}
<section class="summary">
  <div><span class="value">{{.Summary.ActiveZoneCount}}</span> active zones of {{.Summary.ZoneCount}}</div>
  <div>max <span class="value">{{.Summary.MaxIntensity}}</span></div>
  <div>mean <span class="value">{{.Summary.MeanIntensity}}</span></div>
  <div>p90 <span class="value">{{.Summary.P90Intensity}}</span></div>
</section>
<p class="muted">Source: {{.Source}} &middot; normalization {{.Normalization}}{{if .Rejected}} &middot; {{.Rejected}} zones rejected{{end}}</p>
</body>
</html>
`
