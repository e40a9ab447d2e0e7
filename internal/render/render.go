// Package render turns heat-map views into HTML: a 3:2 pitch container with
// one absolutely positioned rectangle per drawn zone.
package render

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// Placeholders for missing player metadata
const (
	UnknownPlayer   = "Unknown player"
	UnknownTeam     = "Unknown team"
	UnknownPosition = "Position n/a"
)

var tmpl = template.Must(template.Must(template.New("page").Parse(pageTemplate)).Parse(overlayTemplate))

type caption struct {
	Name     string
	Team     string
	Position string
	Jersey   string // empty when unknown, which omits it
}

type rect struct {
	Style   template.CSS
	Tooltip string
}

type pageData struct {
	Caption       caption
	TotalEvents   int
	Rects         []rect
	Summary       models.HeatmapSummary
	Source        string
	Normalization string
	Rejected      int
}

// Overlay writes the pitch fragment for view
func Overlay(w io.Writer, view models.HeatmapView) error {
	if err := tmpl.ExecuteTemplate(w, "overlay", newPageData(view)); err != nil {
		return fmt.Errorf("failed to render overlay: %w", err)
	}
	return nil
}

// Page writes a standalone HTML document for a heat-map response
func Page(w io.Writer, resp *models.HeatmapResponse) error {
	data := newPageData(resp.View)
	data.Source = resp.Source
	data.Normalization = resp.Normalization

	if err := tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func newPageData(view models.HeatmapView) pageData {
	data := pageData{
		Caption:     captionFor(view.Player),
		TotalEvents: view.TotalEvents,
		Rects:       make([]rect, 0, len(view.Rects)),
		Summary:     view.Summary,
		Rejected:    len(view.Rejected),
	}
	for _, r := range view.Rects {
		data.Rects = append(data.Rects, rect{Style: rectStyle(r), Tooltip: r.Tooltip})
	}
	return data
}

func captionFor(p models.Player) caption {
	c := caption{Name: p.Name, Team: p.Team, Position: p.Position}
	if c.Name == "" {
		c.Name = UnknownPlayer
	}
	if c.Team == "" {
		c.Team = UnknownTeam
	}
	if c.Position == "" {
		c.Position = UnknownPosition
	}
	if p.JerseyNumber != nil {
		c.Jersey = strconv.Itoa(*p.JerseyNumber)
	}
	return c
}

// rectStyle is built only from numbers and the ramp's rgba() string, so it is
// safe to mark as CSS
func rectStyle(r models.HeatRect) template.CSS {
	return template.CSS(fmt.Sprintf("left: %s%%; top: %s%%; width: %s%%; height: %s%%; background-color: %s",
		pct(r.LeftPct), pct(r.TopPct), pct(r.WidthPct), pct(r.HeightPct), r.Color))
}

func pct(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
