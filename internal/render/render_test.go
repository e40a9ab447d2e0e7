package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jengzang/futbol-backend-go/internal/heatmap"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

// compareGolden diffs actual against testdata/name. With UPDATE_GOLDENS=true
// the file is rewritten instead.
func compareGolden(t *testing.T, name, actual string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	actual = strings.TrimSpace(actual)

	if os.Getenv("UPDATE_GOLDENS") == "true" {
		if err := os.WriteFile(path, []byte(actual+"\n"), 0644); err != nil {
			t.Fatalf("failed to write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", path, err)
	}
	expected := strings.TrimSpace(string(want))
	if actual != expected {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(actual),
			FromFile: "Expected",
			ToFile:   "Actual",
			Context:  3,
		})
		t.Errorf("%s mismatch:\n%s", name, diff)
	}
}

func goldenView() models.HeatmapView {
	return models.HeatmapView{
		Player: models.Player{ID: 5503, Name: "Lionel Messi", Team: "Barcelona"},
		Rects: []models.HeatRect{
			{LeftPct: 0, TopPct: 0, WidthPct: 10, HeightPct: 10, Color: "rgba(255, 189, 0, 0.7)", Tooltip: "25 events (50%) in x 0-12, y 0-8"},
			{LeftPct: 50, TopPct: 25, WidthPct: 100.0 / 3, HeightPct: 12.5, Color: "rgba(255, 0, 0, 0.7)", Tooltip: "40 events (100%) in x 60-100, y 20-30"},
		},
	}
}

func TestOverlayGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := Overlay(&buf, goldenView()); err != nil {
		t.Fatal(err)
	}
	compareGolden(t, "overlay.golden", buf.String())
}

func TestOverlayMatchesRenderer(t *testing.T) {
	view := heatmap.Render(models.HeatMapRecord{
		Zones: []models.HeatZone{
			{XMin: 0, XMax: 12, YMin: 0, YMax: 8, Intensity: 25, NormalizedIntensity: 0.5},
			{XMin: 12, XMax: 24, YMin: 0, YMax: 8, Intensity: 0},
		},
	})

	var buf bytes.Buffer
	if err := Overlay(&buf, view); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, `class="zone"`); n != 1 {
		t.Errorf("zones drawn = %d, want 1", n)
	}
	if !strings.Contains(out, "left: 0%; top: 0%; width: 10%; height: 10%; background-color: rgba(255, 189, 0, 0.7)") {
		t.Errorf("unexpected style in %s", out)
	}
}

func TestPagePlaceholders(t *testing.T) {
	jersey := 10
	tests := []struct {
		name    string
		player  models.Player
		want    []string
		notWant []string
	}{
		{
			name:   "full metadata",
			player: models.Player{Name: "Lionel Messi", Team: "Barcelona", Position: "Right Wing", JerseyNumber: &jersey},
			want:   []string{"Lionel Messi", "#10", "Barcelona", "Right Wing"},
		},
		{
			name:    "missing metadata",
			player:  models.Player{ID: 1},
			want:    []string{UnknownPlayer, UnknownTeam, UnknownPosition},
			notWant: []string{"#"},
		},
		{
			name:   "escaped name",
			player: models.Player{Name: "<b>Pedri</b>"},
			want:   []string{"&lt;b&gt;Pedri&lt;/b&gt;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := goldenView()
			view.Player = tt.player
			resp := &models.HeatmapResponse{Source: models.HeatmapSourceSynthetic, Normalization: "fixed:50", View: view}

			var buf bytes.Buffer
			if err := Page(&buf, resp); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			header := out[strings.Index(out, "<header>"):strings.Index(out, "</header>")]
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("page missing %q", s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(header, s) {
					t.Errorf("header unexpectedly contains %q", s)
				}
			}
			if !strings.Contains(out, "aspect-ratio: 3 / 2") {
				t.Error("pitch container is not 3:2")
			}
			if !strings.Contains(out, "Source: synthetic") {
				t.Error("source not shown")
			}
		})
	}
}
