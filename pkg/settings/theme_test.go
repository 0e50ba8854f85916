package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphloom/pkg/props"
)

func TestApplyTheme(t *testing.T) {
	base := Sample()
	base.EstimateLabelSizeFromFont = false

	themed := ApplyTheme(base, map[string]any{
		MetricFontFamily:      "Inter",
		MetricFontSize:        json.Number("14"),
		MetricLineHeight:      18,
		MetricLabelVertical:   "3",
		MetricLabelHorizontal: 4.0,
		MetricEdgeThickness:   2.5,
	})

	for i, l := range themed.labels() {
		if v, _ := l.Properties[props.KeyFontName].Str(); v != "Inter" {
			t.Errorf("label %d font = %q, want Inter", i, v)
		}
		if v, _ := l.Properties[props.KeyFontSize].Number(); v != 14 {
			t.Errorf("label %d font size = %v, want 14", i, v)
		}
		if l.Height < 24 {
			t.Errorf("label %d height = %v, want >= 24", i, l.Height)
		}
		if l.Width < 26 {
			t.Errorf("label %d width = %v, want >= 26", i, l.Width)
		}
	}
	if !themed.EstimateLabelSizeFromFont {
		t.Error("font size metric did not enable estimation")
	}
	if v, _ := themed.EdgeDefaults.Properties[props.KeyEdgeThickness].Number(); v != 2.5 {
		t.Errorf("edge thickness = %v, want 2.5", v)
	}
	if themed.NodeDefaults.Label.Width != 150 {
		t.Errorf("node label width = %v, want 150 kept", themed.NodeDefaults.Label.Width)
	}

	if v, _ := base.NodeDefaults.Label.Properties[props.KeyFontName].Str(); v != "Arial" {
		t.Errorf("ApplyTheme modified its input: font = %q", v)
	}
	if base.EstimateLabelSizeFromFont {
		t.Error("ApplyTheme modified its input flag")
	}
}

func TestApplyThemeIgnoresBadMetrics(t *testing.T) {
	base := Sample()
	themed := ApplyTheme(base, map[string]any{
		MetricFontSize:      "large",
		MetricLineHeight:    -4,
		MetricEdgeThickness: []any{1},
	})
	if v, _ := themed.NodeDefaults.Label.Properties[props.KeyFontSize].Number(); v != 16 {
		t.Errorf("font size = %v, want 16 kept", v)
	}
	if themed.NodeDefaults.Port.Label.Height != 2 {
		t.Errorf("port label height = %v, want 2 kept", themed.NodeDefaults.Port.Label.Height)
	}
	if v, _ := themed.EdgeDefaults.Properties[props.KeyEdgeThickness].Number(); v != 1 {
		t.Errorf("edge thickness = %v, want 1 kept", v)
	}
}

func TestApplyThemeLineHeightWithoutPadding(t *testing.T) {
	themed := ApplyTheme(Sample(), map[string]any{MetricLineHeight: 10})
	if got := themed.NodeDefaults.Port.Label.Height; got != 10 {
		t.Errorf("port label height = %v, want 10", got)
	}
	if got := themed.NodeDefaults.Port.Label.Width; got != 0 {
		t.Errorf("port label width = %v, want 0 without horizontal padding", got)
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	wrapped := filepath.Join(dir, "wrapped.json")
	bare := filepath.Join(dir, "bare.yaml")
	os.WriteFile(wrapped, []byte(`{"id": "dark", "metrics": {"font_size_px": 12}}`), 0o644)
	os.WriteFile(bare, []byte("font_family: Inter\n"), 0o644)

	m, err := LoadTheme(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m[MetricFontSize]; !ok {
		t.Errorf("LoadTheme(wrapped) = %v, want metrics object", m)
	}
	m, err = LoadTheme(bare)
	if err != nil {
		t.Fatal(err)
	}
	if m[MetricFontFamily] != "Inter" {
		t.Errorf("LoadTheme(bare) = %v, want font_family Inter", m)
	}
}
