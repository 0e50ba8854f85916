package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/graphloom/pkg/io"
	"github.com/matzehuels/graphloom/pkg/props"
)

// Theme metric keys understood by [ApplyTheme].
const (
	MetricFontFamily      = "font_family"
	MetricFontSize        = "font_size_px"
	MetricLineHeight      = "label_line_height_px"
	MetricEdgeThickness   = "edge_thickness_px"
	MetricLabelHorizontal = "node_label_horizontal_padding_px"
	MetricLabelVertical   = "node_label_vertical_padding_px"
)

// ApplyTheme returns a copy of s adjusted by theme metrics:
//
//   - font_family sets the font name on every role label default
//   - font_size_px > 0 sets the font size on them and turns on estimation
//   - label_line_height_px > 0 raises label heights to line height plus
//     twice the vertical padding, and widths to line height plus twice the
//     horizontal padding when that padding is positive
//   - edge_thickness_px > 0 sets the edge thickness
//
// Type overrides are left alone. Metrics that are not numbers are ignored.
func ApplyTheme(s *Settings, metrics map[string]any) *Settings {
	out := s.Clone()

	if family, ok := metrics[MetricFontFamily]; ok && family != nil {
		for _, l := range out.labels() {
			setProp(&l.Properties, props.KeyFontName, props.String(fmt.Sprint(family)))
		}
	}

	if size, ok := metricNumber(metrics, MetricFontSize); ok && size > 0 {
		for _, l := range out.labels() {
			setProp(&l.Properties, props.KeyFontSize, props.Float(size))
		}
		out.EstimateLabelSizeFromFont = true
	}

	if lh, ok := metricNumber(metrics, MetricLineHeight); ok && lh > 0 {
		hpad, _ := metricNumber(metrics, MetricLabelHorizontal)
		vpad, _ := metricNumber(metrics, MetricLabelVertical)
		height := max(1, lh+2*vpad)
		width := max(1, lh+2*hpad)
		for _, l := range out.labels() {
			l.Height = max(l.Height, height)
			if hpad > 0 {
				l.Width = max(l.Width, width)
			}
		}
	}

	if thickness, ok := metricNumber(metrics, MetricEdgeThickness); ok && thickness > 0 {
		setProp(&out.EdgeDefaults.Properties, props.KeyEdgeThickness, props.Float(thickness))
	}
	return out
}

// LoadTheme reads a theme metrics file. A file holding a "metrics" object
// yields that object; otherwise the whole document is the metric map.
func LoadTheme(path string) (map[string]any, error) {
	m, err := io.ReadMap(path)
	if err != nil {
		return nil, err
	}
	if inner, ok := m["metrics"].(map[string]any); ok {
		return inner, nil
	}
	return m, nil
}

func metricNumber(metrics map[string]any, key string) (float64, bool) {
	switch v := metrics[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}
