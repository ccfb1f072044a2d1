// Package charts собирает спецификации графиков в формате, совместимом с
// Plotly: набор трасс и layout. NaN всегда сериализуется как null.
package charts

import "math"

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	X             any       `json:"x,omitempty"`
	Y             any       `json:"y,omitempty"`
	Z             any       `json:"z,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Parents       []string  `json:"parents,omitempty"`
	Values        []float64 `json:"values,omitempty"`
	Text          any       `json:"text,omitempty"`
	TextTemplate  string    `json:"texttemplate,omitempty"`
	TextInfo      string    `json:"textinfo,omitempty"`
	Orientation   string    `json:"orientation,omitempty"`
	BoxPoints     string    `json:"boxpoints,omitempty"`
	Jitter        float64   `json:"jitter,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	Fill          string    `json:"fill,omitempty"`
	FillColor     string    `json:"fillcolor,omitempty"`
	Hole          float64   `json:"hole,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	ZMid          *float64  `json:"zmid,omitempty"`
	ZMin          *float64  `json:"zmin,omitempty"`
	ZMax          *float64  `json:"zmax,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
	CustomData    any       `json:"customdata,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
}

type Marker struct {
	Color      any     `json:"color,omitempty"`
	Colors     any     `json:"colors,omitempty"`
	ColorScale string  `json:"colorscale,omitempty"`
	Symbol     string  `json:"symbol,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	Line       *Line   `json:"line,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

type ColorBar struct {
	Title string `json:"title"`
}

type Layout struct {
	Title       string       `json:"title"`
	Template    string       `json:"template"`
	Height      int          `json:"height,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Legend struct {
	Orientation string  `json:"orientation"`
	Y           float64 `json:"y"`
}

// style задаёт общие отступы и горизонтальную легенду
func style(l *Layout, height int) {
	l.Margin = &Margin{L: 50, R: 30, T: 60, B: 40}
	l.Legend = &Legend{Orientation: "h", Y: -0.2}
	if height > 0 {
		l.Height = height
	}
}

type Axis struct {
	Title      string    `json:"title,omitempty"`
	Side       string    `json:"side,omitempty"`
	TickMode   string    `json:"tickmode,omitempty"`
	TickVals   any       `json:"tickvals,omitempty"`
	TickText   []string  `json:"ticktext,omitempty"`
	TickFormat string    `json:"tickformat,omitempty"`
	Range      []float64 `json:"range,omitempty"`
	RangeMode  string    `json:"rangemode,omitempty"`
	AutoMargin bool      `json:"automargin,omitempty"`
}

type Shape struct {
	Type string  `json:"type"`
	XRef string  `json:"xref,omitempty"`
	YRef string  `json:"yref,omitempty"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Line Line    `json:"line"`
}

type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
}

// Empty - пустой график с подписью по центру
func Empty(template, text string) Figure {
	return Figure{
		Data: []Trace{},
		Layout: Layout{
			Template: template,
			Annotations: []Annotation{{
				Text: text, XRef: "paper", YRef: "paper", X: 0.5, Y: 0.5,
			}},
		},
	}
}

func nullable(values [][]float64) [][]*float64 {
	out := make([][]*float64, len(values))
	for i, row := range values {
		out[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			x := v
			out[i][j] = &x
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
