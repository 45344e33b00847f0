package report

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"strconv"

	"db-census/internal/census"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartOptions struct {
	Title string
	XAxis string
	YAxis string
	// Script is a local ECharts bundle (echarts.min.js). When set, the page is
	// an interactive ECharts chart with the bundle inlined; otherwise the chart
	// is drawn as inline SVG. The page never references remote assets.
	Script string
}

var DefaultChartOptions = ChartOptions{
	Title: "Column Count Distribution of Database Tables",
	XAxis: "Columns",
	YAxis: "Tables",
}

// Chart is the bar chart layout: one tick per integer between the smallest and
// largest column count, with a bar only where tables were observed.
type Chart struct {
	Ticks  []int
	Values []int
	Bars   []bool
}

func NewChart(dist census.Distribution) Chart {
	keys := dist.Keys()
	if len(keys) == 0 {
		return Chart{}
	}

	lo, hi := keys[0], keys[len(keys)-1]
	c := Chart{
		Ticks:  make([]int, 0, hi-lo+1),
		Values: make([]int, 0, hi-lo+1),
		Bars:   make([]bool, 0, hi-lo+1),
	}
	for x := lo; x <= hi; x++ {
		n, ok := dist[x]
		c.Ticks = append(c.Ticks, x)
		c.Values = append(c.Values, n)
		c.Bars = append(c.Bars, ok)
	}
	return c
}

type page struct {
	Title   string
	Library template.JS
	Element template.HTML
	Script  template.HTML
	SVG     *svgChart
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
{{- if .Library }}
    <script type="text/javascript">{{ .Library }}</script>
{{- end }}
    <style>
        .container {margin-top:30px; display: flex;justify-content: center;align-items: center;}
        .item {margin: auto;}
        .bar rect {fill: #5470c6;}
        .bar:hover rect {fill: #91cc75;}
        text {font-family: sans-serif; font-size: 12px;}
        .title {font-size: 18px; font-weight: bold;}
    </style>
</head>
<body>
{{- if .SVG }}{{ with .SVG }}
<div class="container">
<svg class="item" xmlns="http://www.w3.org/2000/svg" width="{{ .Width }}" height="{{ .Height }}" viewBox="0 0 {{ .Width }} {{ .Height }}">
    <text class="title" x="{{ .CenterX }}" y="30" text-anchor="middle">{{ .Title }}</text>
    <line x1="{{ .Left }}" y1="{{ .Bottom }}" x2="{{ .Right }}" y2="{{ .Bottom }}" stroke="#6e7079"/>
    <line x1="{{ .Left }}" y1="{{ .Top }}" x2="{{ .Left }}" y2="{{ .Bottom }}" stroke="#6e7079"/>
{{- range .YTicks }}
    <line x1="{{ $.SVG.Left }}" y1="{{ .Y }}" x2="{{ $.SVG.Right }}" y2="{{ .Y }}" stroke="#e0e6f1"/>
    <text class="ytick" x="{{ $.SVG.YLabelX }}" y="{{ .Y }}" text-anchor="end" dominant-baseline="middle">{{ .Label }}</text>
{{- end }}
{{- range .XTicks }}
    <text class="xtick" x="{{ .X }}" y="{{ $.SVG.XLabelY }}" text-anchor="middle">{{ .Label }}</text>
{{- end }}
{{- range .Bars }}
    <g class="bar" data-columns="{{ .Columns }}" data-tables="{{ .Tables }}">
        <title>{{ .Columns }} columns: {{ .Tables }} tables</title>
        <rect x="{{ .X }}" y="{{ .Y }}" width="{{ .Width }}" height="{{ .Height }}"/>
        <text class="value" x="{{ .LabelX }}" y="{{ .LabelY }}" text-anchor="middle">{{ .Tables }}</text>
    </g>
{{- end }}
    <text x="{{ .CenterX }}" y="{{ .AxisTitleY }}" text-anchor="middle">{{ .XAxis }}</text>
    <text x="20" y="{{ .MiddleY }}" text-anchor="middle" transform="rotate(-90 20 {{ .MiddleY }})">{{ .YAxis }}</text>
</svg>
</div>
{{- end }}{{ else }}
{{ .Element }}
{{ .Script }}
{{- end }}
</body>
</html>
`))

// RenderChart writes a standalone HTML page with the distribution bar chart.
// Each bar is centered on its tick, leaving half a unit on either side.
func RenderChart(w io.Writer, dist census.Distribution, o ChartOptions) error {
	p := page{Title: o.Title}

	if o.Script == "" {
		p.SVG = newSVGChart(NewChart(dist), o)
	} else {
		lib, err := os.ReadFile(o.Script)
		if err != nil {
			return fmt.Errorf("failed to read chart script %s: %w", o.Script, err)
		}
		snippet := newBar(dist, o).RenderSnippet()
		p.Library = template.JS(lib)
		p.Element = template.HTML(snippet.Element)
		p.Script = template.HTML(snippet.Script)
	}

	return pageTemplate.Execute(w, p)
}

// newBar builds the ECharts bar chart. The category axis gives every tick its
// own band, which is the half-unit padding around each column count.
func newBar(dist census.Distribution, o ChartOptions) *charts.Bar {
	model := NewChart(dist)

	labels := make([]string, len(model.Ticks))
	data := make([]opts.BarData, len(model.Ticks))
	for i, x := range model.Ticks {
		labels[i] = strconv.Itoa(x)
		if model.Bars[i] {
			data[i] = opts.BarData{Value: model.Values[i]}
		} else {
			// "-" is ECharts' marker for a missing data point.
			data[i] = opts.BarData{Value: "-"}
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Left: "center"}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XAxis}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YAxis}),
	)
	bar.SetXAxis(labels).
		AddSeries(o.YAxis, data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

type svgChart struct {
	Title, XAxis, YAxis string

	Width, Height            float64
	Left, Right, Top, Bottom float64
	CenterX, MiddleY         float64
	YLabelX, XLabelY         float64
	AxisTitleY               float64

	XTicks []svgTick
	YTicks []svgTick
	Bars   []svgBar
}

type svgTick struct {
	X, Y  float64
	Label string
}

type svgBar struct {
	Columns, Tables     int
	X, Y, Width, Height float64
	LabelX, LabelY      float64
}

const barGap = 0.2

func newSVGChart(model Chart, o ChartOptions) *svgChart {
	s := &svgChart{
		Title: o.Title, XAxis: o.XAxis, YAxis: o.YAxis,
		Width: 900, Height: 500,
		Left: 70, Right: 870, Top: 60, Bottom: 440,
	}
	s.CenterX = (s.Left + s.Right) / 2
	s.MiddleY = (s.Top + s.Bottom) / 2
	s.YLabelX = s.Left - 8
	s.XLabelY = s.Bottom + 18
	s.AxisTitleY = s.Bottom + 45

	maxV := 0
	for _, v := range model.Values {
		if v > maxV {
			maxV = v
		}
	}
	step := int(math.Max(1, math.Ceil(float64(maxV)/5)))
	top := step * int(math.Max(1, math.Ceil(float64(maxV)/float64(step))))

	plotH := s.Bottom - s.Top
	yOf := func(v int) float64 { return s.Bottom - plotH*float64(v)/float64(top) }
	for v := 0; v <= top; v += step {
		s.YTicks = append(s.YTicks, svgTick{Y: yOf(v), Label: strconv.Itoa(v)})
	}

	if len(model.Ticks) == 0 {
		return s
	}
	band := (s.Right - s.Left) / float64(len(model.Ticks))
	for i, x := range model.Ticks {
		center := s.Left + band*(float64(i)+0.5)
		s.XTicks = append(s.XTicks, svgTick{X: center, Label: strconv.Itoa(x)})
		if !model.Bars[i] {
			continue
		}
		y := yOf(model.Values[i])
		s.Bars = append(s.Bars, svgBar{
			Columns: x,
			Tables:  model.Values[i],
			X:       center - band*(1-barGap)/2,
			Y:       y,
			Width:   band * (1 - barGap),
			Height:  s.Bottom - y,
			LabelX:  center,
			LabelY:  y - 6,
		})
	}
	return s
}

// WriteChart renders the chart to path, replacing any existing file.
func WriteChart(path string, dist census.Distribution, o ChartOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart %s: %w", path, err)
	}
	if err := RenderChart(f, dist, o); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart %s: %w", path, err)
	}
	return f.Close()
}
