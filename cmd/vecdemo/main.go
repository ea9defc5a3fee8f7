// Command vecdemo runs a scripted pen and gradient editing session and
// writes the result as SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/config"
	"github.com/gogpu/vecedit/stops"
	"github.com/gogpu/vecedit/vnet"
)

func main() {
	var (
		configDir = flag.String("config", ".", "directory holding vecedit.yaml or vecedit.toml")
		zoom      = flag.Float64("zoom", 1, "view zoom used to scale snap thresholds")
		output    = flag.String("output", "demo.svg", "output file")
		verbose   = flag.Bool("v", false, "log editing events")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vecedit.SetLogger(logger)

	settings, err := config.LoadOptional(*configDir)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	view := vecedit.Scale(*zoom, *zoom).Aff3()

	net, err := penSession(settings, view, logger)
	if err != nil {
		log.Fatalf("Pen session: %v", err)
	}
	list, err := stopSession(settings, logger)
	if err != nil {
		log.Fatalf("Gradient session: %v", err)
	}

	if err := os.WriteFile(*output, []byte(renderSVG(net, list)), 0o644); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	logger.Info("demo saved", "output", *output, "vertices", net.VertexCount(), "stops", list.Len())
}

// pointer is a scripted pointer position as delivered by an x/image based
// host.
func pointer(x, y float64) vecedit.Point {
	return vecedit.PointFromVec2f(f64.Vec2{x, y})
}

// penSession draws a closed triangle, drags one corner close to another
// vertex's row, bends the opposite corner into a curve and pulls the base
// into an arc. A small star is unioned in as a badge.
func penSession(settings config.Settings, view f64.Aff3, logger *slog.Logger) (*vnet.Network, error) {
	opts, err := settings.EditorOptions(view)
	if err != nil {
		return nil, err
	}
	ed := vnet.NewEditor(vnet.New(), opts...)

	a := ed.AddVertex(pointer(60, 200))
	b := ed.AddVertex(pointer(200, 60))
	c := ed.AddVertex(pointer(340, 196))
	closing, err := ed.ClosePath()
	if err != nil {
		return nil, err
	}

	if err := ed.BeginVertexDrag(c, pointer(340, 196)); err != nil {
		return nil, err
	}
	res, err := ed.UpdateVertexDrag(pointer(330, 203))
	if err != nil {
		return nil, err
	}
	if err := ed.EndVertexDrag(); err != nil {
		return nil, err
	}
	logger.Info("vertex dragged", "vertex", c, "to", res.Point, "xGuides", res.XGuides, "yGuides", res.YGuides)

	if err := ed.Network().BendCorner(b); err != nil {
		return nil, err
	}

	if err := ed.BeginSegmentBendDrag(closing, pointer(195, 201)); err != nil {
		return nil, err
	}
	base, err := ed.UpdateSegmentBendDrag(pointer(195, 236))
	if err != nil {
		return nil, err
	}
	if err := ed.EndSegmentBendDrag(); err != nil {
		return nil, err
	}
	logger.Info("base bent", "segment", closing, "ta", base.TA, "tb", base.TB)

	star, err := vnet.RegularStarPolygon(vecedit.NewRect(pointer(170, 110), pointer(230, 170)), 5, 0.45)
	if err != nil {
		return nil, err
	}
	net := vnet.Union(ed.Network(), star, vnet.OptimizeConfig{Tolerance: 0.5})
	logger.Info("pen session", "start", a, "vertices", net.VertexCount(),
		"segments", net.SegmentCount(), "loops", len(net.Loops()), "bounds", net.Bounds(),
		"area", net.Area(), "containsCentroid", net.Contains(vecedit.Pt(200, 150)))
	return net, nil
}

// stopSession builds a three-stop gradient and drags the middle stop.
func stopSession(settings config.Settings, logger *slog.Logger) (*stops.List[stops.Color], error) {
	var colors []stops.Color
	for _, hex := range []string{"#e63c3c", "#f0c828", "#285adc"} {
		c, err := stops.ParseHex(hex)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	list, err := stops.FromOffsets([]float64{0, 0.5, 1}, colors, settings.StopOptions()...)
	if err != nil {
		return nil, err
	}
	mid := list.At(1).ID
	if err := list.BeginDrag(mid, 0.5); err != nil {
		return nil, err
	}
	if _, err := list.UpdateDrag(0.31); err != nil {
		return nil, err
	}
	idx, err := list.EndDrag()
	if err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}
	center, err := list.Sample(0.5, stops.ExtendPad, stops.LerpColor)
	if err != nil {
		return nil, err
	}
	logger.Info("stop dragged", "stop", mid, "index", idx, "offsets", list.Offsets(), "center", center.Hex())
	return list, nil
}

func renderSVG(net *vnet.Network, list *stops.List[stops.Color]) string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="260">` + "\n")

	track := stops.BaseTrack(stops.Linear).Map(vecedit.Scale(400, 260))
	fmt.Fprintf(&sb, `<defs><linearGradient id="g" gradientUnits="userSpaceOnUse" x1="%g" y1="%g" x2="%g" y2="%g">`+"\n",
		track.A.X, track.A.Y, track.B.X, track.B.Y)
	for _, s := range list.Stops() {
		fmt.Fprintf(&sb, `<stop offset="%g" stop-color="%s" stop-opacity="%g"/>`+"\n", s.Offset, s.Value.Hex()[:7], s.Value.A)
	}
	sb.WriteString("</linearGradient></defs>\n")

	fmt.Fprintf(&sb, `<path d="%s" fill="url(#g)" stroke="black"/>`+"\n", pathData(net.Path()))
	sb.WriteString("</svg>\n")
	return sb.String()
}

func pathData(p *vecedit.Path) string {
	var parts []string
	for _, el := range p.Elements() {
		switch el := el.(type) {
		case vecedit.MoveTo:
			parts = append(parts, "M"+coords(el.Point))
		case vecedit.LineTo:
			parts = append(parts, "L"+coords(el.Point))
		case vecedit.CubicTo:
			parts = append(parts, "C"+coords(el.Control1, el.Control2, el.Point))
		case vecedit.Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// coords formats points as space-separated SVG coordinates.
func coords(points ...vecedit.Point) string {
	parts := make([]string, 0, 2*len(points))
	for _, p := range points {
		v := p.Vec2f()
		parts = append(parts, fmt.Sprintf("%g %g", v[0], v[1]))
	}
	return strings.Join(parts, " ")
}
