// Command graticule renders the latitude/longitude grid seen by a camera to
// a PNG image.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/graticule"
	"github.com/gogpu/graticule/camera"
	"github.com/gogpu/graticule/geo"
	"github.com/gogpu/graticule/grid"
	"github.com/gogpu/graticule/render"
)

// view is what both camera kinds offer the command.
type view interface {
	graticule.View
	render.Projector
}

func main() {
	var (
		lat     = flag.Float64("lat", 30, "eye latitude in degrees")
		lon     = flag.Float64("lon", 10, "eye longitude in degrees")
		alt     = flag.Float64("alt", 1.2e7, "eye altitude in meters")
		heading = flag.Float64("heading", 0, "camera heading in degrees")
		tilt    = flag.Float64("tilt", 0, "camera tilt in degrees")
		fov     = flag.Float64("fov", camera.DefaultFieldOfView, "horizontal field of view in degrees")
		width   = flag.Int("width", 1024, "image width")
		height  = flag.Int("height", 768, "image height")
		flat    = flag.Bool("flat", false, "draw a flat equirectangular map instead of a globe")
		format  = flag.String("format", "dms", "label format: dms or dd")
		lang    = flag.String("lang", "en", "language for decimal labels")
		config  = flag.String("config", "", "optional YAML, TOML or JSON file with per-level styles")
		output  = flag.String("output", "graticule.png", "output file")
		verbose = flag.Bool("v", false, "log selection details")
	)
	flag.Parse()

	if *verbose {
		graticule.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	angleFormat, err := parseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid language %q: %v", *lang, err)
	}

	var cam view
	if *flat {
		f := camera.NewFlat(*width, *height)
		f.Center = geo.LatLon(*lat, *lon)
		cam = f
	} else {
		p := camera.NewPerspective(*width, *height)
		p.Eye = geo.NewPosition(*lat, *lon, *alt)
		p.HeadingDegrees = *heading
		p.TiltDegrees = *tilt
		p.FOVDegrees = *fov
		cam = p
	}

	factory := render.NewFactory(render.WithFormatter(render.NewLocalizedFormatter(angleFormat, tag)))
	layer := graticule.NewLayer(factory, graticule.WithAngleFormat(angleFormat))
	frame := layer.Render(cam)

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.Hex("#05070d"))
	drawSurface(dc, cam, *flat)

	styles := render.DefaultStyles()
	if *config != "" {
		if err := loadStyles(*config, &styles); err != nil {
			log.Fatalf("Invalid styles: %v", err)
		}
	}

	canvas := render.NewCanvas(dc, cam, styles)
	if err := canvas.Draw(frame); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	lines, labels := frame.CountByLevel()
	log.Printf("Graticule saved to %s (%dx%d), lines per level %v, labels per level %v\n",
		*output, *width, *height, lines, labels)
}

func parseFormat(s string) (grid.AngleFormat, error) {
	switch s {
	case "dms":
		return grid.Sexagesimal, nil
	case "dd":
		return grid.Decimal, nil
	}
	return 0, fmt.Errorf("unknown label format %q, want dms or dd", s)
}

var ocean = gg.Hex("#12305a")

// drawSurface fills the part of the canvas covered by the planet.
func drawSurface(dc *gg.Context, cam view, flat bool) {
	dc.SetColor(ocean.Color())
	if flat {
		x0, y0, _ := cam.Project(geo.Location{Lat: 90, Lon: -180}, 0)
		x1, y1, _ := cam.Project(geo.Location{Lat: -90, Lon: 180}, 0)
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		_ = dc.Fill()
		return
	}

	eye := cam.EyePosition()
	r := cam.GlobeRadius()
	// Angular radius of the horizon seen from the eye, pulled in slightly so
	// the limb points stay on the near side.
	limb := math.Acos(r/(r+eye.Alt)) * 0.999

	const steps = 180
	for i := 0; i < steps; i++ {
		l := destination(eye.Location, limb, 2*math.Pi*float64(i)/steps)
		x, y, ok := cam.Project(l, 0)
		if !ok {
			// The horizon leaves the view, so the surface covers it all.
			dc.ClearPath()
			dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
			_ = dc.Fill()
			return
		}
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	_ = dc.Fill()
}

// destination returns the point at angular distance d (radians) from l along
// the bearing b (radians from north).
func destination(l geo.Location, d, b float64) geo.Location {
	lat1, lon1 := l.LatRadians(), l.LonRadians()
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(b))
	lon2 := lon1 + math.Atan2(math.Sin(b)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))
	return geo.Location{
		Lat: lat2 * 180 / math.Pi,
		Lon: geo.NormalizeLon(lon2 * 180 / math.Pi),
	}
}
