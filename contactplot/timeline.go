/*
 * timeline.go, part of gontact
 *
 * Copyright 2017 The gontact developers
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

//Package contactplot draws plots of assembled contact data.
package contactplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	contact "github.com/mdnets/gontact"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicTimelinePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Contacts"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

// Timeline plots, for each interaction type present in the assembled
// contact list, the number of contacts at every global frame, and saves
// the result as plotname.png. The contacts must already be assembled:
// fragment-local frame indices would produce a meaningless plot.
func Timeline(contacts []*contact.Contact, title, plotname string) error {
	if contacts == nil {
		panic("Given nil data")
	}
	counts := make(map[string]map[int]int)
	lastframe := 0
	for _, c := range contacts {
		if counts[c.IType] == nil {
			counts[c.IType] = make(map[int]int)
		}
		counts[c.IType][c.Frame]++
		if c.Frame > lastframe {
			lastframe = c.Frame
		}
	}
	//sorted so colors are assigned deterministically
	itypes := make([]string, 0, len(counts))
	for itype := range counts {
		itypes = append(itypes, itype)
	}
	sort.Strings(itypes)
	p := basicTimelinePlot(title)
	for key, itype := range itypes {
		pts := make(plotter.XYs, lastframe+1)
		for frame := 0; frame <= lastframe; frame++ {
			pts[frame].X = float64(frame)
			pts[frame].Y = float64(counts[itype][frame])
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(itypes))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
		p.Legend.Add(strings.TrimLeft(itype, "-"), l)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default:
		r = v
		g = p
		b = q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//colors assigns a color to the key-th of steps data sets, spreading the
//hues over 2/3 of the color circle so the last set doesn't wrap around to
//the color of the first.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 1 {
		steps = 1
	}
	norm := 240.0 / float64(steps)
	hue := norm * float64(key)
	return iHVS2RGB(hue, 1, 1)
}
