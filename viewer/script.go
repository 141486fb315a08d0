package viewer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/hershey/raster"
)

// ErrBadScript is returned by ParseEvents for an unknown or malformed step.
var ErrBadScript = errors.New("viewer: bad event script")

// ParseEvents parses a comma-separated event script such as
//
//	down,right,right,type:hi,enter,move:40:300
//
// Steps: up/down change font, left/right change glyph, type:TEXT types
// each rune of TEXT, enter types a newline, backspace deletes, and
// move:X:Y moves the specimen anchor.
func ParseEvents(script string) ([]Event, error) {
	var evs []Event
	for i, step := range strings.Split(script, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		name, arg, _ := strings.Cut(step, ":")
		switch strings.ToLower(name) {
		case "down", "next-font":
			evs = append(evs, NextFont{})
		case "up", "prev-font":
			evs = append(evs, PrevFont{})
		case "right", "next-glyph":
			evs = append(evs, NextGlyph{})
		case "left", "prev-glyph":
			evs = append(evs, PrevGlyph{})
		case "backspace":
			evs = append(evs, Backspace{})
		case "enter":
			evs = append(evs, TypeRune{R: '\n'})
		case "type":
			for _, r := range arg {
				evs = append(evs, TypeRune{R: r})
			}
		case "move":
			p, err := parsePoint(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: step %d %q: %w", ErrBadScript, i+1, step, err)
			}
			evs = append(evs, MoveTo{P: p})
		default:
			return nil, fmt.Errorf("%w: step %d: unknown event %q", ErrBadScript, i+1, name)
		}
	}
	return evs, nil
}

func parsePoint(s string) (raster.Point, error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return raster.Point{}, errors.New("want X:Y")
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return raster.Point{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return raster.Point{}, err
	}
	return raster.Pt(x, y), nil
}
