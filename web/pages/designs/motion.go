package designs

import (
	"math"
	"strconv"
	"strings"
)

// Enter effects, matching keyframes in static/css/designs.css
const (
	EnterRise = "rise" // translate up from --rise px
	EnterDrop = "drop" // translate down from -20px
	EnterFade = "fade"
	EnterZoom = "zoom" // scale up from --zoom
	EnterTilt = "tilt" // rotateY from -20deg
)

// Motion is an entrance animation declaration: which effect, how long, how late.
// It renders to a class list plus an inline style, so the browser does the work.
type Motion struct {
	Enter    string
	Duration float64 // seconds
	Delay    float64 // seconds
	Rise     int     // px, EnterRise only
	Zoom     float64 // start scale, EnterZoom only
}

// Stagger returns a copy of m delayed by index*step seconds
func (m Motion) Stagger(index int, step float64) Motion {
	m.Delay += float64(index) * step
	return m
}

// Class is the class list that selects the keyframes
func (m Motion) Class() string {
	return "motion enter-" + m.Enter
}

// Style is the inline timing for the animation
func (m Motion) Style() string {
	parts := []string{
		"animation-duration:" + seconds(m.Duration),
		"animation-delay:" + seconds(m.Delay),
	}
	if m.Enter == EnterRise && m.Rise != 0 {
		parts = append(parts, "--rise:"+strconv.Itoa(m.Rise)+"px")
	}
	if m.Enter == EnterZoom && m.Zoom != 0 {
		parts = append(parts, "--zoom:"+strconv.FormatFloat(m.Zoom, 'f', -1, 64))
	}
	return strings.Join(parts, ";")
}

// Attrs returns element attribute pairs merging class with the motion
func (m Motion) Attrs(class string, extra ...string) []string {
	attrs := []string{"class", strings.TrimSpace(class + " " + m.Class()), "style", m.Style()}
	return append(attrs, extra...)
}

// seconds formats v to millisecond precision, so 3*0.1 prints as 0.3s
func seconds(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64) + "s"
}
