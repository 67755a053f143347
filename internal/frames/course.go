package frames

import (
	"fmt"
	"strings"
)

// Course is the validated, read-only frame set for one unit of instruction.
type Course struct {
	frames    map[string]*Frame
	mainOrder []string
}

// NewCourse validates and indexes a frame set. Frame names must be unique,
// at least one main frame must exist, and every non-terminal next_step must
// reference a known frame. An inconsistent course is a configuration error
// caught here, not mid-lesson.
func NewCourse(frames []Frame) (*Course, error) {
	var errs []string

	c := &Course{frames: make(map[string]*Frame, len(frames))}
	for i := range frames {
		f := &frames[i]
		if f.Name == "" {
			errs = append(errs, "frame with empty name")
			continue
		}
		if _, dup := c.frames[f.Name]; dup {
			errs = append(errs, fmt.Sprintf("duplicate frame name: %q", f.Name))
			continue
		}
		c.frames[f.Name] = f
		if f.IsMain() {
			c.mainOrder = append(c.mainOrder, f.Name)
		}
	}

	if len(c.mainOrder) == 0 {
		errs = append(errs, "course has no main frames")
	}

	for _, f := range frames {
		for _, o := range f.Options {
			if o.IsTerminal() {
				continue
			}
			if _, ok := c.frames[o.NextStep]; !ok {
				errs = append(errs, fmt.Sprintf("frame %q option %q references nonexistent frame %q", f.Name, o.Answer, o.NextStep))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("course validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return c, nil
}

// Get returns a frame by name.
func (c *Course) Get(name string) (Frame, bool) {
	f, ok := c.frames[name]
	if !ok {
		return Frame{}, false
	}
	return *f, true
}

// Start returns the name of the first main frame.
func (c *Course) Start() string {
	return c.mainOrder[0]
}

// MainFrames returns the main frame names in declared order.
func (c *Course) MainFrames() []string {
	out := make([]string, len(c.mainOrder))
	copy(out, c.mainOrder)
	return out
}

// Len returns the total number of frames, main and remedial.
func (c *Course) Len() int {
	return len(c.frames)
}
