package chart

import (
	"fmt"
	"io"
)

// Save writes the chart to path. The format follows the file extension
// (.png, .svg, and the other formats vg knows about).
func (c *Chart) Save(path string) error {
	if err := c.plot.Save(c.width, c.height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// WriteTo renders the chart in the given format ("png", "svg", ...) to w.
func (c *Chart) WriteTo(w io.Writer, format string) error {
	wt, err := c.plot.WriterTo(c.width, c.height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}
