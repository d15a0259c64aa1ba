package virtual

import "math"

var Default = Config{
	Threshold:         100,
	RowHeight:         320,
	ColumnsPerRow:     4,
	PageSize:          50,
	PlaceholderWidth:  260,
	PlaceholderHeight: 180,
}

type Config struct {
	Threshold         int     `toml:"threshold"`
	RowHeight         float64 `toml:"row_height"`
	ColumnsPerRow     int     `toml:"columns_per_row"`
	PageSize          int     `toml:"page_size"`
	Force             bool    `toml:"force"`
	PlaceholderWidth  float64 `toml:"placeholder_width"`
	PlaceholderHeight float64 `toml:"placeholder_height"`
}

// Range is the half-open interval [Start, End) of rendered members.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(i int) bool {
	return r.Start <= i && i < r.End
}

func (c Config) Enabled(count int) bool {
	return c.Force || count > c.Threshold
}

// Window returns the rendered range for the scroll offset.
// All members are rendered while virtualization is off.
func (c Config) Window(scrollTop, viewportHeight float64, count int) Range {
	if !c.Enabled(count) {
		return Range{Start: 0, End: max(count, 0)}
	}

	return c.Compute(scrollTop, viewportHeight, count)
}

func (c Config) Compute(scrollTop, viewportHeight float64, count int) Range {
	count = max(count, 0)

	if c.RowHeight <= 0 || c.ColumnsPerRow <= 0 {
		return Range{Start: 0, End: count}
	}

	scrollTop = max(scrollTop, 0)
	viewportHeight = max(viewportHeight, 0)

	start := int(math.Floor(scrollTop/c.RowHeight)) * c.ColumnsPerRow
	start = min(start, count)

	visible := int(math.Ceil(viewportHeight/c.RowHeight)) * c.ColumnsPerRow
	end := min(start+visible+max(c.PageSize, 0), count)

	return Range{
		Start: start,
		End:   max(end, start),
	}
}
