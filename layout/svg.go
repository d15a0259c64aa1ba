package layout

import "github.com/redexp/familymuseum-lsp/state"

type Segment struct {
	From state.Position `json:"from"`
	To   state.Position `json:"to"`
}

type Path struct {
	Segments []Segment      `json:"segments"`
	Marker   *state.Position `json:"marker,omitempty"`
}

// Path returns the line geometry of the connection.
// Parent-child lines are drawn as an elbow through the vertical midpoint.
func (c Connection) Path() Path {
	from := c.From
	to := c.To

	if c.Type != ParentChild {
		p := Path{
			Segments: []Segment{{From: from, To: to}},
		}

		if c.Type == Spouse {
			p.Marker = &state.Position{
				X: (from.X + to.X) / 2,
				Y: (from.Y + to.Y) / 2,
			}
		}

		return p
	}

	midY := (from.Y + to.Y) / 2
	a := state.Position{X: from.X, Y: midY}
	b := state.Position{X: to.X, Y: midY}

	return Path{
		Segments: []Segment{
			{From: from, To: a},
			{From: a, To: b},
			{From: b, To: to},
		},
	}
}
