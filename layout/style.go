package layout

var Default = Style{
	GenerationHeight: 200,
	MemberWidth:      280,
	TopMargin:        150,
	LabelOffset:      100,
}

type Style struct {
	GenerationHeight float64 `toml:"generation_height"`
	MemberWidth      float64 `toml:"member_width"`
	TopMargin        float64 `toml:"top_margin"`
	LabelOffset      float64 `toml:"label_offset"`
}

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
