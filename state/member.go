package state

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Member struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	HebrewName   string   `json:"hebrewName,omitempty"`
	BirthYear    *int     `json:"birthYear,omitempty"`
	DeathYear    *int     `json:"deathYear,omitempty"`
	Role         string   `json:"role"`
	Photo        string   `json:"photo,omitempty"`
	Biography    string   `json:"biography,omitempty"`
	Spouse       string   `json:"spouse,omitempty"`
	SpouseId     string   `json:"spouseId,omitempty"`
	Children     []string `json:"children,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Cultural     []string `json:"cultural,omitempty"`
	Generation   int      `json:"generation"`
	Position     Position `json:"position"`
	ParentIds    []string `json:"parentIds,omitempty"`
}

type Members []*Member

// Clone returns a shallow copy. Slices are shared and must be treated as read only.
func (m *Member) Clone() *Member {
	c := *m
	return &c
}

func (m *Member) HasSpouse() bool {
	return m.SpouseId != "" || m.Spouse != ""
}

func (list Members) Ids() []string {
	ids := make([]string, len(list))

	for i, m := range list {
		ids[i] = m.Id
	}

	return ids
}

func (list Members) Generations() []int {
	seen := make(map[int]bool)
	gens := make([]int, 0)

	for _, m := range list {
		if seen[m.Generation] {
			continue
		}

		seen[m.Generation] = true
		gens = append(gens, m.Generation)
	}

	return gens
}
