package state

// Index is an id and name lookup table built once per layout pass.
type Index struct {
	byId   map[string]*Member
	byName map[string]*Member
}

func NewIndex(list Members) *Index {
	index := &Index{
		byId:   make(map[string]*Member, len(list)),
		byName: make(map[string]*Member, len(list)),
	}

	for _, m := range list {
		if _, exist := index.byId[m.Id]; !exist {
			index.byId[m.Id] = m
		}

		// first match wins for duplicated display names
		if _, exist := index.byName[m.Name]; !exist {
			index.byName[m.Name] = m
		}
	}

	return index
}

func (index *Index) Get(id string) *Member {
	return index.byId[id]
}

func (index *Index) FindByName(name string) *Member {
	return index.byName[name]
}

// Spouse resolves by SpouseId when present, falling back to the display name.
func (index *Index) Spouse(m *Member) *Member {
	if m.SpouseId != "" {
		return index.Get(m.SpouseId)
	}

	if m.Spouse == "" {
		return nil
	}

	return index.FindByName(m.Spouse)
}
