package state

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	. "github.com/redexp/familymuseum-lsp/types"
	. "github.com/redexp/familymuseum-lsp/utils"
	"github.com/tliron/commonlog"
	"go.uber.org/multierr"
)

var log = commonlog.GetLogger("familymuseum.state")

type Dataset struct {
	Uri     Uri
	Text    string
	Open    bool
	Members Members
}

// Datasets tracks member collections found in workspace folders or opened in the editor.
type Datasets struct {
	Folders   []Uri
	Docs      map[Uri]*Dataset
	DirtyUris DirtyUris
	Active    Uri

	UpdateLock sync.Mutex
}

func CreateDatasets() *Datasets {
	return &Datasets{
		Folders:   make([]Uri, 0),
		Docs:      make(map[Uri]*Dataset),
		DirtyUris: make(DirtyUris),
	}
}

func ParseMembers(text string) (Members, error) {
	list := make(Members, 0)

	err := json.Unmarshal([]byte(text), &list)

	if err != nil {
		return nil, fmt.Errorf("parse members: %w", err)
	}

	list = slices.DeleteFunc(list, func(m *Member) bool {
		return m == nil
	})

	return list, nil
}

func (ds *Datasets) SetFolders(folders []Uri) (err error) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	ds.Folders = make([]Uri, 0, len(folders))

	for _, folder := range folders {
		uri, e := NormalizeUri(folder)

		if e != nil {
			err = multierr.Append(err, e)
			continue
		}

		ds.Folders = append(ds.Folders, uri)

		e = WalkFiles(uri, func(uri Uri) error {
			text, err := GetText(uri)

			if err != nil {
				return err
			}

			ds.DirtyUris.SetText(uri, UriCreate, text)

			return nil
		})

		if e != nil {
			err = multierr.Append(err, fmt.Errorf("walk %s: %w", uri, e))
		}
	}

	return
}

func (ds *Datasets) Open(uri Uri, text string) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	if doc, ok := ds.Docs[uri]; ok && doc.Text == text {
		doc.Open = true
		return
	}

	ds.DirtyUris.SetText(uri, UriOpen, text)
}

func (ds *Datasets) Change(uri Uri, text string) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	ds.DirtyUris.SetText(uri, UriChange, text)
}

func (ds *Datasets) Close(uri Uri) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	if doc, ok := ds.Docs[uri]; ok {
		doc.Open = false
	}
}

func (ds *Datasets) Delete(uri Uri) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	ds.DirtyUris.Set(uri, UriDelete)
}

// UpdateDirty parses every dirty dataset and reports whether the active member list changed.
// A file that fails to parse keeps its previous members.
func (ds *Datasets) UpdateDirty() (changed bool, err error) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	if len(ds.DirtyUris) == 0 {
		return
	}

	uris := ds.DirtyUris
	ds.DirtyUris = make(DirtyUris)

	for _, uri := range uris.Sorted() {
		item := uris[uri]

		if item.IsDeleted() {
			delete(ds.Docs, uri)

			if ds.Active == uri {
				ds.Active = ""
				changed = true
			}

			continue
		}

		members, e := ParseMembers(item.Text)

		if e != nil {
			log.Warningf("dataset %s: %s", uri, e.Error())
			err = multierr.Append(err, fmt.Errorf("%s: %w", uri, e))
			continue
		}

		doc, exist := ds.Docs[uri]

		if !exist {
			doc = &Dataset{Uri: uri}
			ds.Docs[uri] = doc
		}

		doc.Text = item.Text
		doc.Members = members

		if item.IsEdited() {
			doc.Open = true
			ds.Active = uri
			changed = true
		} else if ds.Active == uri {
			changed = true
		}
	}

	if ds.Active == "" && len(ds.Docs) > 0 {
		keys := make([]Uri, 0, len(ds.Docs))

		for uri := range ds.Docs {
			keys = append(keys, uri)
		}

		slices.Sort(keys)
		ds.Active = keys[0]
		changed = true
	}

	log.Debugf("datasets updated: %d docs, active %s", len(ds.Docs), ds.Active)

	return
}

// Current returns the active dataset or the built-in sample.
func (ds *Datasets) Current() (Uri, Members) {
	ds.UpdateLock.Lock()
	defer ds.UpdateLock.Unlock()

	if doc, ok := ds.Docs[ds.Active]; ok {
		return doc.Uri, doc.Members
	}

	return SampleUri, Sample()
}
