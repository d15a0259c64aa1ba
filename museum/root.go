package museum

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redexp/familymuseum-lsp/layout"
	"github.com/redexp/familymuseum-lsp/search"
	"github.com/redexp/familymuseum-lsp/state"
	. "github.com/redexp/familymuseum-lsp/types"
	"github.com/redexp/familymuseum-lsp/virtual"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("familymuseum.museum")

// Scheduler sources.
const (
	SourceResize  = "resize"
	SourceScroll  = "scroll"
	SourceSearch  = "search"
	SourceSave    = "save"
	SourceSaved   = "saved"
	SourceLoad    = "load"
	SourceWelcome = "welcome"
)

type Status struct {
	Loading   bool       `json:"loading"`
	Welcome   bool       `json:"welcome"`
	Searching bool       `json:"searching"`
	Saving    bool       `json:"saving"`
	LastSaved *time.Time `json:"lastSaved,omitempty"`
}

// Root owns the viewer state. Every derived structure is rebuilt from it by View.
type Root struct {
	Session string

	settings  Settings
	dataset   Uri
	members   state.Members
	viewport  layout.Viewport
	query     string
	hovered   string
	scrollTop float64
	revealed  virtual.Reveal
	status    Status
	listeners []func()
	scheduler *state.Scheduler
	now       func() time.Time

	lock sync.Mutex
}

func CreateRoot(settings Settings) *Root {
	return &Root{
		Session:   uuid.New().String(),
		settings:  settings,
		dataset:   state.SampleUri,
		members:   state.Sample(),
		viewport:  settings.Viewport.Initial(),
		revealed:  make(virtual.Reveal),
		scheduler: state.CreateScheduler(),
		now:       time.Now,
	}
}

func (r *Root) OnUpdate(cb func()) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.listeners = append(r.listeners, cb)
}

func (r *Root) emit() {
	r.lock.Lock()
	listeners := append([]func(){}, r.listeners...)
	r.lock.Unlock()

	for _, cb := range listeners {
		cb()
	}
}

// Start begins the simulated initial load.
func (r *Root) Start() {
	r.lock.Lock()
	r.status.Loading = true
	t := r.settings.Timings
	r.lock.Unlock()

	r.scheduler.Schedule(SourceLoad, t.Load, func() {
		r.lock.Lock()
		now := r.now()
		r.status.Loading = false
		r.status.Welcome = true
		r.status.LastSaved = &now
		r.lock.Unlock()

		log.Infof("session %s loaded", r.Session)
		r.emit()

		r.scheduler.Schedule(SourceWelcome, t.Welcome, func() {
			r.lock.Lock()
			r.status.Welcome = false
			r.lock.Unlock()

			r.emit()
		})
	})
}

func (r *Root) Close() {
	r.scheduler.Stop()
}

// SetMembers replaces the input list. Nil entries are dropped and the
// scroll offset starts over, since it refers to the previous list.
func (r *Root) SetMembers(uri Uri, list state.Members) {
	r.scheduler.Cancel(SourceScroll)

	if slices.Contains(list, nil) {
		list = slices.DeleteFunc(slices.Clone(list), func(m *state.Member) bool {
			return m == nil
		})
	}

	r.lock.Lock()
	r.dataset = uri
	r.members = list
	r.scrollTop = 0
	r.lock.Unlock()

	log.Debugf("members %s: %d", uri, len(list))
}

func (r *Root) Members() state.Members {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.members
}

func (r *Root) Resize(width, height float64) {
	r.scheduler.Schedule(SourceResize, r.timings().Resize, func() {
		r.lock.Lock()
		r.viewport = r.settings.Viewport.Clamp(width, height)
		r.lock.Unlock()

		log.Debugf("resize %vx%v", width, height)
		r.emit()
	})
}

func (r *Root) Scroll(top float64) {
	r.scheduler.Schedule(SourceScroll, r.timings().Scroll, func() {
		r.lock.Lock()
		r.scrollTop = top
		r.lock.Unlock()

		r.emit()
	})
}

// Search applies the query at once and returns the matched and total counts.
// It also drives the simulated searching and autosave indicators.
func (r *Root) Search(query string) (matched int, total int) {
	r.lock.Lock()
	r.query = query
	r.status.Searching = query != ""
	matched = search.Count(r.members, query)
	total = len(r.members)
	t := r.settings.Timings
	r.lock.Unlock()

	if query == "" {
		r.scheduler.Cancel(SourceSearch)
		r.scheduler.Cancel(SourceSave)
		return
	}

	r.scheduler.Schedule(SourceSearch, t.Searching, func() {
		r.lock.Lock()
		r.status.Searching = false
		r.lock.Unlock()

		r.emit()
	})

	r.scheduler.Schedule(SourceSave, t.SaveDelay, func() {
		r.lock.Lock()
		r.status.Saving = true
		r.lock.Unlock()

		r.emit()

		r.scheduler.Schedule(SourceSaved, t.Saving, func() {
			r.lock.Lock()
			now := r.now()
			r.status.Saving = false
			r.status.LastSaved = &now
			r.lock.Unlock()

			r.emit()
		})
	})

	return
}

// Hover sets the hovered member, empty for none, and returns its highlight set.
func (r *Root) Hover(id string) layout.HighlightSet {
	r.lock.Lock()
	r.hovered = id
	tree := search.Filter(r.members, r.query)
	r.lock.Unlock()

	return layout.Highlight(state.NewIndex(tree), id)
}

func (r *Root) Reveal(ids []string) int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.revealed.Add(ids...)
}

func (r *Root) Configure(cb func(*Settings)) {
	r.lock.Lock()
	defer r.lock.Unlock()

	cb(&r.settings)
}

func (r *Root) Settings() Settings {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.settings
}

func (r *Root) Status() Status {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.status
}

func (r *Root) timings() Timings {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.settings.Timings
}
