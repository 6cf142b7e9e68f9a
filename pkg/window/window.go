// Package window keeps named claims on time windows. A window is an
// interval over timestamps; the table rejects claims whose window
// overlaps one already held, so at most one entry covers any instant.
package window

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/alere/intervals/pkg/interval"
)

// Entry is a named, labelled claim on a time window.
type Entry struct {
	Name   string
	Window interval.Interval[interval.Time]
	Labels labels.Set
}

type Table interface {
	Get(name string) (Entry, error)
	Claim(e Entry) error
	Release(name string) error
	Update(e Entry) error

	Count() int
	Has(name string) bool

	FindAt(at time.Time) (Entry, bool)
	IsFree(w interval.Interval[interval.Time]) bool

	GetAll() []Entry
	GetByLabel(selector labels.Selector) []Entry
}

func New(initEntries ...Entry) (Table, error) {
	r := &wtable{
		m:       new(sync.RWMutex),
		entries: map[string]Entry{},
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type wtable struct {
	m       *sync.RWMutex
	entries map[string]Entry
}

func (r *wtable) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("no match found for: %s", name)
	}
	return e, nil
}

func (r *wtable) Claim(e Entry) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(e)
}

func (r *wtable) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	delete(r.entries, name)
	return nil
}

func (r *wtable) Update(e Entry) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[e.Name]; !ok {
		return fmt.Errorf("update failed entry %s not claimed", e.Name)
	}
	if err := r.validate(e); err != nil {
		return err
	}
	r.entries[e.Name] = e
	return nil
}

func (r *wtable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *wtable) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// FindAt returns the entry whose window contains the given instant.
func (r *wtable) FindAt(at time.Time) (Entry, bool) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if e.Window.Contains(interval.Time(at)) {
			return e, true
		}
	}
	return Entry{}, false
}

// IsFree reports whether the given window overlaps no claimed entry.
func (r *wtable) IsFree(w interval.Interval[interval.Time]) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(w, "")
}

func (r *wtable) GetAll() []Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func (r *wtable) GetByLabel(selector labels.Selector) []Entry {
	var entries []Entry

	for _, e := range r.GetAll() {
		if selector.Matches(e.Labels) {
			entries = append(entries, e)
		}
	}

	return entries
}

func (r *wtable) add(e Entry) error {
	if _, ok := r.entries[e.Name]; ok {
		return fmt.Errorf("claim failed entry %s already claimed", e.Name)
	}
	if err := r.validate(e); err != nil {
		return err
	}
	r.entries[e.Name] = e
	return nil
}

// validate rejects empty windows and windows overlapping any entry
// other than the one being written.
func (r *wtable) validate(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	if e.Window.IsEmpty() {
		return fmt.Errorf("window for entry %s is empty", e.Name)
	}
	if !r.isFree(e.Window, e.Name) {
		return fmt.Errorf("window %s for entry %s overlaps an existing entry", e.Window.String(), e.Name)
	}
	return nil
}

func (r *wtable) isFree(w interval.Interval[interval.Time], skip string) bool {
	for name, e := range r.entries {
		if name == skip {
			continue
		}
		if e.Window.Intersects(w) {
			return false
		}
	}
	return true
}
