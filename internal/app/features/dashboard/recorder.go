package dashboard

import (
	"html/template"
	"sync"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
)

// Plot is one recorded chart draw.
type Plot struct {
	Mount string
	Spec  statsapi.ChartSpec
}

// Recorder is an in-memory Surface. It keeps the latest markup and the
// write history per container, plus every chart draw in order. Chart draws are not tied to a container and are never cleared.
type Recorder struct {
	mu      sync.Mutex
	markup  map[string]template.HTML
	history map[string][]template.HTML
	plots   []Plot
}

func NewRecorder() *Recorder {
	return &Recorder{
		markup:  make(map[string]template.HTML),
		history: make(map[string][]template.HTML),
	}
}

func (r *Recorder) Replace(container string, markup template.HTML) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markup[container] = markup
	r.history[container] = append(r.history[container], markup)
	return nil
}

func (r *Recorder) Plot(mount string, spec statsapi.ChartSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plots = append(r.plots, Plot{Mount: mount, Spec: spec})
	return nil
}

// Markup returns the current content of container.
func (r *Recorder) Markup(container string) template.HTML {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.markup[container]
}

// History returns every write to container, oldest first.
func (r *Recorder) History(container string) []template.HTML {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]template.HTML(nil), r.history[container]...)
}

// Plots returns the recorded chart draws for the given mounts, oldest
// first. With no mounts it returns all of them.
func (r *Recorder) Plots(mounts ...string) []Plot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(mounts) == 0 {
		return append([]Plot(nil), r.plots...)
	}
	want := make(map[string]bool, len(mounts))
	for _, m := range mounts {
		want[m] = true
	}
	var out []Plot
	for _, p := range r.plots {
		if want[p.Mount] {
			out = append(out, p)
		}
	}
	return out
}
