package render

import (
	"sync"

	"github.com/resumeforge/resumeforge/server/internal/resume"
)

// Preview is the live read-only consumer behind the preview endpoint. It
// subscribes to the store and keeps the latest snapshot, so rendering never
// has to reach back into the store.
type Preview struct {
	mu          sync.RWMutex
	last        resume.Document
	unsubscribe func()
}

// NewPreview subscribes to the store and seeds the preview with the current
// snapshot. Call Close when the editing session ends.
func NewPreview(s *resume.Store) *Preview {
	p := &Preview{last: s.Snapshot()}
	p.unsubscribe = s.Subscribe(func(doc resume.Document) {
		p.mu.Lock()
		p.last = doc
		p.mu.Unlock()
	})
	return p
}

// HTML renders the latest snapshot with the selected template, or the
// placeholder when no template has been chosen.
func (p *Preview) HTML() (string, error) {
	p.mu.RLock()
	doc := p.last
	p.mu.RUnlock()

	r := ForTemplate(doc.SelectedTemplate)
	if r == nil {
		return Placeholder, nil
	}
	return r.Render(doc)
}

// Close drops the store subscription.
func (p *Preview) Close() {
	p.unsubscribe()
}
