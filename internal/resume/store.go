package resume

import (
	"sync"

	"github.com/resumeforge/resumeforge/server/pkg/metrics"
)

// Subscriber receives a fresh document snapshot after every applied mutation.
// Callbacks run synchronously on the mutating goroutine, in subscription
// order. The snapshot is the subscriber's own copy; mutating it has no
// effect on the store.
type Subscriber func(Document)

type subscription struct {
	id int
	fn Subscriber
}

// Store owns the single Document of an editing session and is the only
// sanctioned mutation surface. All mutations are serialized: a mutex makes
// snapshot order total across goroutines, and mutations issued from inside a
// subscriber callback are queued and applied after the current notification
// round completes rather than interleaved.
type Store struct {
	mu        sync.Mutex
	doc       Document
	subs      []subscription
	nextSubID int
	notifying bool
	queue     []pending
}

type pending struct {
	op    string
	apply func(*Document)
}

// NewStore returns a store holding the all-empty initial document.
func NewStore() *Store {
	return &Store{doc: NewDocument()}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Subscribe registers fn for synchronous post-mutation notification and
// returns a function that removes the subscription. fn is not called with
// the current state; only future mutations are delivered.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// dispatch applies one mutation and notifies subscribers. When a mutation
// arrives while a notification round is in flight (re-entrant call from a
// subscriber, or a concurrent goroutine), it is queued and drained by the
// goroutine that holds the notification turn, so every subscriber observes
// snapshots in a single total order.
func (s *Store) dispatch(op string, apply func(*Document)) {
	s.mu.Lock()
	if s.notifying {
		s.queue = append(s.queue, pending{op: op, apply: apply})
		s.mu.Unlock()
		return
	}
	s.notifying = true
	s.mu.Unlock()

	next := pending{op: op, apply: apply}
	for {
		s.mu.Lock()
		next.apply(&s.doc)
		snap := s.doc.Clone()
		subs := append([]subscription{}, s.subs...)
		s.mu.Unlock()

		metrics.StoreMutations.WithLabelValues(next.op).Inc()
		for _, sub := range subs {
			sub.fn(snap.Clone())
		}

		s.mu.Lock()
		if len(s.queue) == 0 {
			s.notifying = false
			s.mu.Unlock()
			return
		}
		next = s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
	}
}

// UpdatePersonalInfo shallow-merges the patch into the personal-info
// section. No validation happens here; validation is advisory and lives in
// the form layer.
func (s *Store) UpdatePersonalInfo(patch PersonalInfoPatch) {
	s.dispatch("update_personal_info", func(d *Document) {
		patch.apply(&d.PersonalInfo)
	})
}

// AddExperience appends a fully-formed entry. The caller assigns the id;
// the store does not deduplicate.
func (s *Store) AddExperience(e Experience) {
	s.dispatch("add_experience", func(d *Document) {
		d.Experience = append(d.Experience, e)
	})
}

// UpdateExperience merges the patch into the entry with the given id,
// preserving its position. Unknown ids are a silent no-op.
func (s *Store) UpdateExperience(id string, patch ExperiencePatch) {
	s.dispatch("update_experience", func(d *Document) {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				patch.apply(&d.Experience[i])
				return
			}
		}
	})
}

// RemoveExperience deletes the entry with the given id, keeping the
// relative order of the remainder. Unknown ids are a silent no-op.
func (s *Store) RemoveExperience(id string) {
	s.dispatch("remove_experience", func(d *Document) {
		d.Experience = removeByID(d.Experience, id, func(e Experience) string { return e.ID })
	})
}

// AddEducation appends a fully-formed entry.
func (s *Store) AddEducation(e Education) {
	s.dispatch("add_education", func(d *Document) {
		d.Education = append(d.Education, e)
	})
}

// UpdateEducation merges the patch into the entry with the given id.
func (s *Store) UpdateEducation(id string, patch EducationPatch) {
	s.dispatch("update_education", func(d *Document) {
		for i := range d.Education {
			if d.Education[i].ID == id {
				patch.apply(&d.Education[i])
				return
			}
		}
	})
}

// RemoveEducation deletes the entry with the given id.
func (s *Store) RemoveEducation(id string) {
	s.dispatch("remove_education", func(d *Document) {
		d.Education = removeByID(d.Education, id, func(e Education) string { return e.ID })
	})
}

// AddSkill appends a fully-formed entry.
func (s *Store) AddSkill(sk Skill) {
	s.dispatch("add_skill", func(d *Document) {
		d.Skills = append(d.Skills, sk)
	})
}

// UpdateSkill merges the patch into the entry with the given id.
func (s *Store) UpdateSkill(id string, patch SkillPatch) {
	s.dispatch("update_skill", func(d *Document) {
		for i := range d.Skills {
			if d.Skills[i].ID == id {
				patch.apply(&d.Skills[i])
				return
			}
		}
	})
}

// RemoveSkill deletes the entry with the given id.
func (s *Store) RemoveSkill(id string) {
	s.dispatch("remove_skill", func(d *Document) {
		d.Skills = removeByID(d.Skills, id, func(sk Skill) string { return sk.ID })
	})
}

// SetTemplate selects one of the fixed templates. The unset value and
// unknown ids are rejected; callers surface that as a 400 at the HTTP layer.
func (s *Store) SetTemplate(t TemplateID) bool {
	if !ValidTemplate(t) {
		return false
	}
	s.dispatch("set_template", func(d *Document) {
		d.SelectedTemplate = t
	})
	return true
}

// Reset replaces the whole document with the initial empty state.
func (s *Store) Reset() {
	s.dispatch("reset", func(d *Document) {
		*d = NewDocument()
	})
}

func removeByID[T any](list []T, id string, key func(T) string) []T {
	out := list[:0:0]
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
