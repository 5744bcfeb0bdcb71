// Package forms bridges editable resume fields to the store and keeps the
// per-entity, per-field error maps shown next to the inputs.
//
// The contract is the same for every controller: a value change writes to
// the store immediately (the store is always the live, unvalidated truth)
// and clears any stale error for the changed fields; a blur re-runs the full
// entity validation and records at most one message for the blurred field.
package forms

import (
	"sync"

	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge/server/internal/resume"
	"github.com/resumeforge/resumeforge/server/pkg/metrics"
)

// EntityErrors maps entity id -> field -> message for a collection form.
type EntityErrors map[string]resume.FieldErrors

func cloneFieldErrors(src resume.FieldErrors) resume.FieldErrors {
	if src == nil {
		return nil
	}
	out := make(resume.FieldErrors, len(src))
	for f, m := range src {
		out[f] = m
	}
	return out
}

// PersonalForm controls the singleton personal-info section.
type PersonalForm struct {
	store *resume.Store

	mu     sync.RWMutex
	errors resume.FieldErrors
}

func NewPersonalForm(s *resume.Store) *PersonalForm {
	return &PersonalForm{store: s, errors: resume.FieldErrors{}}
}

// Change writes the patch through to the store and clears errors for the
// patched fields.
func (f *PersonalForm) Change(patch resume.PersonalInfoPatch) {
	f.store.UpdatePersonalInfo(patch)
	f.mu.Lock()
	for _, field := range patch.Fields() {
		delete(f.errors, field)
	}
	f.mu.Unlock()
}

// Blur validates the current personal-info snapshot and records a message
// for the blurred field when validation reports one. Other fields' errors
// are left as-is.
func (f *PersonalForm) Blur(field resume.Field) {
	errs := resume.ValidatePersonalInfo(f.store.Snapshot().PersonalInfo)
	if errs != nil {
		metrics.ValidationFailures.WithLabelValues("personal_info").Inc()
	}
	if msg, ok := errs[field]; ok {
		f.mu.Lock()
		f.errors[field] = msg
		f.mu.Unlock()
	}
}

// Errors returns a copy of the current error map.
func (f *PersonalForm) Errors() resume.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := cloneFieldErrors(f.errors)
	if out == nil {
		out = resume.FieldErrors{}
	}
	return out
}

// ExperienceForm controls the work-history collection.
type ExperienceForm struct {
	store *resume.Store

	mu     sync.RWMutex
	errors EntityErrors
}

func NewExperienceForm(s *resume.Store) *ExperienceForm {
	return &ExperienceForm{store: s, errors: EntityErrors{}}
}

// Add appends a new all-empty entry with a fresh id and returns the id.
func (f *ExperienceForm) Add() string {
	id := uuid.NewString()
	f.store.AddExperience(resume.Experience{ID: id})
	return id
}

func (f *ExperienceForm) Change(id string, patch resume.ExperiencePatch) {
	f.store.UpdateExperience(id, patch)
	clearEntityFields(&f.mu, f.errors, id, patch.Fields())
}

func (f *ExperienceForm) Blur(id string, field resume.Field) {
	entry, ok := findByID(f.store.Snapshot().Experience, id, func(e resume.Experience) string { return e.ID })
	if !ok {
		return
	}
	errs := resume.ValidateExperience(entry)
	if errs != nil {
		metrics.ValidationFailures.WithLabelValues("experience").Inc()
	}
	recordEntityField(&f.mu, f.errors, id, field, errs)
}

func (f *ExperienceForm) Remove(id string) {
	f.store.RemoveExperience(id)
	f.mu.Lock()
	delete(f.errors, id)
	f.mu.Unlock()
}

// Errors returns a copy of the error map for one entry.
func (f *ExperienceForm) Errors(id string) resume.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := cloneFieldErrors(f.errors[id])
	if out == nil {
		out = resume.FieldErrors{}
	}
	return out
}

// All returns a copy of the full id -> field -> message map.
func (f *ExperienceForm) All() EntityErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneEntityErrors(f.errors)
}

// EducationForm controls the education collection.
type EducationForm struct {
	store *resume.Store

	mu     sync.RWMutex
	errors EntityErrors
}

func NewEducationForm(s *resume.Store) *EducationForm {
	return &EducationForm{store: s, errors: EntityErrors{}}
}

func (f *EducationForm) Add() string {
	id := uuid.NewString()
	f.store.AddEducation(resume.Education{ID: id})
	return id
}

func (f *EducationForm) Change(id string, patch resume.EducationPatch) {
	f.store.UpdateEducation(id, patch)
	clearEntityFields(&f.mu, f.errors, id, patch.Fields())
}

func (f *EducationForm) Blur(id string, field resume.Field) {
	entry, ok := findByID(f.store.Snapshot().Education, id, func(e resume.Education) string { return e.ID })
	if !ok {
		return
	}
	errs := resume.ValidateEducation(entry)
	if errs != nil {
		metrics.ValidationFailures.WithLabelValues("education").Inc()
	}
	recordEntityField(&f.mu, f.errors, id, field, errs)
}

func (f *EducationForm) Remove(id string) {
	f.store.RemoveEducation(id)
	f.mu.Lock()
	delete(f.errors, id)
	f.mu.Unlock()
}

func (f *EducationForm) Errors(id string) resume.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := cloneFieldErrors(f.errors[id])
	if out == nil {
		out = resume.FieldErrors{}
	}
	return out
}

func (f *EducationForm) All() EntityErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneEntityErrors(f.errors)
}

// SkillsForm controls the skills collection. New entries default to the
// "intermediate" level.
type SkillsForm struct {
	store *resume.Store

	mu     sync.RWMutex
	errors EntityErrors
}

func NewSkillsForm(s *resume.Store) *SkillsForm {
	return &SkillsForm{store: s, errors: EntityErrors{}}
}

func (f *SkillsForm) Add() string {
	id := uuid.NewString()
	f.store.AddSkill(resume.Skill{ID: id, Level: resume.LevelIntermediate})
	return id
}

func (f *SkillsForm) Change(id string, patch resume.SkillPatch) {
	f.store.UpdateSkill(id, patch)
	clearEntityFields(&f.mu, f.errors, id, patch.Fields())
}

func (f *SkillsForm) Blur(id string, field resume.Field) {
	entry, ok := findByID(f.store.Snapshot().Skills, id, func(s resume.Skill) string { return s.ID })
	if !ok {
		return
	}
	errs := resume.ValidateSkill(entry)
	if errs != nil {
		metrics.ValidationFailures.WithLabelValues("skill").Inc()
	}
	recordEntityField(&f.mu, f.errors, id, field, errs)
}

func (f *SkillsForm) Remove(id string) {
	f.store.RemoveSkill(id)
	f.mu.Lock()
	delete(f.errors, id)
	f.mu.Unlock()
}

func (f *SkillsForm) Errors(id string) resume.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := cloneFieldErrors(f.errors[id])
	if out == nil {
		out = resume.FieldErrors{}
	}
	return out
}

func (f *SkillsForm) All() EntityErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneEntityErrors(f.errors)
}

func findByID[T any](list []T, id string, key func(T) string) (T, bool) {
	for _, item := range list {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func cloneEntityErrors(src EntityErrors) EntityErrors {
	out := make(EntityErrors, len(src))
	for id, fe := range src {
		out[id] = cloneFieldErrors(fe)
	}
	return out
}

func clearEntityFields(mu *sync.RWMutex, errs EntityErrors, id string, fields []resume.Field) {
	mu.Lock()
	defer mu.Unlock()
	fe, ok := errs[id]
	if !ok {
		return
	}
	for _, field := range fields {
		delete(fe, field)
	}
	if len(fe) == 0 {
		delete(errs, id)
	}
}

func recordEntityField(mu *sync.RWMutex, errs EntityErrors, id string, field resume.Field, ve resume.FieldErrors) {
	msg, ok := ve[field]
	if !ok {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fe, ok := errs[id]
	if !ok {
		fe = resume.FieldErrors{}
		errs[id] = fe
	}
	fe[field] = msg
}
