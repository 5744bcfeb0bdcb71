package sessions

import (
	"time"

	"github.com/resumeforge/resumeforge/server/internal/resume"
	"github.com/resumeforge/resumeforge/server/internal/resume/forms"
	"github.com/resumeforge/resumeforge/server/internal/resume/render"
)

// Session is one live editing session: the document store plus the form
// controllers and preview bound to it. The document exists only in memory
// for the lifetime of the session.
type Session struct {
	ID        string
	CreatedAt time.Time

	Store      *resume.Store
	Personal   *forms.PersonalForm
	Experience *forms.ExperienceForm
	Education  *forms.EducationForm
	Skills     *forms.SkillsForm
	Preview    *render.Preview

	lastSeen time.Time
}

func newSession(id string) *Session {
	store := resume.NewStore()
	now := time.Now().UTC()
	return &Session{
		ID:         id,
		CreatedAt:  now,
		Store:      store,
		Personal:   forms.NewPersonalForm(store),
		Experience: forms.NewExperienceForm(store),
		Education:  forms.NewEducationForm(store),
		Skills:     forms.NewSkillsForm(store),
		Preview:    render.NewPreview(store),
		lastSeen:   now,
	}
}

func (s *Session) close() {
	s.Preview.Close()
}
