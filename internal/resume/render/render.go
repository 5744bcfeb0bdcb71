// Package render projects a resume document into one of the fixed visual
// templates. Renderers are read-only consumers of store snapshots; they hold
// no state beyond their parsed template.
package render

import (
	"html/template"
	"sort"
	"strings"

	"github.com/resumeforge/resumeforge/server/internal/resume"
)

// Renderer turns a document snapshot into an HTML fragment.
type Renderer interface {
	TemplateID() resume.TemplateID
	Render(doc resume.Document) (string, error)
}

// ForTemplate returns the renderer for t, or nil for an unknown id.
func ForTemplate(t resume.TemplateID) Renderer {
	switch t {
	case resume.TemplateCardFlip:
		return CardFlip{}
	case resume.TemplateTimeline:
		return Timeline{}
	case resume.TemplateSkillGalaxy:
		return SkillGalaxy{}
	}
	return nil
}

// Placeholder is shown while no template has been selected.
const Placeholder = `<div class="preview-placeholder"><p>Select a template to preview your resume</p></div>`

func execute(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// CardFlip renders the summary-card layout: name, title and contact on the
// front, summary and section counts on the back.
type CardFlip struct{}

func (CardFlip) TemplateID() resume.TemplateID { return resume.TemplateCardFlip }

var cardFlipTmpl = template.Must(template.New("card-flip").Parse(`<div class="template card-flip">
<section class="card-front">
<h1>{{.Name}}</h1>
<h2>{{.Title}}</h2>
<p>{{.Email}}</p>
<p>{{.Phone}}</p>
</section>
<section class="card-back">
<p>{{.Summary}}</p>
<ul class="counts">
<li>{{.ExperienceCount}} experience</li>
<li>{{.EducationCount}} education</li>
<li>{{.SkillCount}} skills</li>
</ul>
</section>
</div>
`))

func (CardFlip) Render(doc resume.Document) (string, error) {
	summary := doc.PersonalInfo.Summary
	if r := []rune(summary); len(r) > 200 {
		summary = string(r[:200]) + "..."
	}
	return execute(cardFlipTmpl, map[string]any{
		"Name":            orDefault(doc.PersonalInfo.FullName, "Your Name"),
		"Title":           orDefault(doc.PersonalInfo.Title, "Professional Title"),
		"Email":           orDefault(doc.PersonalInfo.Email, "email@example.com"),
		"Phone":           orDefault(doc.PersonalInfo.Phone, "Phone Number"),
		"Summary":         orDefault(summary, "Your professional summary will appear here."),
		"ExperienceCount": len(doc.Experience),
		"EducationCount":  len(doc.Education),
		"SkillCount":      len(doc.Skills),
	})
}

// Timeline renders experience and education merged into one list ordered by
// start date, most recent first.
type Timeline struct{}

func (Timeline) TemplateID() resume.TemplateID { return resume.TemplateTimeline }

type timelineItem struct {
	Kind     string
	Heading  string
	Subtitle string
	Start    string
	End      string
	Current  bool
}

var timelineTmpl = template.Must(template.New("timeline").Parse(`<div class="template timeline">
<h1>{{.Name}}</h1>
<ol>
{{range .Items}}<li class="{{.Kind}}">
<h3>{{.Heading}}</h3>
<p>{{.Subtitle}}</p>
<time>{{.Start}} – {{if .Current}}Present{{else}}{{.End}}{{end}}</time>
</li>
{{end}}</ol>
</div>
`))

func (Timeline) Render(doc resume.Document) (string, error) {
	items := make([]timelineItem, 0, len(doc.Experience)+len(doc.Education))
	for _, e := range doc.Experience {
		items = append(items, timelineItem{
			Kind:     "experience",
			Heading:  e.Position,
			Subtitle: e.Company,
			Start:    e.StartDate,
			End:      e.EndDate,
			Current:  e.Current,
		})
	}
	for _, e := range doc.Education {
		items = append(items, timelineItem{
			Kind:     "education",
			Heading:  e.Degree,
			Subtitle: e.Institution,
			Start:    e.StartDate,
			End:      e.EndDate,
			Current:  e.Current,
		})
	}
	// start dates are YYYY-MM strings, so lexicographic order is date order
	sort.SliceStable(items, func(i, j int) bool { return items[i].Start > items[j].Start })
	return execute(timelineTmpl, map[string]any{
		"Name":  orDefault(doc.PersonalInfo.FullName, "Career Timeline"),
		"Items": items,
	})
}

// SkillGalaxy renders skills grouped by category, strongest level first
// within each group.
type SkillGalaxy struct{}

func (SkillGalaxy) TemplateID() resume.TemplateID { return resume.TemplateSkillGalaxy }

var levelWeight = map[resume.SkillLevel]int{
	resume.LevelBeginner:     1,
	resume.LevelIntermediate: 2,
	resume.LevelAdvanced:     3,
	resume.LevelExpert:       4,
}

type skillGroup struct {
	Category string
	Skills   []resume.Skill
}

var skillGalaxyTmpl = template.Must(template.New("skill-galaxy").Parse(`<div class="template skill-galaxy">
<h1>{{.Name}}</h1>
{{range .Groups}}<section>
<h2>{{.Category}}</h2>
<ul>
{{range .Skills}}<li class="level-{{.Level}}">{{.Name}}</li>
{{end}}</ul>
</section>
{{end}}</div>
`))

func (SkillGalaxy) Render(doc resume.Document) (string, error) {
	byCategory := map[string][]resume.Skill{}
	var order []string
	for _, s := range doc.Skills {
		cat := orDefault(s.Category, "General")
		if _, ok := byCategory[cat]; !ok {
			order = append(order, cat)
		}
		byCategory[cat] = append(byCategory[cat], s)
	}
	groups := make([]skillGroup, 0, len(order))
	for _, cat := range order {
		skills := byCategory[cat]
		sort.SliceStable(skills, func(i, j int) bool {
			return levelWeight[skills[i].Level] > levelWeight[skills[j].Level]
		})
		groups = append(groups, skillGroup{Category: cat, Skills: skills})
	}
	return execute(skillGalaxyTmpl, map[string]any{
		"Name":   orDefault(doc.PersonalInfo.FullName, "Skills Galaxy"),
		"Groups": groups,
	})
}
