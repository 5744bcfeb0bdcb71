package resume

// PersonalInfo is the singleton contact/headline section of a resume.
// There is always exactly one instance per document; fields default to "".
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

// Experience is one work-history entry. When Current is true the EndDate is
// ignored; otherwise validation requires a non-empty EndDate.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one education entry; same Current/EndDate rule as Experience.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
}

// SkillLevel is the closed proficiency scale for a skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// ValidLevel reports whether l is one of the four defined levels.
func ValidLevel(l SkillLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// Skill is one entry of the skills section.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// TemplateID identifies one of the fixed visual templates. The zero value
// means no template has been chosen yet.
type TemplateID string

const (
	TemplateNone        TemplateID = ""
	TemplateCardFlip    TemplateID = "card-flip"
	TemplateTimeline    TemplateID = "timeline"
	TemplateSkillGalaxy TemplateID = "skill-galaxy"
)

// ValidTemplate reports whether t is a member of the closed template set.
// The unset value is not a valid argument to SetTemplate.
func ValidTemplate(t TemplateID) bool {
	switch t {
	case TemplateCardFlip, TemplateTimeline, TemplateSkillGalaxy:
		return true
	}
	return false
}

// Document is the aggregate resume state for one editing session. Collection
// order is insertion order and doubles as display order.
type Document struct {
	PersonalInfo     PersonalInfo `json:"personalInfo"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
	Skills           []Skill      `json:"skills"`
	SelectedTemplate TemplateID   `json:"selectedTemplate"`
}

// NewDocument returns the all-empty initial document.
func NewDocument() Document {
	return Document{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []Skill{},
	}
}

// Clone returns a deep copy of the document. Entities hold only value fields,
// so copying the backing slices is sufficient.
func (d Document) Clone() Document {
	out := d
	out.Experience = append([]Experience{}, d.Experience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	return out
}

// PersonalInfoPatch is a partial update for PersonalInfo; nil fields are
// left untouched by the merge.
type PersonalInfoPatch struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Title    *string `json:"title,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

func (p PersonalInfoPatch) apply(dst *PersonalInfo) {
	if p.FullName != nil {
		dst.FullName = *p.FullName
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Location != nil {
		dst.Location = *p.Location
	}
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Summary != nil {
		dst.Summary = *p.Summary
	}
}

// Fields lists the field names set by this patch.
func (p PersonalInfoPatch) Fields() []Field {
	var out []Field
	if p.FullName != nil {
		out = append(out, FieldFullName)
	}
	if p.Email != nil {
		out = append(out, FieldEmail)
	}
	if p.Phone != nil {
		out = append(out, FieldPhone)
	}
	if p.Location != nil {
		out = append(out, FieldLocation)
	}
	if p.Title != nil {
		out = append(out, FieldTitle)
	}
	if p.Summary != nil {
		out = append(out, FieldSummary)
	}
	return out
}

// ExperiencePatch is a partial update for one Experience entry.
type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) apply(dst *Experience) {
	if p.Company != nil {
		dst.Company = *p.Company
	}
	if p.Position != nil {
		dst.Position = *p.Position
	}
	if p.StartDate != nil {
		dst.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		dst.EndDate = *p.EndDate
	}
	if p.Current != nil {
		dst.Current = *p.Current
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
}

// Fields lists the field names set by this patch.
func (p ExperiencePatch) Fields() []Field {
	var out []Field
	if p.Company != nil {
		out = append(out, FieldCompany)
	}
	if p.Position != nil {
		out = append(out, FieldPosition)
	}
	if p.StartDate != nil {
		out = append(out, FieldStartDate)
	}
	if p.EndDate != nil {
		out = append(out, FieldEndDate)
	}
	if p.Current != nil {
		out = append(out, FieldCurrent)
	}
	if p.Description != nil {
		out = append(out, FieldDescription)
	}
	return out
}

// EducationPatch is a partial update for one Education entry.
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
}

func (p EducationPatch) apply(dst *Education) {
	if p.Institution != nil {
		dst.Institution = *p.Institution
	}
	if p.Degree != nil {
		dst.Degree = *p.Degree
	}
	if p.Field != nil {
		dst.Field = *p.Field
	}
	if p.StartDate != nil {
		dst.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		dst.EndDate = *p.EndDate
	}
	if p.Current != nil {
		dst.Current = *p.Current
	}
}

// Fields lists the field names set by this patch.
func (p EducationPatch) Fields() []Field {
	var out []Field
	if p.Institution != nil {
		out = append(out, FieldInstitution)
	}
	if p.Degree != nil {
		out = append(out, FieldDegree)
	}
	if p.Field != nil {
		out = append(out, FieldField)
	}
	if p.StartDate != nil {
		out = append(out, FieldStartDate)
	}
	if p.EndDate != nil {
		out = append(out, FieldEndDate)
	}
	if p.Current != nil {
		out = append(out, FieldCurrent)
	}
	return out
}

// SkillPatch is a partial update for one Skill entry.
type SkillPatch struct {
	Name     *string     `json:"name,omitempty"`
	Level    *SkillLevel `json:"level,omitempty"`
	Category *string     `json:"category,omitempty"`
}

func (p SkillPatch) apply(dst *Skill) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Level != nil {
		dst.Level = *p.Level
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
}

// Fields lists the field names set by this patch.
func (p SkillPatch) Fields() []Field {
	var out []Field
	if p.Name != nil {
		out = append(out, FieldName)
	}
	if p.Level != nil {
		out = append(out, FieldLevel)
	}
	if p.Category != nil {
		out = append(out, FieldCategory)
	}
	return out
}
