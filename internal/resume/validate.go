package resume

import "regexp"

// Field names a single editable input within an entity. The constants below
// match the JSON field names so the frontend can key error messages directly
// onto its inputs.
type Field string

const (
	// PersonalInfo
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldLocation Field = "location"
	FieldTitle    Field = "title"
	FieldSummary  Field = "summary"

	// Experience
	FieldCompany     Field = "company"
	FieldPosition    Field = "position"
	FieldStartDate   Field = "startDate"
	FieldEndDate     Field = "endDate"
	FieldCurrent     Field = "current"
	FieldDescription Field = "description"

	// Education
	FieldInstitution Field = "institution"
	FieldDegree      Field = "degree"
	FieldField       Field = "field"

	// Skill
	FieldName     Field = "name"
	FieldLevel    Field = "level"
	FieldCategory Field = "category"
)

// FieldErrors maps a field name to a single human-readable message. A nil
// map means the entity validated cleanly.
type FieldErrors map[Field]string

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// length counts characters, not bytes, so multi-byte names hit the same
// boundaries the UI shows.
func length(s string) int { return len([]rune(s)) }

func checkRange(errs FieldErrors, f Field, v string, min, max int, tooShort, tooLong string) {
	if length(v) < min {
		errs[f] = tooShort
		return
	}
	if length(v) > max {
		errs[f] = tooLong
	}
}

// ValidatePersonalInfo checks the personal-info section. Validation is
// advisory: it never mutates anything and never blocks a store write.
func ValidatePersonalInfo(p PersonalInfo) FieldErrors {
	errs := FieldErrors{}
	checkRange(errs, FieldFullName, p.FullName, 2, 100,
		"Name must be at least 2 characters", "Name too long")
	if !emailRe.MatchString(p.Email) {
		errs[FieldEmail] = "Invalid email address"
	}
	checkRange(errs, FieldPhone, p.Phone, 10, 20,
		"Phone number must be at least 10 digits", "Phone number too long")
	checkRange(errs, FieldLocation, p.Location, 2, 100,
		"Location must be at least 2 characters", "Location too long")
	checkRange(errs, FieldTitle, p.Title, 2, 100,
		"Title must be at least 2 characters", "Title too long")
	checkRange(errs, FieldSummary, p.Summary, 50, 500,
		"Summary must be at least 50 characters", "Summary too long")
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateExperience checks one work-history entry, including the
// conditional end-date requirement.
func ValidateExperience(e Experience) FieldErrors {
	errs := FieldErrors{}
	checkRange(errs, FieldCompany, e.Company, 2, 100,
		"Company name must be at least 2 characters", "Company name too long")
	checkRange(errs, FieldPosition, e.Position, 2, 100,
		"Position must be at least 2 characters", "Position too long")
	if e.StartDate == "" {
		errs[FieldStartDate] = "Start date is required"
	}
	checkRange(errs, FieldDescription, e.Description, 20, 1000,
		"Description must be at least 20 characters", "Description too long")
	if !e.Current && e.EndDate == "" {
		errs[FieldEndDate] = "End date is required when not currently employed"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateEducation checks one education entry.
func ValidateEducation(e Education) FieldErrors {
	errs := FieldErrors{}
	checkRange(errs, FieldInstitution, e.Institution, 2, 100,
		"Institution name must be at least 2 characters", "Institution name too long")
	checkRange(errs, FieldDegree, e.Degree, 2, 100,
		"Degree must be at least 2 characters", "Degree too long")
	checkRange(errs, FieldField, e.Field, 2, 100,
		"Field of study must be at least 2 characters", "Field too long")
	if e.StartDate == "" {
		errs[FieldStartDate] = "Start date is required"
	}
	if !e.Current && e.EndDate == "" {
		errs[FieldEndDate] = "End date is required when not currently enrolled"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateSkill checks one skill entry.
func ValidateSkill(s Skill) FieldErrors {
	errs := FieldErrors{}
	checkRange(errs, FieldName, s.Name, 2, 50,
		"Skill name must be at least 2 characters", "Skill name too long")
	if !ValidLevel(s.Level) {
		errs[FieldLevel] = "Level must be one of beginner, intermediate, advanced, expert"
	}
	checkRange(errs, FieldCategory, s.Category, 2, 50,
		"Category must be at least 2 characters", "Category too long")
	if len(errs) == 0 {
		return nil
	}
	return errs
}
