package publish

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchemaJSON []byte

// ValidateResumeData checks the resumeData payload of a generate request
// against the embedded JSON schema and returns one FieldError per schema
// violation. A non-nil error means the check itself could not run.
func ValidateResumeData(raw json.RawMessage) ([]FieldError, error) {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate resume data: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}
	errs := make([]FieldError, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		field := "resumeData"
		if e.Field() != "(root)" {
			field = "resumeData." + e.Field()
		}
		errs = append(errs, FieldError{Field: field, Message: e.Description()})
	}
	return errs, nil
}
