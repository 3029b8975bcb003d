// Package schemas holds the JSON Schema documents that Store API responses are checked against.
package schemas

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

const rootField = "(root)"

// ErrEmptyDocument is returned when there is no document to validate.
var ErrEmptyDocument = errors.New("document cannot be empty")

// ValidationError is returned when a document is well-formed JSON but does not conform to the
// schema. It lists every violation that was found.
type ValidationError struct {
	Errors []ErrReport
}

// ErrReport describes a single schema violation.
type ErrReport struct {
	Field       string      `json:"field"`
	ErrorType   string      `json:"errortype"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Errors)+1)
	lines = append(lines, fmt.Sprintf("document does not match schema (%d errors)", len(e.Errors)))
	for _, r := range e.Errors {
		lines = append(lines, fmt.Sprintf("  %s: %s (%s, value: %v)", r.Field, r.Description, r.ErrorType, r.Value))
	}
	return strings.Join(lines, "\n")
}

// Validate checks the JSON document against the schema. It returns nil if the document
// conforms, a *ValidationError if it does not, and some other error if the document is not
// valid JSON or the schema itself could not be loaded.
func Validate(schema string, document []byte) error {
	if len(document) == 0 {
		return ErrEmptyDocument
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.Wrap(err, "schema validation could not be performed")
	}
	if result.Valid() {
		return nil
	}
	return &ValidationError{Errors: buildReports(result.Errors())}
}

// ValidateOrder checks a document against OrderSchema.
func ValidateOrder(document []byte) error {
	return errors.WithMessage(Validate(OrderSchema, document), "order")
}

// ValidateInventory checks a document against InventorySchema.
func ValidateInventory(document []byte) error {
	return errors.WithMessage(Validate(InventorySchema, document), "inventory")
}

func buildReports(resultErrors []gojsonschema.ResultError) []ErrReport {
	reports := make([]ErrReport, 0, len(resultErrors))
	for _, err := range resultErrors {
		// Field() is "(root)" for "required" errors; the missing property is in the details
		field := err.Field()
		if property, ok := err.Details()["property"].(string); ok {
			if field == rootField {
				field = property
			} else {
				field = field + "." + property
			}
		}
		reports = append(reports, ErrReport{
			Field:       field,
			ErrorType:   err.Type(),
			Value:       err.Value(),
			Description: err.Description(),
		})
	}
	return reports
}
