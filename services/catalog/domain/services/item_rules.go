// Package services contains stateless domain services for the catalog
// bounded context. Domain services enforce business rules that operate
// purely on domain types.
package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/z5ni/catalog-api/pkg/validator"
	"github.com/z5ni/catalog-api/services/catalog/domain/models"
)

// BuildItem turns raw field values into a valid, normalized Item or fails
// atomically with every violated constraint reported together.
//
// Order of evaluation:
//  1. Structural constraints (length, range, pattern, collection size) are
//     checked independently per field and all collected.
//  2. The semantic name rule runs only when the name passed its structural
//     checks; its violation is reported as a value_error, distinct from the
//     structural types, alongside any violations on other fields.
//  3. Normalization (title-casing the name, defaulting tags to empty) runs
//     only on a fully validated item — never on rejected input.
func BuildItem(raw models.Item) (models.Item, error) {
	verr := validator.Check(&raw)

	if verr == nil || !verr.Has("name") {
		if err := ValidateName(raw.Name); err != nil {
			sem := validator.Semantic("name", err.Error(), raw.Name)
			if verr == nil {
				verr = sem
			} else {
				verr.Fields = append(verr.Fields, sem.Fields...)
			}
		}
	}

	if verr != nil {
		return models.Item{}, verr
	}

	raw.Name = NormalizeName(raw.Name)
	if raw.Tags == nil {
		raw.Tags = []string{}
	}
	return raw, nil
}

// ValidateName enforces the business rule on item names beyond the
// structural length constraints: the name must not contain the substring
// "admin" in any letter case.
func ValidateName(name string) error {
	if strings.Contains(strings.ToLower(name), "admin") {
		return fmt.Errorf(`name must not contain "admin"`)
	}
	return nil
}

// NormalizeName title-cases an accepted item name ("gaming keyboard" →
// "Gaming Keyboard"). Callers must only pass names that already validated.
func NormalizeName(name string) string {
	return cases.Title(language.English).String(name)
}
