// Package types provides type definitions for structured data used throughout the skilltree system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NumericField names a numeric gate on the profile usable in MIN requirements.
type NumericField string

// Numeric profile fields.
const (
	FieldGPA         NumericField = "gpa"
	FieldCreditScore NumericField = "credit_score"
)

// Label returns the display name of the numeric field.
func (f NumericField) Label() string {
	switch f {
	case FieldGPA:
		return "GPA"
	case FieldCreditScore:
		return "credit score"
	}
	return string(f)
}

// FlagField names a boolean preference on the profile usable in FLAG requirements.
type FlagField string

// Boolean profile fields.
const (
	FieldWantsRemote FlagField = "wants_remote"
	FieldCanRelocate FlagField = "can_relocate"
)

// Label returns the display name of the flag field.
func (f FlagField) Label() string {
	switch f {
	case FieldWantsRemote:
		return "remote work preference"
	case FieldCanRelocate:
		return "willingness to relocate"
	}
	return string(f)
}

// Profile represents the user's self-reported attributes and held
// credentials/skills. Credentials and Skills are true sets in memory;
// the store flattens them to sorted lists at the persistence boundary.
type Profile struct {
	Name  string
	Email string
	Phone string

	Education   EducationLevel
	GPA         float64
	CreditScore int

	WantsRemote bool
	CanRelocate bool

	Credentials map[string]bool
	Skills      map[string]bool
}

// HasCredential reports whether the profile holds the credential id.
func (p *Profile) HasCredential(id string) bool {
	return p.Credentials[id]
}

// HasSkill reports whether the profile holds the skill id.
func (p *Profile) HasSkill(id string) bool {
	return p.Skills[id]
}

// NumericValue returns the named numeric gate value.
func (p *Profile) NumericValue(f NumericField) float64 {
	switch f {
	case FieldGPA:
		return p.GPA
	case FieldCreditScore:
		return float64(p.CreditScore)
	}
	return 0
}

// FlagValue returns the named boolean preference value.
func (p *Profile) FlagValue(f FlagField) bool {
	switch f {
	case FieldWantsRemote:
		return p.WantsRemote
	case FieldCanRelocate:
		return p.CanRelocate
	}
	return false
}

// HeldIDs returns the union of held credential and skill ids.
func (p *Profile) HeldIDs() []string {
	ids := make([]string, 0, len(p.Credentials)+len(p.Skills))
	for id := range p.Credentials {
		ids = append(ids, id)
	}
	for id := range p.Skills {
		if !p.Credentials[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
