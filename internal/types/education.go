// Package types provides type definitions for structured data used throughout the skilltree system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// EducationLevel represents a rung on the fixed education ladder.
// Levels form a strict total order and compare by rank, not by name.
type EducationLevel int

// Education levels in ascending order.
const (
	EduNoHS EducationLevel = iota
	EduHS
	EduSomeCollege
	EduAssociate
	EduBachelor
	EduMaster
	EduDoctorate
)

var educationNames = map[EducationLevel]string{
	EduNoHS:        "none",
	EduHS:          "hs",
	EduSomeCollege: "some-college",
	EduAssociate:   "associate",
	EduBachelor:    "bachelor",
	EduMaster:      "master",
	EduDoctorate:   "doctorate",
}

var educationLabels = map[EducationLevel]string{
	EduNoHS:        "No diploma",
	EduHS:          "High school diploma / GED",
	EduSomeCollege: "Some college",
	EduAssociate:   "Associate degree",
	EduBachelor:    "Bachelor's degree",
	EduMaster:      "Master's degree",
	EduDoctorate:   "Doctorate",
}

// String returns the stable wire name of the level (e.g. "associate").
func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("education(%d)", int(l))
}

// Label returns the human-readable display name of the level.
func (l EducationLevel) Label() string {
	if label, ok := educationLabels[l]; ok {
		return label
	}
	return l.String()
}

// ParseEducationLevel maps a wire name back to its level.
func ParseEducationLevel(name string) (EducationLevel, error) {
	for level, n := range educationNames {
		if n == name {
			return level, nil
		}
	}
	return EduNoHS, fmt.Errorf("unknown education level %q", name)
}

// MarshalJSON encodes the level as its wire name.
func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes the level from its wire name.
func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseEducationLevel(name)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
