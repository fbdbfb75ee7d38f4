package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jonathan/skilltree/internal/types"
)

// profileKey is the backend key holding the persisted profile.
const profileKey = "profile"

// ProfileDoc is the flattened wire/persistence form of a profile:
// credential and skill sets are serialized as ordered lists (order carries
// no meaning on reload). Pointer fields distinguish absent from zero so
// partially malformed documents fall back field-by-field.
type ProfileDoc struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Education   *string  `json:"education,omitempty"`
	GPA         *float64 `json:"gpa,omitempty"`
	CreditScore *int     `json:"credit_score,omitempty"`
	WantsRemote *bool    `json:"wants_remote,omitempty"`
	CanRelocate *bool    `json:"can_relocate,omitempty"`
	Credentials []string `json:"credentials"`
	Skills      []string `json:"skills"`
}

// DefaultProfile returns the documented first-load defaults.
func DefaultProfile() *types.Profile {
	return &types.Profile{
		Education:   types.EduHS,
		GPA:         2.8,
		CreditScore: 660,
		WantsRemote: true,
		CanRelocate: false,
		Credentials: map[string]bool{"securityplus": true},
		Skills:      map[string]bool{"customer-service": true},
	}
}

// ProfileStore loads and saves the profile. Malformed persisted state
// never escapes Load; it degrades to the defaults instead.
type ProfileStore struct {
	backend Backend
}

// NewProfileStore returns a store over the given backend.
func NewProfileStore(backend Backend) *ProfileStore {
	return &ProfileStore{backend: backend}
}

// Load reads the persisted profile. Absent or malformed documents, and
// absent or malformed individual fields, fall back to the defaults.
func (s *ProfileStore) Load() (*types.Profile, error) {
	p := DefaultProfile()

	data, ok, err := s.backend.Get(profileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return p, nil
	}

	var doc ProfileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		// Corrupt document: keep defaults.
		return p, nil
	}

	doc.Apply(p)
	return p, nil
}

// Save persists the profile, flattening the sets to sorted lists.
func (s *ProfileStore) Save(p *types.Profile) error {
	data, err := json.MarshalIndent(DocFromProfile(p), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.backend.Put(profileKey, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Apply overlays the document's present fields onto p. Absent fields and
// an unparseable education level leave p untouched.
func (doc *ProfileDoc) Apply(p *types.Profile) {
	if doc.Name != nil {
		p.Name = *doc.Name
	}
	if doc.Email != nil {
		p.Email = *doc.Email
	}
	if doc.Phone != nil {
		p.Phone = *doc.Phone
	}
	if doc.Education != nil {
		if level, err := types.ParseEducationLevel(*doc.Education); err == nil {
			p.Education = level
		}
	}
	if doc.GPA != nil {
		p.GPA = *doc.GPA
	}
	if doc.CreditScore != nil {
		p.CreditScore = *doc.CreditScore
	}
	if doc.WantsRemote != nil {
		p.WantsRemote = *doc.WantsRemote
	}
	if doc.CanRelocate != nil {
		p.CanRelocate = *doc.CanRelocate
	}
	if doc.Credentials != nil {
		p.Credentials = listToSet(doc.Credentials)
	}
	if doc.Skills != nil {
		p.Skills = listToSet(doc.Skills)
	}
}

// DocFromProfile flattens a profile into its persistence form.
func DocFromProfile(p *types.Profile) ProfileDoc {
	education := p.Education.String()
	return ProfileDoc{
		Name:        &p.Name,
		Email:       &p.Email,
		Phone:       &p.Phone,
		Education:   &education,
		GPA:         &p.GPA,
		CreditScore: &p.CreditScore,
		WantsRemote: &p.WantsRemote,
		CanRelocate: &p.CanRelocate,
		Credentials: setToList(p.Credentials),
		Skills:      setToList(p.Skills),
	}
}

func listToSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, id := range list {
		if id != "" {
			set[id] = true
		}
	}
	return set
}

func setToList(set map[string]bool) []string {
	list := make([]string, 0, len(set))
	for id := range set {
		list = append(list, id)
	}
	sort.Strings(list)
	return list
}
