package freelancer

import (
	"sort"

	"github.com/gosimple/slug"
)

// Freelancer types.
const (
	TypeMakeupArtist = "makeup-artist"
	TypePhotographer = "photographer"
	TypeVideographer = "videographer"
)

// Rate units.
const (
	RateUnitHour    = "hour"
	RateUnitSession = "session"
)

const (
	MinSpecializations = 1
	MaxSpecializations = 6
	MaxPortfolios      = 3
)

var types = []string{TypeMakeupArtist, TypePhotographer, TypeVideographer}

var rateUnits = []string{RateUnitHour, RateUnitSession}

// specializationsByType groups the vocabulary for clients. Validation only
// requires membership in the union.
var specializationsByType = map[string][]string{
	TypeMakeupArtist: {"bridal", "natural", "glam", "airbrush", "editorial", "traditional"},
	TypePhotographer: {"pre-wedding", "actual-day", "candid", "portrait", "destination", "traditional"},
	TypeVideographer: {"pre-wedding", "actual-day", "cinematic", "documentary", "drone", "highlights"},
}

var allSpecializations = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, values := range specializationsByType {
		for _, v := range values {
			set[v] = struct{}{}
		}
	}
	return set
}()

// IsValidType reports whether t is a known freelancer type.
func IsValidType(t string) bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

// IsValidRateUnit reports whether u is a known rate unit.
func IsValidRateUnit(u string) bool {
	for _, known := range rateUnits {
		if u == known {
			return true
		}
	}
	return false
}

// IsValidSpecialization reports whether a single (already normalised) value
// belongs to the vocabulary.
func IsValidSpecialization(s string) bool {
	_, ok := allSpecializations[s]
	return ok
}

// IsValidSpecializations reports whether values, once normalised, hold
// between one and six known specializations.
func IsValidSpecializations(values []string) bool {
	normalized := NormalizeSpecializations(values)
	if len(normalized) < MinSpecializations || len(normalized) > MaxSpecializations {
		return false
	}
	for _, v := range normalized {
		if !IsValidSpecialization(v) {
			return false
		}
	}
	return true
}

// NormalizeSpecializations slugifies each value and drops blanks and
// duplicates, keeping first-seen order.
func NormalizeSpecializations(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		s := slug.Make(v)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Vocabulary is the set of enumerations clients may submit.
type Vocabulary struct {
	Types           []string            `json:"types"`
	RateUnits       []string            `json:"rateUnits"`
	Specializations map[string][]string `json:"specializations"`
}

// GetVocabulary returns a copy of the fixed enumerations.
func GetVocabulary() Vocabulary {
	specs := make(map[string][]string, len(specializationsByType))
	for t, values := range specializationsByType {
		specs[t] = append([]string(nil), values...)
	}
	sortedTypes := append([]string(nil), types...)
	sort.Strings(sortedTypes)
	return Vocabulary{
		Types:           sortedTypes,
		RateUnits:       append([]string(nil), rateUnits...),
		Specializations: specs,
	}
}
