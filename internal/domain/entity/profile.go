package entity

import "strings"

// Profile is a colorblindness category.
type Profile string

const (
	ProfileNormal        Profile = "normal"
	ProfileProtanopia    Profile = "protanopia"    // red-blind
	ProfileProtanomaly   Profile = "protanomaly"   // red-weak
	ProfileDeuteranopia  Profile = "deuteranopia"  // green-blind
	ProfileDeuteranomaly Profile = "deuteranomaly" // green-weak
	ProfileTritanopia    Profile = "tritanopia"    // blue-blind
	ProfileTritanomaly   Profile = "tritanomaly"   // blue-weak
	ProfileAchromatopsia Profile = "achromatopsia" // complete color blindness
)

// problematicBuckets lists, per profile, the bucket names that are
// hard to perceive. Achromatopsia covers the whole catalog.
var problematicBuckets = map[Profile][]string{
	ProfileNormal:        {},
	ProfileProtanopia:    {"red_low", "red_high", "orange", "green"},
	ProfileProtanomaly:   {"red_low", "red_high", "orange"},
	ProfileDeuteranopia:  {"red_low", "red_high", "green", "yellow"},
	ProfileDeuteranomaly: {"green", "yellow"},
	ProfileTritanopia:    {"blue", "yellow", "cyan"},
	ProfileTritanomaly:   {"blue", "yellow"},
}

// ParseProfile maps a user-supplied string to a Profile. Unknown
// values fall back to normal rather than erroring.
func ParseProfile(s string) Profile {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if p == ProfileAchromatopsia {
		return p
	}
	if _, ok := problematicBuckets[p]; ok {
		return p
	}
	return ProfileNormal
}

// ProblematicBuckets returns the set of bucket names risky for the
// profile.
func (p Profile) ProblematicBuckets() map[string]bool {
	set := make(map[string]bool)
	if p == ProfileAchromatopsia {
		for _, b := range ColorBuckets {
			set[b.Name] = true
		}
		return set
	}
	for _, name := range problematicBuckets[p] {
		set[name] = true
	}
	return set
}
