package models

import "strings"

type Section string

const (
	SectionSki Section = "ski"
	SectionGym Section = "gym"
)

var Sections = []Section{SectionSki, SectionGym}

func ParseSection(value string) (Section, bool) {
	switch Section(strings.ToLower(strings.TrimSpace(value))) {
	case SectionSki:
		return SectionSki, true
	case SectionGym:
		return SectionGym, true
	default:
		return "", false
	}
}

// Label is the name shown to visitors.
func (s Section) Label() string {
	switch s {
	case SectionSki:
		return "Горнолыжная база"
	case SectionGym:
		return "Тренажерный и батутный зал"
	default:
		return string(s)
	}
}
