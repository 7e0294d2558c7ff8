package currency

import (
	"strings"
)

// Set is an ordered collection of ISO 4217 codes. The first code is the
// default selection on the search form.
type Set struct {
	codes []string
	index map[string]struct{}
}

func NewSet(codes []string) Set {
	s := Set{
		codes: make([]string, 0, len(codes)),
		index: make(map[string]struct{}, len(codes)),
	}
	for _, c := range codes {
		code := Normalize(c)
		if code == "" {
			continue
		}
		if _, exists := s.index[code]; exists {
			continue
		}
		s.index[code] = struct{}{}
		s.codes = append(s.codes, code)
	}
	return s
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s Set) Contains(code string) bool {
	_, ok := s.index[Normalize(code)]
	return ok
}

func (s Set) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s Set) Default() string {
	if len(s.codes) == 0 {
		return ""
	}
	return s.codes[0]
}

func (s Set) Len() int {
	return len(s.codes)
}
