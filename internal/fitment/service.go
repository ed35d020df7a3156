package fitment

import (
	"sort"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns the fitments for a vehicle. Make is required; model narrows
// by case-insensitive equality and year by exact match when provided.
func (s *Service) Search(vehicleMake, model string, year *int) []Fitment {
	out := make([]Fitment, 0)
	for _, f := range s.repo.List() {
		if !strings.EqualFold(f.Make, vehicleMake) {
			continue
		}
		if model != "" && !strings.EqualFold(f.Model, model) {
			continue
		}
		if year != nil && f.Year != *year {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Makes returns the distinct vehicle makes across all fitments, ascending.
func (s *Service) Makes() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, f := range s.repo.List() {
		if !seen[f.Make] {
			seen[f.Make] = true
			out = append(out, f.Make)
		}
	}
	sort.Strings(out)
	return out
}

// Models returns the distinct models for a make, ascending.
func (s *Service) Models(vehicleMake string) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, f := range s.Search(vehicleMake, "", nil) {
		if !seen[f.Model] {
			seen[f.Model] = true
			out = append(out, f.Model)
		}
	}
	sort.Strings(out)
	return out
}

// Years returns the distinct years for a make+model, newest first.
func (s *Service) Years(vehicleMake, model string) []int {
	seen := map[int]bool{}
	out := make([]int, 0)
	for _, f := range s.Search(vehicleMake, model, nil) {
		if !seen[f.Year] {
			seen[f.Year] = true
			out = append(out, f.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Classify grades a wheel against the selected vehicle using the first
// matching fitment: an exact PCD string match is a direct fit, any other PCD
// needs spacers, and no fitment at all is unknown. Offset and centre bore are
// deliberately not consulted; the rule is exact string equality only.
func (s *Service) Classify(vehicleMake, model string, year *int, wheelPCD string) string {
	matches := s.Search(vehicleMake, model, year)
	if len(matches) == 0 {
		return FitUnknown
	}
	if matches[0].WheelSpecs.PCD == wheelPCD {
		return FitDirect
	}
	return FitSpacers
}

func (s *Service) Create(f Fitment) (Fitment, error) {
	return s.repo.Create(f)
}
