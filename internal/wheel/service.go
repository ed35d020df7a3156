package wheel

// ServiceInterface lists the wheel operations other packages depend on.
type ServiceInterface interface {
	GetByID(id string) (Wheel, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the wheels matching every active filter predicate, sorted per
// the filter's sort key. The whole filtered set is returned; no pagination.
func (s *Service) List(f Filter) []Wheel {
	wheels := s.repo.List()

	out := make([]Wheel, 0, len(wheels))
	for _, w := range wheels {
		if f.Matches(w) {
			out = append(out, w)
		}
	}
	sortWheels(out, f.SortBy)
	return out
}

func (s *Service) GetByID(id string) (Wheel, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(w Wheel) (Wheel, error) {
	return s.repo.Create(w)
}
