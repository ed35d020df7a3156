package testimonial

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Testimonial {
	return s.repo.List()
}

func (s *Service) Create(t Testimonial) (Testimonial, error) {
	return s.repo.Create(t)
}
