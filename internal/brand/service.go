package brand

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Brand {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Brand, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(b Brand) (Brand, error) {
	return s.repo.Create(b)
}
