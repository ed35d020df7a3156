package gallery

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns gallery images, optionally narrowed by category. An empty
// category or "all" imposes no filter.
func (s *Service) List(category string) []Image {
	images := s.repo.List()
	if category == "" || category == "all" {
		return images
	}

	out := make([]Image, 0)
	for _, img := range images {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

func (s *Service) Create(img Image) (Image, error) {
	return s.repo.Create(img)
}
