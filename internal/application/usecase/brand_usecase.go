package usecase

import (
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// BrandUseCase CRUD de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{Name: in.Name}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}

// GetByID obtiene una marca; nil si no existe.
func (uc *BrandUseCase) GetByID(id int64) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}

// List devuelve todas las marcas.
func (uc *BrandUseCase) List() ([]*dto.BrandResponse, error) {
	brands, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, &dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

// Update renombra una marca; nil si no existe.
func (uc *BrandUseCase) Update(id int64, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand.Name = in.Name
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}

// Delete elimina una marca por ID.
func (uc *BrandUseCase) Delete(id int64) error {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
