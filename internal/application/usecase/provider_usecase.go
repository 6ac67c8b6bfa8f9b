package usecase

import (
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProviderUseCase CRUD de proveedores (por ID y por nombre, clave natural única).
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProviderUseCase) Create(in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	if in.Name == "" || in.RUC <= 0 {
		return nil, domain.ErrInvalidInput
	}
	provider := &entity.Provider{
		RUC:     in.RUC,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	if err := uc.repo.Create(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *ProviderUseCase) GetByID(id int64) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return toProviderResponse(provider), nil
}

// GetByName obtiene un proveedor por nombre; nil si no existe.
func (uc *ProviderUseCase) GetByName(name string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return toProviderResponse(provider), nil
}

// List devuelve todos los proveedores.
func (uc *ProviderUseCase) List() ([]*dto.ProviderResponse, error) {
	providers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// Update actualiza los datos del proveedor; nil si no existe.
func (uc *ProviderUseCase) Update(id int64, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	if in.RUC > 0 {
		provider.RUC = in.RUC
	}
	if in.Name != "" {
		provider.Name = in.Name
	}
	if in.Address != "" {
		provider.Address = in.Address
	}
	if in.Phone != "" {
		provider.Phone = in.Phone
	}
	if in.Email != "" {
		provider.Email = in.Email
	}
	if err := uc.repo.Update(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Delete elimina por ID.
func (uc *ProviderUseCase) Delete(id int64) error {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// DeleteByName elimina por nombre.
func (uc *ProviderUseCase) DeleteByName(name string) error {
	provider, err := uc.repo.GetByName(name)
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByName(name)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:      p.ID,
		RUC:     p.RUC,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}
