package usecase

import (
	"strconv"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes. Los clientes son inmutables una
// vez creados (sin camino de actualización).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// ValidDNI verifica que el documento tenga exactamente 8 dígitos.
func ValidDNI(dni int64) bool {
	return len(strconv.FormatInt(dni, 10)) == 8 && dni > 0
}

// Create crea un cliente validando el DNI de 8 dígitos y su unicidad.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !ValidDNI(in.DNI) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		DNI:      in.DNI,
		Name:     in.Name,
		LastName: in.LastName,
		Email:    in.Email,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID interno; nil si no existe.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// GetByDNI obtiene un cliente por DNI; nil si no existe.
func (uc *CustomerUseCase) GetByDNI(dni int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.ID,
		DNI:      c.DNI,
		Name:     c.Name,
		LastName: c.LastName,
		Email:    c.Email,
	}
}
