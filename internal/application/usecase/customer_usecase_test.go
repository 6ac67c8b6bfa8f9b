package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

type memCustomerRepo struct {
	byDNI  map[int64]*entity.Customer
	nextID int64
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byDNI: make(map[int64]*entity.Customer), nextID: 1}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	c.ID = r.nextID
	r.nextID++
	r.byDNI[c.DNI] = c
	return nil
}

func (r *memCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	for _, c := range r.byDNI {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) GetByDNI(dni int64) (*entity.Customer, error) {
	return r.byDNI[dni], nil
}

func (r *memCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byDNI))
	for _, c := range r.byDNI {
		out = append(out, c)
	}
	return out, nil
}

func TestValidDNI(t *testing.T) {
	cases := []struct {
		dni   int64
		valid bool
	}{
		{12345678, true},
		{99999999, true},
		{10000000, true},
		{1234567, false},   // 7 dígitos
		{123456789, false}, // 9 dígitos
		{0, false},
		{-12345678, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, usecase.ValidDNI(tc.dni), "dni=%d", tc.dni)
	}
}

func TestCustomerCreate_DNIInvalido(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	_, err := uc.Create(dto.CreateCustomerRequest{DNI: 123, Name: "Ana", LastName: "Paz"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_DNIDuplicado(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	_, err := uc.Create(dto.CreateCustomerRequest{DNI: 12345678, Name: "Ana", LastName: "Paz"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCustomerRequest{DNI: 12345678, Name: "Otra", LastName: "Persona"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerCreate_YGetByDNI(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	created, err := uc.Create(dto.CreateCustomerRequest{
		DNI: 87654321, Name: "Luis", LastName: "Rojas", Email: "luis@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := uc.GetByDNI(87654321)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Luis", got.Name)
	assert.Equal(t, "Rojas", got.LastName)

	missing, err := uc.GetByDNI(11111111)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
