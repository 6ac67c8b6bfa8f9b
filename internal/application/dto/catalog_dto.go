package dto

// CreateCategoryRequest entrada para crear/actualizar una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateBrandRequest entrada para crear/actualizar una marca.
type CreateBrandRequest struct {
	Name string `json:"name"`
}

// BrandResponse marca en respuestas.
type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateProviderRequest entrada para crear/actualizar un proveedor.
type CreateProviderRequest struct {
	RUC     int64  `json:"ruc"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ProviderResponse proveedor en respuestas.
type ProviderResponse struct {
	ID      int64  `json:"id"`
	RUC     int64  `json:"ruc"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
