package entity

// Provider representa un proveedor de productos. Name es clave natural única.
type Provider struct {
	ID      int64
	RUC     int64
	Name    string
	Address string
	Phone   string
	Email   string
}
