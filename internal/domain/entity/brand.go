package entity

// Brand representa una marca de productos.
type Brand struct {
	ID   int64
	Name string
}
