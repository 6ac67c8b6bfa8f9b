package entity

// Category representa una categoría de productos. Name es clave natural única.
type Category struct {
	ID          int64
	Name        string
	Description string
}
