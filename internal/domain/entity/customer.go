package entity

// Customer representa un cliente del punto de venta.
// DNI es el documento de identidad de exactamente 8 dígitos; las ventas lo
// referencian como clave natural. Inmutable después de creado.
type Customer struct {
	ID       int64
	DNI      int64
	Name     string
	LastName string
	Email    string
}
