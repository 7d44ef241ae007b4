package entity

// Category representa una categoría de productos.
// Name es único sin distinguir mayúsculas; solo puede eliminarse si ningún producto la referencia.
type Category struct {
	ID   string
	Name string
}
