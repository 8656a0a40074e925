package entity

// Product producto identificado por su PLU (código externo único e inmutable).
type Product struct {
	ID   int64
	PLU  string
	Name string
}
