package entity

// Category agrupa productos o gastos; ambas listas comparten la misma forma.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
