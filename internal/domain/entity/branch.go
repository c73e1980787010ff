package entity

// Branch es una sucursal: particiona stock, ventas, compras, gastos y cajas.
type Branch struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
