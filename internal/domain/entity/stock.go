package entity

// StockEntry es la existencia de un producto en una sucursal.
// Se crea en la primera asignación y se elimina en cascada con el producto.
type StockEntry struct {
	ProductID string `json:"productId"`
	BranchID  string `json:"branchId"`
	Stock     int    `json:"stock"`
}
