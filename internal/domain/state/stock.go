package state

// GetStock devuelve la existencia de un producto en una sucursal (0 si no hay registro).
func (s *State) GetStock(productID, branchID string) int {
	for _, e := range s.Stock {
		if e.ProductID == productID && e.BranchID == branchID {
			return e.Stock
		}
	}
	return 0
}

// SetStock crea o actualiza la existencia del producto en la sucursal.
func (s *State) SetStock(productID, branchID string, qty int) {
	for i := range s.Stock {
		if s.Stock[i].ProductID == productID && s.Stock[i].BranchID == branchID {
			s.Stock[i].Stock = qty
			return
		}
	}
	s.Stock = append(s.Stock, entityStock(productID, branchID, qty))
}

// AdjustStock suma delta (puede ser negativo) y devuelve la nueva existencia.
func (s *State) AdjustStock(productID, branchID string, delta int) int {
	qty := s.GetStock(productID, branchID) + delta
	s.SetStock(productID, branchID, qty)
	return qty
}

// DeleteStockFor elimina todas las existencias del producto en todas las sucursales.
func (s *State) DeleteStockFor(productID string) {
	kept := s.Stock[:0:0]
	for _, e := range s.Stock {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	s.Stock = kept
}

// BranchHasStock indica si la sucursal tiene al menos un registro de stock distinto de cero.
func (s *State) BranchHasStock(branchID string) bool {
	for _, e := range s.Stock {
		if e.BranchID == branchID && e.Stock != 0 {
			return true
		}
	}
	return false
}
