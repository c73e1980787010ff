package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// CategoryKind distingue categorías de productos y de gastos.
type CategoryKind string

const (
	ProductCategories CategoryKind = "product"
	ExpenseCategories CategoryKind = "expense"
)

func categories(st *state.State, kind CategoryKind) (*[]entity.Category, error) {
	switch kind {
	case ProductCategories:
		return &st.ProductCategories, nil
	case ExpenseCategories:
		return &st.ExpenseCategories, nil
	}
	return nil, fmt.Errorf("tipo de categoría %q: %w", kind, domain.ErrInvalidInput)
}

// SaveCategoryCommand crea (ID vacío) o renombra una categoría.
type SaveCategoryCommand struct {
	Kind     CategoryKind
	Category entity.Category
	Actor    string
	At       time.Time
}

func (c *SaveCategoryCommand) Name() string { return "catalog.category.save" }

func (c *SaveCategoryCommand) Apply(st *state.State) error {
	list, err := categories(st, c.Kind)
	if err != nil {
		return err
	}
	in := c.Category
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("nombre de categoría requerido: %w", domain.ErrInvalidInput)
	}
	for _, x := range *list {
		if strings.EqualFold(x.Name, in.Name) && x.ID != in.ID {
			return fmt.Errorf("categoría %q: %w", in.Name, domain.ErrDuplicate)
		}
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
		*list = append(*list, in)
	} else {
		i := state.CategoryIndex(*list, in.ID)
		if i < 0 {
			return fmt.Errorf("categoría %q: %w", in.ID, domain.ErrNotFound)
		}
		(*list)[i] = in
	}
	st.Log(c.Actor, "Categoría guardada: "+in.Name, c.At, nil)
	c.Category = in
	return nil
}

// DeleteCategoryCommand elimina una categoría sin productos ni gastos asociados.
type DeleteCategoryCommand struct {
	Kind       CategoryKind
	CategoryID string
	Actor      string
	At         time.Time
}

func (c *DeleteCategoryCommand) Name() string { return "catalog.category.delete" }

func (c *DeleteCategoryCommand) Apply(st *state.State) error {
	list, err := categories(st, c.Kind)
	if err != nil {
		return err
	}
	i := state.CategoryIndex(*list, c.CategoryID)
	if i < 0 {
		return fmt.Errorf("categoría %q: %w", c.CategoryID, domain.ErrNotFound)
	}
	if c.Kind == ProductCategories {
		for _, p := range st.Products {
			if p.CategoryID == c.CategoryID {
				return fmt.Errorf("categoría con productos: %w", domain.ErrConflict)
			}
		}
	} else {
		for _, e := range st.Expenses {
			if e.CategoryID == c.CategoryID {
				return fmt.Errorf("categoría con gastos: %w", domain.ErrConflict)
			}
		}
	}
	name := (*list)[i].Name
	*list = append((*list)[:i:i], (*list)[i+1:]...)
	st.Log(c.Actor, "Categoría eliminada: "+name, c.At, nil)
	return nil
}
