package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/product"
)

// ProductPatch descreve uma atualização parcial de produto; campos nil são
// preservados
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int
	MinStock    *int
	Unit        *string
	Description *string
	Supplier    *string
	Barcode     *string
	Weight      *float64
	Dimensions  *string
	IsActive    *bool
}

func (p ProductPatch) apply(dst *product.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.MinStock != nil {
		dst.MinStock = *p.MinStock
	}
	if p.Unit != nil {
		dst.Unit = *p.Unit
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Supplier != nil {
		dst.Supplier = *p.Supplier
	}
	if p.Barcode != nil {
		dst.Barcode = *p.Barcode
	}
	if p.Weight != nil {
		dst.Weight = *p.Weight
	}
	if p.Dimensions != nil {
		dst.Dimensions = *p.Dimensions
	}
	if p.IsActive != nil {
		dst.IsActive = *p.IsActive
	}
}

// AddProduct atribui um novo ID ao produto, o adiciona à coleção e persiste.
// Nenhuma validação além da feita pelo chamador.
func (s *Store) AddProduct(p product.Product) product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	s.products = append(s.products, p)
	s.persist(keyProducts, s.products)
	return p
}

// UpdateProduct aplica uma atualização parcial ao produto com o ID informado
func (s *Store) UpdateProduct(id string, patch ProductPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			patch.apply(&s.products[i])
			s.persist(keyProducts, s.products)
			return ResultApplied
		}
	}
	return ResultNotFound
}

// DeleteProduct remove o produto com o ID informado
func (s *Store) DeleteProduct(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(keyProducts, s.products)
			return ResultApplied
		}
	}
	return ResultNotFound
}
