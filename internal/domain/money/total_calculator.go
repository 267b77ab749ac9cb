// Package money implementa el cálculo de totales monetarios (servicio de dominio).
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
)

// ComputeTotal suma quantity * unit_price de cada ítem con aritmética decimal
// exacta (sin float, sin deriva de redondeo). Una lista vacía totaliza cero.
//
// Valida cada ítem aunque las capas superiores ya lo hayan hecho: un ítem con
// cantidad < 1 o precio negativo retorna domain.ErrInvalidItem en lugar de
// aceptar datos corruptos en silencio.
func ComputeTotal(items []entity.InvoiceItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range items {
		if item.Quantity < 1 {
			return decimal.Zero, fmt.Errorf("%w: ítem %d con cantidad %d", domain.ErrInvalidItem, i, item.Quantity)
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: ítem %d con precio unitario %s", domain.ErrInvalidItem, i, item.UnitPrice)
		}
		total = total.Add(item.Subtotal())
	}
	return total, nil
}
