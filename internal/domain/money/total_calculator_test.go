package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FreelanceCRM-api/internal/domain"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/entity"
	"github.com/jhoicas/FreelanceCRM-api/internal/domain/money"
)

func item(qty int64, price string) entity.InvoiceItem {
	return entity.InvoiceItem{
		Description: "línea de prueba",
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
	}
}

// Lista vacía → total cero, sin error.
func TestComputeTotal_ListaVacia(t *testing.T) {
	total, err := money.ComputeTotal(nil)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.Zero), "una factura sin ítems totaliza 0")
}

// Vector de referencia: 40 × 75.50 + 5 × 100.00 = 3020.00 + 500.00 = 3520.00.
func TestComputeTotal_VectorExacto(t *testing.T) {
	total, err := money.ComputeTotal([]entity.InvoiceItem{
		item(40, "75.50"),
		item(5, "100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "3520.00", total.StringFixed(2))
}

// La suma debe ser decimal exacta: 3 × 0.10 = 0.30, sin residuo binario.
func TestComputeTotal_SinDerivaDeRedondeo(t *testing.T) {
	total, err := money.ComputeTotal([]entity.InvoiceItem{
		item(1, "0.10"),
		item(1, "0.10"),
		item(1, "0.10"),
	})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")),
		"la suma decimal debe ser exacta, se obtuvo %s", total)
}

func TestComputeTotal_UnSoloItem(t *testing.T) {
	total, err := money.ComputeTotal([]entity.InvoiceItem{item(1, "10")})
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(10)))
}

// Precio cero es válido (ítem de cortesía); cantidad cero o negativa no.
func TestComputeTotal_ItemsInvalidos(t *testing.T) {
	_, err := money.ComputeTotal([]entity.InvoiceItem{item(0, "10")})
	assert.ErrorIs(t, err, domain.ErrInvalidItem, "cantidad 0 debe rechazarse")

	_, err = money.ComputeTotal([]entity.InvoiceItem{item(-3, "10")})
	assert.ErrorIs(t, err, domain.ErrInvalidItem, "cantidad negativa debe rechazarse")

	_, err = money.ComputeTotal([]entity.InvoiceItem{item(2, "-0.01")})
	assert.ErrorIs(t, err, domain.ErrInvalidItem, "precio negativo debe rechazarse")

	total, err := money.ComputeTotal([]entity.InvoiceItem{item(2, "0")})
	require.NoError(t, err, "precio cero es válido")
	assert.True(t, total.Equal(decimal.Zero))
}

// Un ítem inválido invalida todo el cálculo, aunque los demás sean correctos.
func TestComputeTotal_ItemInvalidoEnMedio(t *testing.T) {
	_, err := money.ComputeTotal([]entity.InvoiceItem{
		item(1, "10"),
		item(0, "5"),
		item(2, "3"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidItem)
}
