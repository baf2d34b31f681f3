package entity

import "github.com/shopspring/decimal"

// NamedAmount es una entrada con nombre de un mapa de montos (renta, nómina,
// una suscripción, un porcentaje operativo...).
type NamedAmount struct {
	Key    string
	Amount decimal.Decimal
}

// NamedAmounts es un mapa de montos con claves string que preserva el orden
// de inserción. Los conjuntos de costos y porcentajes de la configuración son
// abiertos (el administrador agrega y quita entradas por nombre) y la UI los
// enumera siempre en el mismo orden; por eso slice ordenado y no map nativo.
type NamedAmounts struct {
	entries []NamedAmount
}

// Set agrega la entrada o reemplaza el monto si la clave ya existe
// (conserva su posición original).
func (n *NamedAmounts) Set(key string, amount decimal.Decimal) {
	for i := range n.entries {
		if n.entries[i].Key == key {
			n.entries[i].Amount = amount
			return
		}
	}
	n.entries = append(n.entries, NamedAmount{Key: key, Amount: amount})
}

// Remove elimina la entrada; devuelve false si la clave no existe.
func (n *NamedAmounts) Remove(key string) bool {
	for i := range n.entries {
		if n.entries[i].Key == key {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get devuelve el monto y si la clave existe.
func (n *NamedAmounts) Get(key string) (decimal.Decimal, bool) {
	for _, e := range n.entries {
		if e.Key == key {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}

// Sum devuelve la suma de todos los montos.
func (n *NamedAmounts) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, e := range n.entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Entries devuelve una copia de las entradas en orden de inserción.
func (n *NamedAmounts) Entries() []NamedAmount {
	out := make([]NamedAmount, len(n.entries))
	copy(out, n.entries)
	return out
}

// Len devuelve el número de entradas.
func (n *NamedAmounts) Len() int { return len(n.entries) }

// NamedAmountsFrom construye el mapa desde pares ya ordenados (carga desde
// persistencia).
func NamedAmountsFrom(entries []NamedAmount) NamedAmounts {
	n := NamedAmounts{entries: make([]NamedAmount, len(entries))}
	copy(n.entries, entries)
	return n
}

// BusinessConfig agrupa la configuración del negocio que alimenta el motor de
// precios. Se pasa explícita a cada función pura; no hay singleton global.
//
// Invariante: la suma de OperatingPercentages debe mantenerse < 100 para que
// el despeje de precio esté definido (el motor lo valida en cada cálculo).
type BusinessConfig struct {
	OperatingPercentages NamedAmounts // contabilidad, mercadeo, ventas, nómina... (% sobre precio)
	FixedMonthlyCosts    NamedAmounts // renta, servicios... (montos mensuales)
	ToolCosts            NamedAmounts // suscripciones y herramientas (montos mensuales)

	// Denominador para distribuir el costo fijo mensual entre unidades.
	EstimatedMonthlySalesVolume int
}

// Clone devuelve una copia profunda (los mapas nombrados no comparten
// almacenamiento con el original).
func (c BusinessConfig) Clone() BusinessConfig {
	return BusinessConfig{
		OperatingPercentages:        NamedAmountsFrom(c.OperatingPercentages.entries),
		FixedMonthlyCosts:           NamedAmountsFrom(c.FixedMonthlyCosts.entries),
		ToolCosts:                   NamedAmountsFrom(c.ToolCosts.entries),
		EstimatedMonthlySalesVolume: c.EstimatedMonthlySalesVolume,
	}
}

// Goals metas mensuales del negocio; registros de lectura/comparación sin
// estado derivado.
type Goals struct {
	MonthlyRevenue decimal.Decimal
	MonthlyUnits   int
	AverageMargin  decimal.Decimal
	InventoryTurns decimal.Decimal
}

// AlertThresholds umbrales para el evaluador de alertas.
type AlertThresholds struct {
	MinMarginPct       decimal.Decimal // margen mínimo aceptable (%)
	MinStock           int             // unidades mínimas en stock
	MaxDaysWithoutSale int             // días sin venta antes de alertar
	CompetitorGapPct   decimal.Decimal // brecha máxima vs. competencia (%)
}
