package statsapi

import "encoding/json"

// ChartSpec is a Plotly figure produced by the backend. Data and Layout are
// forwarded to the chart library untouched.
type ChartSpec struct {
	Data   json.RawMessage `json:"data"`
	Layout json.RawMessage `json:"layout"`
}

// SalesStats is the header block of the sales view.
type SalesStats struct {
	TotalVentas    float64 `json:"total_ventas"`
	TotalOrdenes   float64 `json:"total_ordenes"`
	Periodos       float64 `json:"periodos"`
	VentasPromedio float64 `json:"ventas_promedio"`
}

// SalesRow is one period of the sales detail table.
type SalesRow struct {
	Periodo      string  `json:"periodo"`
	TotalOrdenes float64 `json:"total_ordenes"`
	TotalVentas  float64 `json:"total_ventas"`
}

// SalesCharts holds the two sales figures.
type SalesCharts struct {
	Ventas  ChartSpec `json:"ventas"`
	Ordenes ChartSpec `json:"ordenes"`
}

// SalesResponse is the envelope returned by the sales endpoint.
type SalesResponse struct {
	Success bool        `json:"success"`
	Stats   SalesStats  `json:"stats"`
	Data    []SalesRow  `json:"data"`
	Charts  SalesCharts `json:"charts"`
}

type ProductStats struct {
	TotalCategorias float64 `json:"total_categorias"`
	TotalUnidades   float64 `json:"total_unidades"`
	VentasTotales   float64 `json:"ventas_totales"`
}

type ProductRow struct {
	Categoria       string  `json:"Product_Category_Name"`
	CantidadVendida float64 `json:"cantidad_vendida"`
	VentasTotales   float64 `json:"ventas_totales"`
}

// ProductsResponse is the envelope returned by the products endpoint.
type ProductsResponse struct {
	Success bool         `json:"success"`
	Stats   ProductStats `json:"stats"`
	Data    []ProductRow `json:"data"`
	Chart   ChartSpec    `json:"chart"`
}

type PaymentStats struct {
	MetodosPago        float64 `json:"metodos_pago"`
	TotalTransacciones float64 `json:"total_transacciones"`
	TotalPagado        float64 `json:"total_pagado"`
}

type PaymentRow struct {
	Metodo      string  `json:"Payment_Type"`
	Cantidad    float64 `json:"cantidad"`
	TotalPagado float64 `json:"total_pagado"`
}

// PaymentsResponse is the envelope returned by the payments endpoint.
type PaymentsResponse struct {
	Success bool         `json:"success"`
	Stats   PaymentStats `json:"stats"`
	Data    []PaymentRow `json:"data"`
	Chart   ChartSpec    `json:"chart"`
}
