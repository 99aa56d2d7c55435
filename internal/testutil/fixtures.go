package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sample chart specs. Layouts carry a marker so tests can check that specs
// reach the plotter verbatim.
const (
	SalesAmountChart = `{"data":[{"type":"scatter","x":["2024-01"],"y":[1000.5]}],"layout":{"title":"Ventas por periodo"}}`
	SalesOrdersChart = `{"data":[{"type":"bar","x":["2024-01"],"y":[5]}],"layout":{"title":"Órdenes por periodo"}}`
	ProductsChart    = `{"data":[{"type":"bar"}],"layout":{"title":"Top categorías"}}`
	PaymentsChart    = `{"data":[{"type":"pie"}],"layout":{"title":"Métodos de pago"}}`
)

// SalesBody is the single-period sales envelope.
const SalesBody = `{"success":true,
 "stats":{"total_ventas":1000.5,"total_ordenes":5,"periodos":1,"ventas_promedio":1000.5},
 "data":[{"periodo":"2024-01","total_ordenes":5,"total_ventas":1000.5}],
 "charts":{"ventas":` + SalesAmountChart + `,"ordenes":` + SalesOrdersChart + `}}`

// FailureBody is a well-formed envelope with success=false.
const FailureBody = `{"success":false,"error":"Binder Error: table orders does not exist"}`

// SalesWithPeriods builds a sales envelope with one row per period, in the
// order given.
func SalesWithPeriods(periods ...string) string {
	rows := make([]string, 0, len(periods))
	for i, p := range periods {
		rows = append(rows, fmt.Sprintf(`{"periodo":%s,"total_ordenes":%d,"total_ventas":%d.25}`, quote(p), i+1, (i+1)*100))
	}
	return fmt.Sprintf(`{"success":true,
 "stats":{"total_ventas":1,"total_ordenes":1,"periodos":%d,"ventas_promedio":1},
 "data":[%s],
 "charts":{"ventas":%s,"ordenes":%s}}`, len(periods), strings.Join(rows, ","), SalesAmountChart, SalesOrdersChart)
}

// ProductsWithCategories builds a products envelope, one row per category.
func ProductsWithCategories(categories ...string) string {
	rows := make([]string, 0, len(categories))
	for i, c := range categories {
		rows = append(rows, fmt.Sprintf(`{"Product_Category_Name":%s,"cantidad_vendida":%d,"ventas_totales":%d.5}`, quote(c), 1000-i, 5000-i))
	}
	return fmt.Sprintf(`{"success":true,
 "stats":{"total_categorias":%d,"total_unidades":12345,"ventas_totales":98765.4},
 "data":[%s],
 "chart":%s}`, len(categories), strings.Join(rows, ","), ProductsChart)
}

// PaymentsWithMethods builds a payments envelope, one row per method.
func PaymentsWithMethods(methods ...string) string {
	rows := make([]string, 0, len(methods))
	for i, m := range methods {
		rows = append(rows, fmt.Sprintf(`{"Payment_Type":%s,"cantidad":%d,"total_pagado":%d.75}`, quote(m), 700-i, 9000-i))
	}
	return fmt.Sprintf(`{"success":true,
 "stats":{"metodos_pago":%d,"total_transacciones":2500,"total_pagado":16008853.5},
 "data":[%s],
 "chart":%s}`, len(methods), strings.Join(rows, ","), PaymentsChart)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
