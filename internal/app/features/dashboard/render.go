package dashboard

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/htmlsanitize"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/numfmt"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
)

//go:embed panes/*.gohtml
var paneFS embed.FS

var paneTmpl = template.Must(template.ParseFS(paneFS, "panes/*.gohtml"))

// Chart mount points. They are part of the fixed layouts below.
const (
	MountSalesAmount = "chart-ventas"
	MountSalesOrders = "chart-ordenes"
	MountProducts    = "chart-productos"
	MountPayments    = "chart-pagos"
)

// Pane is a rendered view: the markup for its container plus the charts to
// draw once the markup is in place.
type Pane struct {
	Markup template.HTML
	Charts []ChartMount
}

// ChartMount pairs a mount element with the figure to plot into it.
type ChartMount struct {
	MountID string
	Spec    statsapi.ChartSpec
}

type statCard struct {
	Icon  string
	Label string
	Value string
	Class string
}

// paneVM is shared by the three layouts; every value is pre-formatted.
type paneVM struct {
	CardCol    string
	Cards      []statCard
	ChartCol   string
	Mounts     []string
	TableTitle string
	Headers    []string
	Rows       [][]string
}

func money(f *numfmt.Formatter, v float64) string {
	return "$" + f.Format(v)
}

// RenderSales lays out the sales view.
func RenderSales(data *statsapi.SalesResponse, f *numfmt.Formatter) (Pane, error) {
	vm := paneVM{
		CardCol: "col-md-3",
		Cards: []statCard{
			{Icon: "fa-dollar-sign", Label: "Ventas Totales", Value: money(f, data.Stats.TotalVentas), Class: "bg-primary"},
			{Icon: "fa-shopping-bag", Label: "Órdenes", Value: f.Format(data.Stats.TotalOrdenes), Class: "bg-success"},
			{Icon: "fa-calendar", Label: "Períodos", Value: numfmt.Plain(data.Stats.Periodos), Class: "bg-info"},
			{Icon: "fa-chart-line", Label: "Promedio", Value: money(f, data.Stats.VentasPromedio), Class: "bg-warning"},
		},
		ChartCol:   "col-md-6",
		Mounts:     []string{MountSalesAmount, MountSalesOrders},
		TableTitle: "Datos Detallados",
		Headers:    []string{"Período", "Órdenes", "Ventas Totales"},
		Rows:       make([][]string, 0, len(data.Data)),
	}
	for _, row := range data.Data {
		vm.Rows = append(vm.Rows, []string{
			htmlsanitize.PlainText(row.Periodo),
			numfmt.Plain(row.TotalOrdenes),
			money(f, row.TotalVentas),
		})
	}
	return renderPane(vm, []ChartMount{
		{MountID: MountSalesAmount, Spec: data.Charts.Ventas},
		{MountID: MountSalesOrders, Spec: data.Charts.Ordenes},
	})
}

// RenderProducts lays out the products view.
func RenderProducts(data *statsapi.ProductsResponse, f *numfmt.Formatter) (Pane, error) {
	vm := paneVM{
		CardCol: "col-md-4",
		Cards: []statCard{
			{Icon: "fa-tags", Label: "Categorías", Value: numfmt.Plain(data.Stats.TotalCategorias), Class: "bg-info"},
			{Icon: "fa-box", Label: "Unidades Vendidas", Value: f.Format(data.Stats.TotalUnidades), Class: "bg-success"},
			{Icon: "fa-dollar-sign", Label: "Ventas Totales", Value: money(f, data.Stats.VentasTotales), Class: "bg-primary"},
		},
		ChartCol:   "col-12",
		Mounts:     []string{MountProducts},
		TableTitle: "Top 10 Categorías",
		Headers:    []string{"Categoría", "Unidades Vendidas", "Ventas Totales"},
		Rows:       make([][]string, 0, len(data.Data)),
	}
	for _, row := range data.Data {
		vm.Rows = append(vm.Rows, []string{
			htmlsanitize.PlainText(row.Categoria),
			f.Format(row.CantidadVendida),
			money(f, row.VentasTotales),
		})
	}
	return renderPane(vm, []ChartMount{{MountID: MountProducts, Spec: data.Chart}})
}

// RenderPayments lays out the payments view.
func RenderPayments(data *statsapi.PaymentsResponse, f *numfmt.Formatter) (Pane, error) {
	vm := paneVM{
		CardCol: "col-md-4",
		Cards: []statCard{
			{Icon: "fa-credit-card", Label: "Métodos", Value: numfmt.Plain(data.Stats.MetodosPago), Class: "bg-primary"},
			{Icon: "fa-exchange-alt", Label: "Transacciones", Value: f.Format(data.Stats.TotalTransacciones), Class: "bg-success"},
			{Icon: "fa-money-bill-wave", Label: "Total Pagado", Value: money(f, data.Stats.TotalPagado), Class: "bg-info"},
		},
		ChartCol:   "col-12",
		Mounts:     []string{MountPayments},
		TableTitle: "Métodos de Pago",
		Headers:    []string{"Método de Pago", "Cantidad", "Total Pagado"},
		Rows:       make([][]string, 0, len(data.Data)),
	}
	for _, row := range data.Data {
		vm.Rows = append(vm.Rows, []string{
			htmlsanitize.PlainText(row.Metodo),
			f.Format(row.Cantidad),
			money(f, row.TotalPagado),
		})
	}
	return renderPane(vm, []ChartMount{{MountID: MountPayments, Spec: data.Chart}})
}

func renderPane(vm paneVM, charts []ChartMount) (Pane, error) {
	markup, err := execute("pane", vm)
	if err != nil {
		return Pane{}, err
	}
	return Pane{Markup: markup, Charts: charts}, nil
}

// RenderLoading is the spinner shown while a view is in flight.
func RenderLoading(v View) template.HTML {
	return mustExecute("loading", v.noun())
}

// RenderAPIFailure is shown when the backend answers success=false.
func RenderAPIFailure(v View) template.HTML {
	return mustExecute("alert", "Error al cargar "+v.noun())
}

// RenderTransportFailure is shown when the request or its decoding failed.
// The failure description is surfaced as text.
func RenderTransportFailure(err error) template.HTML {
	return mustExecute("alert", "Error de conexión: "+statsapi.Cause(err))
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := paneTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// mustExecute is for the fixed string templates, which cannot fail on a
// string argument.
func mustExecute(name string, data string) template.HTML {
	out, err := execute(name, data)
	if err != nil {
		panic(err)
	}
	return out
}
