package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
)

func render(w io.Writer, format, lang string, out *dto.AnalyticsDashboardDTO) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text", "":
		return renderText(w, lang, out)
	default:
		return fmt.Errorf("formato no soportado: %s (json|text)", format)
	}
}

// labels del resumen por idioma.
type labels struct {
	title, rotation, profit, stock, trends, lowStock string
	active, slow, dead                               string
	avgMargin, stars, cows, questions, dogs          string
	critical, warning, days                          string
	weekly, monthly, sales, orders, ticket, trend    string
}

var labelsByLang = map[string]labels{
	"es": {
		title: "Analítica al %s", rotation: "Rotación", profit: "Rentabilidad", stock: "Stock",
		trends: "Tendencias", lowStock: "Bajo mínimo",
		active: "activos", slow: "lentos", dead: "muertos",
		avgMargin: "Margen promedio", stars: "estrellas", cows: "vacas", questions: "interrogantes", dogs: "perros",
		critical: "CRÍTICO", warning: "aviso", days: "días",
		weekly: "Semana", monthly: "Mes", sales: "ventas", orders: "pedidos", ticket: "ticket", trend: "Tendencia",
	},
	"en": {
		title: "Analytics as of %s", rotation: "Rotation", profit: "Profitability", stock: "Stock",
		trends: "Trends", lowStock: "Below minimum",
		active: "active", slow: "slow", dead: "dead",
		avgMargin: "Average margin", stars: "stars", cows: "cash cows", questions: "question marks", dogs: "dogs",
		critical: "CRITICAL", warning: "warning", days: "days",
		weekly: "Week", monthly: "Month", sales: "sales", orders: "orders", ticket: "ticket", trend: "Trend",
	},
}

func num(d decimal.Decimal) float64 { return d.InexactFloat64() }

// renderText imprime un resumen con números localizados (separadores de miles y decimales).
func renderText(w io.Writer, lang string, out *dto.AnalyticsDashboardDTO) error {
	tag := language.Spanish
	if lang == "en" {
		tag = language.English
	} else {
		lang = "es"
	}
	l := labelsByLang[lang]
	p := message.NewPrinter(tag)

	p.Fprintf(w, l.title+"\n\n", out.GeneratedAt.Format("2006-01-02 15:04 MST"))

	c := out.Rotation.Counts
	p.Fprintf(w, "%s: %d %s, %d %s, %d %s\n", l.rotation, c.Active, l.active, c.Slow, l.slow, c.Dead, l.dead)

	s := out.Profitability.Summary
	p.Fprintf(w, "%s: %s %.2f%% | %d %s, %d %s, %d %s, %d %s\n",
		l.profit, l.avgMargin, num(out.Profitability.AverageMargin),
		s.Stars, l.stars, s.CashCows, l.cows, s.QuestionMarks, l.questions, s.Dogs, l.dogs)

	p.Fprintf(w, "%s:\n", l.stock)
	for _, a := range out.Alerts.Critical {
		p.Fprintf(w, "  [%s] %s: %.2f %s\n", l.critical, a.ProductName, num(a.DaysUntilStockout), l.days)
	}
	for _, a := range out.Alerts.Warning {
		p.Fprintf(w, "  [%s] %s: %.2f %s\n", l.warning, a.ProductName, num(a.DaysUntilStockout), l.days)
	}
	for _, ls := range out.LowStock {
		p.Fprintf(w, "  [%s] %s: %.2f / %.2f\n", l.lowStock, ls.ProductName, num(ls.Stock), num(ls.MinStock))
	}

	p.Fprintf(w, "%s:\n", l.trends)
	for _, row := range []struct {
		name string
		cmp  dto.PeriodComparisonDTO
	}{{l.weekly, out.Weekly}, {l.monthly, out.Monthly}} {
		p.Fprintf(w, "  %s: %s %.2f (%+.2f%%), %s %d, %s %.2f\n",
			row.name, l.sales, num(row.cmp.Current.TotalSales), num(row.cmp.Change.Sales),
			l.orders, row.cmp.Current.TotalOrders, l.ticket, num(row.cmp.Current.AvgTicket))
	}
	_, err := p.Fprintf(w, "%s: %s (%s)\n", l.trend, out.Trend.Trend, out.Trend.Strength)
	return err
}
