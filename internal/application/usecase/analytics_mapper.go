package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
)

// Los registros del motor conservan precisión completa; los DTO redondean
// dinero y porcentajes a 2 decimales.

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func toRotationReport(rows []analytics.ProductRotation, threshold int, now time.Time) dto.RotationReportDTO {
	report := dto.RotationReportDTO{
		GeneratedAt: now,
		Threshold:   threshold,
		Items:       make([]dto.ProductRotationDTO, 0, len(rows)),
	}
	for _, r := range rows {
		switch r.Status {
		case analytics.RotationActive:
			report.Counts.Active++
		case analytics.RotationSlow:
			report.Counts.Slow++
		case analytics.RotationDead:
			report.Counts.Dead++
		}
		report.Items = append(report.Items, dto.ProductRotationDTO{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			DaysSinceLastSale: r.DaysSinceLastSale,
			TotalSales:        r.TotalSales,
			LastSaleDate:      r.LastSaleDate,
			Status:            string(r.Status),
		})
	}
	return report
}

func toProfitabilityReport(rows []analytics.ProductProfitability) dto.ProfitabilityReportDTO {
	s := analytics.Summarize(rows)
	report := dto.ProfitabilityReportDTO{
		AverageMargin: round2(analytics.AverageMargin(rows)),
		Summary: dto.ClassificationSummaryDTO{
			Stars:         s.Stars,
			CashCows:      s.CashCows,
			QuestionMarks: s.QuestionMarks,
			Dogs:          s.Dogs,
		},
		Items: make([]dto.ProductProfitabilityDTO, 0, len(rows)),
	}
	for _, r := range rows {
		report.Items = append(report.Items, dto.ProductProfitabilityDTO{
			ProductID:      r.ProductID,
			ProductName:    r.ProductName,
			Category:       r.Category,
			TotalRevenue:   round2(r.TotalRevenue),
			TotalCost:      round2(r.TotalCost),
			TotalProfit:    round2(r.TotalProfit),
			ProfitMargin:   round2(r.ProfitMargin),
			UnitsSold:      r.UnitsSold,
			AvgSalePrice:   round2(r.AvgSalePrice),
			Classification: string(r.Classification),
		})
	}
	return report
}

func toCategoryDTOs(cats []analytics.CategoryProfitability) []dto.CategoryProfitabilityDTO {
	out := make([]dto.CategoryProfitabilityDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryProfitabilityDTO{
			Category:     c.Category,
			Products:     c.Products,
			UnitsSold:    c.UnitsSold,
			TotalRevenue: round2(c.TotalRevenue),
			TotalCost:    round2(c.TotalCost),
			TotalProfit:  round2(c.TotalProfit),
			ProfitMargin: round2(c.ProfitMargin),
		})
	}
	return out
}

func toStockDTOs(rows []analytics.StockPrediction) []dto.StockPredictionDTO {
	out := make([]dto.StockPredictionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockPredictionDTO{
			ProductID:                r.ProductID,
			ProductName:              r.ProductName,
			CurrentStock:             r.CurrentStock,
			SalesVelocity:            round2(r.SalesVelocity),
			DaysUntilStockout:        round2(r.DaysUntilStockout),
			ReorderStatus:            string(r.ReorderStatus),
			SuggestedReorderDate:     r.SuggestedReorderDate,
			SuggestedReorderQuantity: r.SuggestedReorderQuantity,
		})
	}
	return out
}

func toLowStockDTOs(items []analytics.LowStockItem) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Category:    it.Category,
			Stock:       it.Stock,
			MinStock:    it.MinStock,
			Deficit:     it.Deficit,
		})
	}
	return out
}

func toPeriodDTO(m analytics.PeriodMetrics) dto.PeriodMetricsDTO {
	return dto.PeriodMetricsDTO{
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		TotalSales:  round2(m.TotalSales),
		TotalOrders: m.TotalOrders,
		AvgTicket:   round2(m.AvgTicket),
	}
}

func toComparisonDTO(c analytics.PeriodComparison) dto.PeriodComparisonDTO {
	return dto.PeriodComparisonDTO{
		Current:  toPeriodDTO(c.Current),
		Previous: toPeriodDTO(c.Previous),
		Change: dto.PeriodChangeDTO{
			Sales:     round2(c.Change.Sales),
			Orders:    round2(c.Change.Orders),
			AvgTicket: round2(c.Change.AvgTicket),
		},
	}
}

func toTrendDTO(t analytics.BusinessTrend) dto.BusinessTrendDTO {
	return dto.BusinessTrendDTO{
		Trend:         string(t.Trend),
		Strength:      string(t.Strength),
		WeeklyChange:  round2(t.WeeklyChange),
		MonthlyChange: round2(t.MonthlyChange),
	}
}
