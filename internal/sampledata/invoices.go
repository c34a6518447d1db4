// Package sampledata holds the demonstration corpus: extracted invoices and
// the human corrections a reviewer issued for them, covering the learning
// scenarios the demo walks through (service-date extraction, VAT-inclusive
// recalculation, skonto terms with SKU mapping, and duplicate detection).
package sampledata

import "github.com/Veraticus/mentat/internal/model"

// Supplier GmbH: the extractor keeps missing the Leistungsdatum.
var (
	InvoiceA1 = model.ExtractedInvoice{
		InvoiceID:  "INV-A-001",
		Vendor:     "Supplier GmbH",
		Confidence: 0.78,
		RawText:    "Rechnung INV-2024-001\nDatum: 12.01.2024\nLeistungsdatum: 01.01.2024\nBetrag: 2975.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "INV-2024-001",
			InvoiceDate:   "2024-01-12",
			Currency:      model.StrPtr("EUR"),
			NetTotal:      2500.0,
			TaxRate:       0.19,
			TaxTotal:      475.0,
			GrossTotal:    2975.0,
		},
	}

	CorrectionA1 = model.HumanCorrection{
		InvoiceID: "INV-A-001",
		Vendor:    "Supplier GmbH",
		Corrections: []model.CorrectionItem{
			{
				Field:  "serviceDate",
				From:   nil,
				To:     "2024-01-01",
				Reason: "Leistungsdatum found in raw text",
			},
		},
		FinalDecision: model.DecisionApproved,
	}

	InvoiceA2 = model.ExtractedInvoice{
		InvoiceID:  "INV-A-002",
		Vendor:     "Supplier GmbH",
		Confidence: 0.82,
		RawText:    "Rechnung INV-2024-002\nDatum: 18.01.2024\nLeistungsdatum: 15.01.2024\nBetrag: 1190.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "INV-2024-002",
			InvoiceDate:   "2024-01-18",
			Currency:      model.StrPtr("EUR"),
			NetTotal:      1000.0,
			TaxRate:       0.19,
			TaxTotal:      190.0,
			GrossTotal:    1190.0,
		},
	}

	InvoiceA3 = model.ExtractedInvoice{
		InvoiceID:  "INV-A-003",
		Vendor:     "Supplier GmbH",
		Confidence: 0.75,
		RawText:    "Rechnung INV-2024-003\nDatum: 20.01.2024\nLeistungsdatum: 18.01.2024\nPO-A-051\nBetrag: 5950.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "INV-2024-003",
			InvoiceDate:   "2024-01-20",
			Currency:      model.StrPtr("EUR"),
			NetTotal:      5000.0,
			TaxRate:       0.19,
			TaxTotal:      950.0,
			GrossTotal:    5950.0,
			LineItems: []model.LineItem{
				{SKU: model.StrPtr("WIDGET-A"), Description: "Premium Widget", Quantity: 10, UnitPrice: 500},
			},
		},
	}

	CorrectionA3 = model.HumanCorrection{
		InvoiceID: "INV-A-003",
		Vendor:    "Supplier GmbH",
		Corrections: []model.CorrectionItem{
			{
				Field:  "poNumber",
				From:   nil,
				To:     "PO-A-051",
				Reason: "PO number found in invoice text",
			},
		},
		FinalDecision: model.DecisionApproved,
	}
)

// Parts AG: totals arrive VAT-inclusive and the currency goes missing.
var (
	InvoiceB1 = model.ExtractedInvoice{
		InvoiceID:  "INV-B-001",
		Vendor:     "Parts AG",
		Confidence: 0.80,
		RawText:    "Invoice B-001\nDate: 2024-01-10\nPrices incl. VAT 19%\nTotal: 1190.00",
		Fields: model.InvoiceFields{
			InvoiceNumber: "B-001",
			InvoiceDate:   "2024-01-10",
			ServiceDate:   model.StrPtr("2024-01-10"),
			NetTotal:      1190.0, // wrong: gross copied in
			TaxRate:       0.19,
			TaxTotal:      0, // wrong
			GrossTotal:    1190.0,
		},
	}

	CorrectionB1 = model.HumanCorrection{
		InvoiceID: "INV-B-001",
		Vendor:    "Parts AG",
		Corrections: []model.CorrectionItem{
			{
				Field:  "currency",
				From:   nil,
				To:     "EUR",
				Reason: "Currency inferred from vendor location",
			},
			{
				Field:  "netTotal",
				From:   1190.0,
				To:     1000.0,
				Reason: "VAT included - recalculated net amount",
			},
			{
				Field:  "taxTotal",
				From:   0.0,
				To:     190.0,
				Reason: "VAT included - recalculated tax",
			},
		},
		FinalDecision: model.DecisionApproved,
	}

	InvoiceB2 = model.ExtractedInvoice{
		InvoiceID:  "INV-B-002",
		Vendor:     "Parts AG",
		Confidence: 0.83,
		RawText:    "Invoice B-002\nDate: 2024-01-15\nMwSt. inkl. 19%\nTotal: 2380.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "B-002",
			InvoiceDate:   "2024-01-15",
			ServiceDate:   model.StrPtr("2024-01-15"),
			NetTotal:      2380.0,
			TaxRate:       0.19,
			TaxTotal:      0,
			GrossTotal:    2380.0,
		},
	}
)

// Freight & Co: skonto clauses in free text and unmapped freight line items.
var (
	InvoiceC1 = model.ExtractedInvoice{
		InvoiceID:  "INV-C-001",
		Vendor:     "Freight & Co",
		Confidence: 0.77,
		RawText:    "Invoice C-001\nDate: 2024-01-12\n2% Skonto bei Zahlung innerhalb 10 Tage\nSeefracht Hamburg-Shanghai\nAmount: 850.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "C-001",
			InvoiceDate:   "2024-01-12",
			ServiceDate:   model.StrPtr("2024-01-12"),
			Currency:      model.StrPtr("EUR"),
			NetTotal:      850.0,
			TaxRate:       0.0,
			TaxTotal:      0,
			GrossTotal:    850.0,
			LineItems: []model.LineItem{
				{Description: "Seefracht Hamburg-Shanghai", Quantity: 1, UnitPrice: 850},
			},
		},
	}

	CorrectionC1 = model.HumanCorrection{
		InvoiceID: "INV-C-001",
		Vendor:    "Freight & Co",
		Corrections: []model.CorrectionItem{
			{
				Field:  "paymentTerms",
				From:   nil,
				To:     "2% Skonto bei Zahlung innerhalb 10 Tage",
				Reason: "Skonto terms found in invoice",
			},
			{
				Field:  "sku",
				From:   model.LineItem{Description: "Seefracht Hamburg-Shanghai"},
				To:     "FREIGHT",
				Reason: "Seefracht/Shipping description maps to SKU FREIGHT",
			},
		},
		FinalDecision: model.DecisionApproved,
	}

	InvoiceC2 = model.ExtractedInvoice{
		InvoiceID:  "INV-C-002",
		Vendor:     "Freight & Co",
		Confidence: 0.79,
		RawText:    "Invoice C-002\nDate: 2024-01-20\n2% Skonto innerhalb 10 Tage\nShipping Services\nAmount: 1200.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "C-002",
			InvoiceDate:   "2024-01-20",
			ServiceDate:   model.StrPtr("2024-01-20"),
			Currency:      model.StrPtr("EUR"),
			NetTotal:      1200.0,
			TaxRate:       0.0,
			TaxTotal:      0,
			GrossTotal:    1200.0,
			LineItems: []model.LineItem{
				{Description: "Shipping Services", Quantity: 1, UnitPrice: 1200},
			},
		},
	}
)

// Supplier GmbH resubmits the same invoice a day later.
var (
	InvoiceA4 = model.ExtractedInvoice{
		InvoiceID:  "INV-A-004",
		Vendor:     "Supplier GmbH",
		Confidence: 0.81,
		RawText:    "Rechnung INV-2024-004\nDatum: 25.01.2024\nLeistungsdatum: 23.01.2024\nBetrag: 2975.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "INV-2024-004",
			InvoiceDate:   "2024-01-25",
			Currency:      model.StrPtr("EUR"),
			NetTotal:      2500.0,
			TaxRate:       0.19,
			TaxTotal:      475.0,
			GrossTotal:    2975.0,
		},
	}

	InvoiceA4Resubmitted = model.ExtractedInvoice{
		InvoiceID:  "INV-A-004",
		Vendor:     "Supplier GmbH",
		Confidence: 0.80,
		RawText:    "Rechnung INV-2024-004\nDatum: 26.01.2024\nLeistungsdatum: 23.01.2024\nBetrag: 2975.00 EUR",
		Fields: model.InvoiceFields{
			InvoiceNumber: "INV-2024-004",
			InvoiceDate:   "2024-01-26",
			Currency:      model.StrPtr("EUR"),
			NetTotal:      2500.0,
			TaxRate:       0.19,
			TaxTotal:      475.0,
			GrossTotal:    2975.0,
		},
	}
)
