// Package template renders invoice summaries as markdown and sanitized HTML.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/config"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/services/markdown"
)

//go:embed templates/invoice.md.tmpl
var defaultTemplates embed.FS

const defaultInvoiceTemplate = "templates/invoice.md.tmpl"

type invoiceView struct {
	*dto.InvoiceSummaryDTO
	FirmName    string
	GeneratedAt time.Time
}

type InvoiceRenderer struct {
	tmpl     *template.Template
	markdown markdown.MarkdownService
	firmName string
	clock    biztime.Clock
	logger   logger.Interface
}

// NewInvoiceRenderer parses the invoice layout. A custom template file that
// does not exist falls back to the built-in layout with a warning; one that
// does not parse is an error.
func NewInvoiceRenderer(cfg config.InvoiceConfig, md markdown.MarkdownService, clock biztime.Clock, log logger.Interface) (*InvoiceRenderer, error) {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	if md == nil {
		md = markdown.NewMarkdownService()
	}

	source, name, err := loadInvoiceTemplate(cfg.TemplatePath, log)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template %s: %w", name, err)
	}

	firmName := strings.TrimSpace(cfg.FirmName)
	if firmName == "" {
		firmName = "Hart Law PLLC"
	}

	return &InvoiceRenderer{
		tmpl:     tmpl,
		markdown: md,
		firmName: firmName,
		clock:    clock,
		logger:   log,
	}, nil
}

func loadInvoiceTemplate(path string, log logger.Interface) (string, string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case err == nil:
			log.Infow("loaded invoice template", "file", path, "size", len(content))
			return string(content), path, nil
		case os.IsNotExist(err):
			log.Warnw("invoice template not found, using default layout", "file", path)
		default:
			return "", "", fmt.Errorf("failed to read invoice template %s: %w", path, err)
		}
	}

	content, err := defaultTemplates.ReadFile(defaultInvoiceTemplate)
	if err != nil {
		return "", "", fmt.Errorf("failed to read default invoice template: %w", err)
	}
	return string(content), defaultInvoiceTemplate, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date":  func(t time.Time) string { return t.UTC().Format("2006-01-02") },
		"hours": FormatHours,
		"money": func(currency string, amount decimal.Decimal) string { return FormatMoney(amount, currency) },
		"rate": func(currency string, e *dto.TimeEntryDTO) string {
			if currency == billing.CurrencyRBX.String() {
				return FormatMoney(e.RateRBX, currency)
			}
			return FormatMoney(e.RateUSD, currency)
		},
		"amount": func(currency string, e *dto.TimeEntryDTO) string {
			if currency == billing.CurrencyRBX.String() {
				return FormatMoney(e.AmountRBX, currency)
			}
			return FormatMoney(e.AmountUSD, currency)
		},
		"cell": escapeCell,
	}
}

// escapeCell keeps free text inside one markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// Markdown renders the summary as a markdown document.
func (r *InvoiceRenderer) Markdown(summary *dto.InvoiceSummaryDTO) (string, error) {
	if summary == nil {
		return "", fmt.Errorf("invoice summary is nil")
	}

	var buf bytes.Buffer
	view := invoiceView{
		InvoiceSummaryDTO: summary,
		FirmName:          r.firmName,
		GeneratedAt:       r.clock.Now(),
	}
	if err := r.tmpl.Execute(&buf, view); err != nil {
		r.logger.Errorw("failed to render invoice", "case_id", summary.CaseID, "error", err)
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.String(), nil
}

// HTML renders the summary as a sanitized HTML fragment.
func (r *InvoiceRenderer) HTML(summary *dto.InvoiceSummaryDTO) (string, error) {
	md, err := r.Markdown(summary)
	if err != nil {
		return "", err
	}
	body, err := r.markdown.ToHTMLSanitized(md)
	if err != nil {
		r.logger.Errorw("failed to convert invoice to HTML", "case_id", summary.CaseID, "error", err)
		return "", err
	}
	return `<article class="invoice">` + "\n" + body + "</article>\n", nil
}
