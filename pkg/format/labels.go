package format

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/medisupply/fieldkit/pkg/i18n"
)

//go:embed labels.yaml
var labelsFS embed.FS

const labelsFile = "labels.yaml"

// Label groups in labels.yaml.
const (
	groupOrderStatus = "order_status"
	groupVisitStatus = "visit_status"
	groupPriority    = "priority"
)

// Known codes per group, in workflow order.
var (
	OrderStatusCodes = []string{"pending", "processing", "shipped", "delivered", "cancelled"}
	VisitStatusCodes = []string{"pending", "in-progress", "completed", "cancelled"}
	PriorityCodes    = []string{"low", "medium", "high", "urgent"}
)

// Labeler maps status and priority codes to display labels in one language.
type Labeler struct {
	tr   *i18n.Translator
	lang string
}

type labelerConfig struct {
	logger     *slog.Logger
	logMissing bool
}

// LabelerOption configures NewLabeler.
type LabelerOption func(*labelerConfig)

// WithLogger routes catalog loading messages to logger.
func WithLogger(logger *slog.Logger) LabelerOption {
	return func(c *labelerConfig) {
		c.logger = logger
	}
}

// WithUnknownCodeLogging logs a warning for every code without a label.
func WithUnknownCodeLogging(enabled bool) LabelerOption {
	return func(c *labelerConfig) {
		c.logMissing = enabled
	}
}

// NewLabeler loads the embedded label catalog and picks the catalog language
// closest to lang ("es-CO" resolves to "es"). Unsupported languages fall back
// to Spanish.
func NewLabeler(ctx context.Context, lang string, opts ...LabelerOption) (*Labeler, error) {
	cfg := &labelerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(labelsFS, labelsFile),
		i18n.WithDefaultLanguage("es"),
		i18n.WithLogger(cfg.logger),
		i18n.WithMissingTranslationsLogging(cfg.logMissing),
	)
	if err != nil {
		return nil, fmt.Errorf("load label catalog: %w", err)
	}

	return &Labeler{tr: tr, lang: tr.Match(lang)}, nil
}

// Language returns the catalog language in use.
func (l *Labeler) Language() string {
	return l.lang
}

func (l *Labeler) OrderStatus(code string) string {
	return l.label(groupOrderStatus, code)
}

func (l *Labeler) VisitStatus(code string) string {
	return l.label(groupVisitStatus, code)
}

func (l *Labeler) Priority(code string) string {
	return l.label(groupPriority, code)
}

// label returns code unchanged when the catalog has no entry for it.
// Codes containing "." would address nested keys, so they never match.
func (l *Labeler) label(group, code string) string {
	if code == "" || strings.Contains(code, ".") {
		return code
	}
	return l.tr.Td(l.lang, group+"."+code, code)
}

var defaultLabeler = sync.OnceValue(func() *Labeler {
	l, err := NewLabeler(context.Background(), "es")
	if err != nil {
		// labels.yaml is compiled in; failing here is a build defect.
		panic(err)
	}
	return l
})

// OrderStatus maps pending, processing, shipped, delivered and cancelled to
// their Spanish labels. Unknown codes are returned unchanged.
func OrderStatus(code string) string {
	return defaultLabeler().OrderStatus(code)
}

// VisitStatus maps pending, in-progress, completed and cancelled to their
// Spanish labels. Unknown codes are returned unchanged.
func VisitStatus(code string) string {
	return defaultLabeler().VisitStatus(code)
}

// Priority maps low, medium, high and urgent to their Spanish labels.
// Unknown codes are returned unchanged.
func Priority(code string) string {
	return defaultLabeler().Priority(code)
}
