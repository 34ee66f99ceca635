package document

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
)

var pagesLine = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

type analyzer struct {
	pdfInfo []string
	timeout time.Duration
	run     runner
	logger  *slog.Logger
}

// NewAnalyzer creates a DocumentAnalyzer backed by pdfinfo for PDFs and
// OOXML metadata for Word and PowerPoint files.
func NewAnalyzer(cfg *config.Config, logger *slog.Logger) service.DocumentAnalyzer {
	return &analyzer{
		pdfInfo: cfg.Document.PDFInfoCommand,
		timeout: cfg.Document.AnalyzeTimeout,
		run:     execRunner,
		logger:  logger,
	}
}

func (a *analyzer) Analyze(ctx context.Context, name string, data []byte) service.DocumentInfo {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	info, err := a.analyze(ctx, name, data)
	if err != nil {
		logger.Warn("Document analysis failed, using fallback",
			slog.String("file", name),
			slog.Any("error", err),
		)

		return service.UnknownDocument()
	}

	return info
}

func (a *analyzer) analyze(ctx context.Context, name string, data []byte) (service.DocumentInfo, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pdf":
		pages, err := a.pdfPages(ctx, data)
		if err != nil {
			return service.DocumentInfo{}, err
		}

		return service.DocumentInfo{PageCount: pages, Type: service.DocumentPDF}, nil

	case ".docx":
		return service.DocumentInfo{PageCount: ooxmlCount(data, func(p appProperties) int { return p.Pages }), Type: service.DocumentDocx}, nil

	case ".doc":
		return service.DocumentInfo{PageCount: 1, Type: service.DocumentDoc}, nil

	case ".pptx", ".ppt":
		pages := 1
		if ext == ".pptx" {
			pages = ooxmlCount(data, func(p appProperties) int { return p.Slides })
		}

		return service.DocumentInfo{PageCount: pages, Type: service.DocumentPPTX}, nil

	case ".xlsx", ".xls", ".csv":
		return service.DocumentInfo{PageCount: 1, Type: service.DocumentExcel}, nil

	case ".png", ".jpg", ".jpeg":
		return service.DocumentInfo{PageCount: 1, Type: service.DocumentImage}, nil

	default:
		return service.UnknownDocument(), nil
	}
}

func (a *analyzer) pdfPages(ctx context.Context, data []byte) (int, error) {
	if len(a.pdfInfo) == 0 {
		return 0, errors.New("pdf info command is not configured")
	}

	f, err := os.CreateTemp("", "analyze-*.pdf")
	if err != nil {
		return 0, errors.Wrap(err, "create temp file")
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()

		return 0, errors.Wrap(err, "write temp file")
	}
	if err := f.Close(); err != nil {
		return 0, errors.Wrap(err, "close temp file")
	}

	args := append(append([]string{}, a.pdfInfo[1:]...), f.Name())
	out, err := a.run(ctx, a.pdfInfo[0], args...)
	if err != nil {
		return 0, err
	}

	return parsePages(out)
}

func parsePages(out []byte) (int, error) {
	m := pagesLine.FindSubmatch(out)
	if m == nil {
		return 0, errors.New("page count not found in pdf info output")
	}
	pages, err := strconv.Atoi(string(m[1]))
	if err != nil || pages < 1 {
		return 0, errors.Errorf("invalid page count %q", m[1])
	}

	return pages, nil
}

// appProperties is the extended-properties part of an OOXML package.
type appProperties struct {
	Pages  int `xml:"Pages"`
	Slides int `xml:"Slides"`
}

// ooxmlCount reads docProps/app.xml and returns the selected count, or 1 when
// the metadata is missing or zero (files not saved by Office often omit it).
func ooxmlCount(data []byte, pick func(appProperties) int) int {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 1
	}

	for _, f := range zr.File {
		if f.Name != "docProps/app.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return 1
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return 1
		}

		var props appProperties
		if err := xml.Unmarshal(raw, &props); err != nil {
			return 1
		}
		if n := pick(props); n > 0 {
			return n
		}

		return 1
	}

	return 1
}
