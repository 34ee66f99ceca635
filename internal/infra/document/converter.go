package document

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
)

type officeConverter struct {
	binary  string
	timeout time.Duration
	run     runner
	logger  *slog.Logger
}

// NewConverter creates a DocumentConverter that shells out to headless LibreOffice.
func NewConverter(cfg *config.Config, logger *slog.Logger) service.DocumentConverter {
	return &officeConverter{
		binary:  cfg.Document.ConverterBinary,
		timeout: cfg.Document.ConvertTimeout,
		run:     execRunner,
		logger:  logger,
	}
}

// ConvertToPDF writes data into a scratch directory, runs
// `<binary> --headless --convert-to pdf --outdir <dir> <input>` and returns the produced PDF.
func (c *officeConverter) ConvertToPDF(ctx context.Context, name string, data []byte) ([]byte, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	dir, err := os.MkdirTemp("", "convert-*")
	if err != nil {
		return nil, errors.Wrap(err, "create scratch dir")
	}
	defer os.RemoveAll(dir)

	ext := strings.ToLower(filepath.Ext(name))
	input := filepath.Join(dir, "input"+ext)
	if err := os.WriteFile(input, data, 0o600); err != nil {
		return nil, errors.Wrap(err, "write input file")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if _, err := c.run(ctx, c.binary, "--headless", "--convert-to", "pdf", "--outdir", dir, input); err != nil {
		return nil, err
	}

	output := filepath.Join(dir, "input.pdf")
	pdf, err := os.ReadFile(output)
	if err != nil {
		return nil, errors.Wrap(err, "converted pdf not produced")
	}

	logger.Debug("Document converted",
		slog.String("file", name),
		slog.Duration("duration", time.Since(start)),
		slog.Int("size", len(pdf)),
	)

	return pdf, nil
}
