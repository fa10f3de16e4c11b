// Package api exposes the import pipeline over HTTP.
package api

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finassist/extrato/internal/extractor"
	"github.com/finassist/extrato/internal/importer"
	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/parser"
	"github.com/finassist/extrato/internal/store"
)

// Server wires the HTTP routes to the import pipeline.
type Server struct {
	importer *importer.Importer
	store    store.Store
	log      zerolog.Logger

	// Parser defaults applied to every request.
	MaxBytes   int
	MaxLines   int
	Categorize parser.Categorizer
}

func NewServer(im *importer.Importer, s store.Store, log zerolog.Logger) *Server {
	return &Server{importer: im, store: s, log: log}
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             64 << 20,
		DisableStartupMessage: true,
	})

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/import", s.handleImport)
	app.Get("/api/contas/:conta/transacoes", s.handleTransactions)
	app.Get("/api/contas/:conta/importacoes", s.handleImports)

	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// handleImport accepts a statement as a multipart PDF upload ("arquivo") or
// as plain page text ("texto"), with optional "conta" and "banco" fields.
func (s *Server) handleImport(c *fiber.Ctx) error {
	account := c.FormValue("conta")
	format := models.BankFormat(c.FormValue("banco"))

	pages, fileName, err := s.requestPages(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	opts := parser.Options{
		Format:     format,
		MaxBytes:   s.MaxBytes,
		MaxLines:   s.MaxLines,
		Categorize: s.Categorize,
		Logger:     &s.log,
	}
	res, err := s.importer.Import(c.Context(), account, fileName, pages, opts)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrFormatUnrecognized):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, parser.ErrResourceLimit):
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
		default:
			s.log.Error().Err(err).Str("arquivo", fileName).Msg("import failed")
			return fiber.NewError(fiber.StatusInternalServerError, "import failed")
		}
	}

	return c.JSON(res)
}

// requestPages recovers the page texts from the request body. PDF uploads go
// through the extractor; the texto field is taken as-is, one page.
func (s *Server) requestPages(c *fiber.Ctx) ([]string, string, error) {
	file, err := c.FormFile("arquivo")
	if err == nil {
		tmp := filepath.Join(os.TempDir(), uuid.New().String()+".pdf")
		if err := c.SaveFile(file, tmp); err != nil {
			return nil, "", errors.New("could not store upload")
		}
		defer os.Remove(tmp)

		pages, err := extractor.ExtractText(tmp)
		if err != nil {
			return nil, "", err
		}
		return pages, file.Filename, nil
	}

	if texto := c.FormValue("texto"); texto != "" {
		return []string{texto}, "", nil
	}
	return nil, "", errors.New("expected an arquivo upload or a texto field")
}

func (s *Server) handleTransactions(c *fiber.Ctx) error {
	txns, err := s.store.ListTransactions(c.Context(), c.Params("conta"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"conta":      c.Params("conta"),
		"transacoes": txns,
		"resumo":     models.Summarize(txns, 0),
	})
}

func (s *Server) handleImports(c *fiber.Ctx) error {
	recs, err := s.store.ListImports(c.Context(), c.Params("conta"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"conta":       c.Params("conta"),
		"importacoes": recs,
	})
}
