package main

import (
	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/ui"
	"io"

	"go.uber.org/zap"
)

type Globals struct {
	Cat    catalog.Catalog
	Out    io.Writer
	Render render.Renderer
	Log    *zap.Logger
	// FormIO is nil outside tests, so forms use the terminal.
	FormIO *ui.FormIO
}
