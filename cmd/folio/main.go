package main

import (
	"fmt"
	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/storage"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type CLI struct {
	List  ListCmd  `cmd:"" aliases:"ls" help:"List entries in display order"`
	Show  ShowCmd  `cmd:"" help:"Show entry details"`
	Add   AddCmd   `cmd:"" aliases:"a" help:"Add an entry"`
	Edit  EditCmd  `cmd:"" aliases:"e" help:"Edit entry fields"`
	Rm    RmCmd    `cmd:"" help:"Delete an entry"`
	Move  MoveCmd  `cmd:"" aliases:"mv" help:"Move an entry one position up or down"`
	Reset ResetCmd `cmd:"" help:"Discard stored entries and restore the defaults"`

	DataDir   string `name:"data-dir" help:"Directory holding catalog snapshots (env FOLIO_DATA_DIR)"`
	Key       string `name:"key" short:"k" help:"Storage key of the catalog (env FOLIO_STORAGE_KEY)"`
	Ephemeral bool   `help:"Keep the catalog in memory for this run only"`
	LogLevel  string `name:"log-level" help:"Diagnostics level on stderr (env FOLIO_LOG_LEVEL)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := c.applyOverrides(&settings); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       settings.LogLevel,
		Development: settings.LogDev,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := c.openStore(settings)
	if err != nil {
		return err
	}
	logger.Debug("catalog opened",
		zap.String("dir", config.ShortenPath(settings.DataDir)),
		zap.String("key", settings.StorageKey),
		zap.Bool("ephemeral", c.Ephemeral))

	globals := &Globals{
		Cat:    newCatalog(store, settings, logger),
		Out:    os.Stdout,
		Render: render.NewLipglossRendererAuto(os.Stdout),
		Log:    logger,
	}
	ctx.Bind(globals)
	return nil
}

func (c *CLI) applyOverrides(s *config.Settings) error {
	if c.DataDir != "" {
		dir, err := config.ExpandPath(c.DataDir)
		if err != nil {
			return fmt.Errorf("invalid data dir %q: %w", c.DataDir, err)
		}
		s.DataDir = dir
	}
	if c.Key != "" {
		s.StorageKey = c.Key
	}
	if c.LogLevel != "" {
		s.LogLevel = c.LogLevel
	}
	if err := storage.ValidateKey(s.StorageKey); err != nil {
		return fmt.Errorf("invalid storage key: %w", err)
	}
	return nil
}

func (c *CLI) openStore(s config.Settings) (storage.Store, error) {
	if c.Ephemeral {
		return storage.NewMemory(), nil
	}
	store, err := storage.NewFile(s.DataDir, s.LockTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir %s: %w", config.ShortenPath(s.DataDir), err)
	}
	return store, nil
}

func newCatalog(store storage.Store, s config.Settings, logger *zap.Logger) *catalog.Service {
	return catalog.NewService(store,
		catalog.WithKey(s.StorageKey),
		catalog.WithLogger(logger),
	)
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Portfolio catalog administration"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
