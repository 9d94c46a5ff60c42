package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/hashkeeper/internal/config"
	"github.com/dmitrijs2005/hashkeeper/internal/filex"
	"github.com/dmitrijs2005/hashkeeper/internal/logging"
	"github.com/dmitrijs2005/hashkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/hashkeeper/internal/services"
	"github.com/dmitrijs2005/hashkeeper/internal/store"
)

type App struct {
	config  *config.Config
	service services.AccountService
	store   io.Closer
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	repo, err := store.Open(ctx, c)
	if err != nil {
		log.Printf("error opening account store: %s", err.Error())
		return nil, err
	}

	if csvRepo, ok := repo.(*accounts.CSVRepository); ok {
		if free, err := filex.TryLock(csvRepo.LockPath()); err == nil && !free {
			log.Printf("account store %s is in use by another session; changes will wait for it", csvRepo.Path())
		}
	}

	svc := services.NewAccountService(repo, logger.With("store", c.StoreDriver))

	return &App{
		config:  c,
		service: svc,
		store:   repo,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			log.Printf("error closing account store: %v", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to HashKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}
