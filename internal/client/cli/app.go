package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/voltshop/internal/client/api"
	"github.com/dmitrijs2005/voltshop/internal/client/auth"
	"github.com/dmitrijs2005/voltshop/internal/client/cart"
	"github.com/dmitrijs2005/voltshop/internal/client/config"
	"github.com/dmitrijs2005/voltshop/internal/client/services"
	"github.com/dmitrijs2005/voltshop/internal/client/storage"
	"github.com/dmitrijs2005/voltshop/internal/client/tokens"
	"github.com/dmitrijs2005/voltshop/internal/logging"
)

type App struct {
	authService services.AuthService
	shopService services.ShopService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userName    string
	loggedIn    bool
	closeFn     func() error
}

// New builds an App around ready services, reading commands from in and
// writing to out.
func New(as services.AuthService, ss services.ShopService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		shopService: ss,
		logger:      logger,
		reader:      bufio.NewReader(in),
		out:         out,
		closeFn:     func() error { return nil },
	}
}

// NewApp wires storage, the token machinery and the services described by c
// and attaches the App to the process stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repo, err := storage.Open(ctx, storage.Options{
		Backend:    c.Storage,
		SQLitePath: c.SQLitePath,
		RedisAddr:  c.RedisAddr,
	})
	if err != nil {
		logger.Error(ctx, "error initializing storage", "backend", c.Storage, "error", err)
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	store := tokens.NewStore(repo)
	refresher := auth.NewRefresher(httpClient, c.BaseURL, store, logger)
	dispatcher := auth.NewDispatcher(store, refresher,
		auth.WithHTTPClient(httpClient),
		auth.WithLogger(logger),
		auth.WithRefreshTimeout(c.RefreshTimeout),
		auth.WithValidator(auth.NewValidator(c.ExpiryMargin)),
	)
	apiClient := api.NewHTTPClient(c.BaseURL, httpClient, dispatcher)

	as := services.NewAuthService(apiClient, store)
	ss := services.NewShopService(apiClient, cart.New(repo))

	a := New(as, ss, logger, os.Stdin, os.Stdout)
	a.closeFn = repo.Close
	return a, nil
}

// Run shows the welcome banner and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to VoltShop CLI (type 'help' for commands)")

	ok, err := a.authService.IsLoggedIn(ctx)
	if err != nil {
		a.logger.Warn(ctx, "cannot read stored session", "error", err)
	}
	a.loggedIn = ok

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	return a.closeFn()
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	switch {
	case !a.loggedIn:
		return ""
	case a.userName != "":
		return fmt.Sprintf(" (%s)", a.userName)
	default:
		return " (session)"
	}
}
