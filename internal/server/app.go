// Package server wires the VoltShop development backend together: user,
// catalog, order and message services behind the REST server, and runs it
// until the process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/voltshop/internal/logging"
	"github.com/dmitrijs2005/voltshop/internal/server/catalog"
	"github.com/dmitrijs2005/voltshop/internal/server/config"
	"github.com/dmitrijs2005/voltshop/internal/server/messages"
	"github.com/dmitrijs2005/voltshop/internal/server/orders"
	"github.com/dmitrijs2005/voltshop/internal/server/refreshtokens"
	"github.com/dmitrijs2005/voltshop/internal/server/rest"
	"github.com/dmitrijs2005/voltshop/internal/server/users"
)

const (
	DemoUserName = "demo"
	DemoPassword = "demo-password"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(c.LogLevel))

	us := users.NewService(users.NewMemoryRepository(), refreshtokens.NewMemoryRepository(), logger, c)
	cs := catalog.NewService(catalog.DemoProducts())
	ords := orders.NewService(cs)
	ms := messages.NewService()

	if err := seedDemoUser(context.Background(), us, ms); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	srv := rest.NewServer(c.Addr, c.BasePath, logger, us, cs, ords, ms)

	return &App{config: c, logger: logger, server: srv}, nil
}

func seedDemoUser(ctx context.Context, us *users.Service, ms *messages.Service) error {
	u, err := us.Register(ctx, DemoUserName, DemoPassword)
	if err != nil {
		return err
	}
	ms.Welcome(ctx, u.ID)
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the server stops, either on a signal or on a listener
// error.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
