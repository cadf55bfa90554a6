package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/config"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/client/services"
	"github.com/krishiu/krishi-cli/internal/client/session"
	"github.com/krishiu/krishi-cli/internal/logging"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	reg       services.RegistrationService
	resolver  services.ResolverService
	dashboard services.DashboardService
	sess      *session.Session
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewRestClient(c.ServerEndpointAddr, c.RequestTimeout, logger)

	uploads := services.NewUploadService(apiClient, logger)

	return &App{
		config:    c,
		auth:      services.NewAuthService(apiClient, logger),
		reg:       services.NewRegistrationService(apiClient, uploads, logger),
		resolver:  services.NewResolverService(apiClient, logger),
		dashboard: services.NewDashboardService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("KrishiConnect CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sess.Authenticated()
}

func (a *App) role() models.Role {
	if a.sess == nil {
		return ""
	}
	return a.sess.Role
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.sess.Email, a.sess.Role)
}
