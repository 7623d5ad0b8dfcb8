package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/client/config"
	"github.com/camertanev/FraudDetect-Z/internal/client/gateway"
	"github.com/camertanev/FraudDetect-Z/internal/client/ledger"
	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/client/repositories/claims"
	"github.com/camertanev/FraudDetect-Z/internal/client/services"
	"github.com/camertanev/FraudDetect-Z/internal/client/signer"
	"github.com/camertanev/FraudDetect-Z/internal/logging"
	"github.com/camertanev/FraudDetect-Z/internal/sealing"

	"log/slog"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	coordinator *services.Coordinator
	authService services.AuthService
	ledger      ledger.Client
	signer      *signer.LocalSigner
	userName    string
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := claims.InitCacheDB(ctx, c.CacheDSN)
	if err != nil {
		log.Printf("error initializing claim cache: %s", err.Error())
		return nil, err
	}

	ledgerClient, err := ledger.NewGRPCClient(c.LedgerEndpointAddr)
	if err != nil {
		return nil, err
	}

	sg := signer.NewLocalSigner()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &App{config: c, ledger: ledgerClient, signer: sg, reader: bufio.NewReader(os.Stdin)}

	app.coordinator = services.NewCoordinator(services.CoordinatorParams{
		Ledger:         ledgerClient,
		Gateway:        gateway.NewDevGateway([]byte(c.SealingSecret), sealing.DevSalt),
		Signer:         sg,
		Repo:           claims.NewMemoryRepository(),
		Cache:          claims.NewSQLiteCache(db),
		Logger:         logger,
		Destination:    c.Destination,
		FraudThreshold: c.FraudThreshold,
		Approve:        app.confirmSubmission,
	})
	app.authService = services.NewAuthService(ledgerClient, sg)

	return app, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	if _, err := a.signer.Address(); err != nil {
		return false
	}
	return true
}

// confirmSubmission is the signing prompt: the prepared submission is shown
// to the user and nothing is written to the ledger unless they accept.
func (a *App) confirmSubmission(ctx context.Context, sub *models.Submission) bool {
	log.Printf("About to submit claim %s (policy %s, provider %s, amount %d)", sub.ID, sub.PolicyNumber, sub.Provider, sub.PublicAmountHint)
	answer, err := getSimpleText(a.reader, "Sign and submit? (y/n)", os.Stdout)
	if err != nil {
		return false
	}
	return answer == "y" || answer == "yes"
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// StartStatusPrinter drains the coordinator's operation status stream and
// logs terminal phases so long-running protocol steps stay visible.
func (a *App) StartStatusPrinter(ctx context.Context) {
	statuses := a.coordinator.Subscribe()
	for {
		select {
		case st := <-statuses:
			if st.Phase != models.PhasePending {
				log.Printf("[%s] %s: %s", st.Kind, st.Phase, st.Message)
			}
		case <-ctx.Done():
			return
		}
	}
}
