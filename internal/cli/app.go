package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/luga-ai/luga-cli/internal/api"
	"github.com/luga-ai/luga-cli/internal/config"
	"github.com/luga-ai/luga-cli/internal/logging"
	"github.com/luga-ai/luga-cli/internal/session"
	"github.com/luga-ai/luga-cli/internal/store"
)

// App is the interactive client. It owns the credential store, the session
// manager and the two API clients (anonymous and credentialed).
type App struct {
	config  *config.Config
	store   *store.Store
	session *session.Manager
	public  *api.Client
	private *api.Client
	log     logging.Logger
	reader  *bufio.Reader

	// conversationID is the chat the next "ask" continues; empty starts a
	// new conversation.
	conversationID string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	st, err := store.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "error", err)
		return nil, err
	}

	sess := session.NewManager(st, log)
	if err := sess.Restore(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	apiCfg := api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Retry: api.Policy{
			MaxAttempts: cfg.RetryMaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
			MaxDelay:    cfg.RetryMaxDelay,
		},
		Logger: log,
	}

	public, err := api.New(apiCfg)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	private, err := api.NewPrivate(apiCfg, sess)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		store:   st,
		session: sess,
		public:  public,
		private: private,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	fmt.Println("Luga CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().State == session.StateAuthenticated
}

func (a *App) getStatus() string {
	if email := a.session.Email(); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return ""
}
