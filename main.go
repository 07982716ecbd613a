package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/MarcGrol/signbackend/lib/myhttp"
	"github.com/MarcGrol/signbackend/lib/myhttpclient"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/mypubsub"
	"github.com/MarcGrol/signbackend/lib/mytime"
	"github.com/MarcGrol/signbackend/lib/myuuid"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
	"github.com/MarcGrol/signbackend/services/envelope"
	"github.com/MarcGrol/signbackend/services/warmup"
)

type serverConfig struct {
	Port            int    `env:"PORT,default=8000"`
	StaticDir       string `env:"STATIC_DIR,default=public"`
	RateLimitRPS    int    `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst  int    `env:"RATE_LIMIT_BURST,default=20"`
	MaxRequestBytes int64  `env:"MAX_REQUEST_BYTES,default=10485760"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "signbackend",
		Short: "Sends documents for signature via DocuSign",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the webserver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	noBrowser := false
	consentCmd := &cobra.Command{
		Use:   "consent",
		Short: "Print the url where the impersonated user grants consent and open it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return consent(noBrowser)
		},
	}
	consentCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "only print the consent url")
	rootCmd.AddCommand(consentCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func consent(noBrowser bool) error {
	authConfig, err := docusignauth.NewConfigFromEnvironment()
	if err != nil {
		return err
	}

	consentURL := authConfig.AuthURI()
	fmt.Printf("Grant consent at: %s\n", consentURL)

	if noBrowser {
		return nil
	}
	return browser.OpenURL(consentURL)
}

func serve() error {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := serverConfig{}
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	authConfig, err := docusignauth.NewConfigFromEnvironment()
	if err != nil {
		return err
	}

	envelopeConfig, err := envelope.NewConfigFromEnvironment()
	if err != nil {
		return err
	}

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	httpSender := myhttpclient.New()
	logger := mylog.New("main")

	authenticator, err := docusignauth.NewAdapter(authConfig, httpSender, nower)
	if err != nil {
		return fmt.Errorf("error creating docusign adapter: %w", err)
	}
	logger.Log(c, "", mylog.SeverityInfo, "Permission URL: %s", authenticator.AuthURI())

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		return fmt.Errorf("error creating pubsub client: %w", err)
	}
	defer pubsubCleanup()

	router := mux.NewRouter()
	router.Use(
		myhttp.RequestID(uuider),
		myhttp.RateLimit(logger, cfg.RateLimitRPS, cfg.RateLimitBurst),
		myhttp.RequestSizeLimit(logger, cfg.MaxRequestBytes),
	)

	envelopeService := envelope.NewWebService(envelopeConfig, authenticator, docusignclient.NewClient(httpSender),
		envelope.NewDirDocumentReader(envelopeConfig.DocumentDir), mypubsub.NewPublisher(pubsub, nower, uuider))
	err = envelopeService.RegisterEndpoints(c, router)
	if err != nil {
		return fmt.Errorf("error registering envelope endpoints: %w", err)
	}

	warmup.NewService(authenticator).RegisterEndpoints(c, router)

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	return startWebServerBlocking(c, cfg.Port, router)
}

func startWebServerBlocking(c context.Context, port int, router *mux.Router) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-c.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Starting webserver on port %d (try http://localhost:%d)", port, port)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting webserver on port %d: %w", port, err)
	}
	return nil
}
