package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/whatsapp-relay/internal/config"
	"github.com/xavierca1/whatsapp-relay/internal/entity"
	"github.com/xavierca1/whatsapp-relay/internal/infra/http/handlers"
	"github.com/xavierca1/whatsapp-relay/internal/infra/http/middleware"
	"github.com/xavierca1/whatsapp-relay/internal/infra/integration/whatsapp"
	"github.com/xavierca1/whatsapp-relay/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.HasDefaultCredentials() {
		log.Println("⚠️ WhatsApp: WHATSAPP_PHONE_NUMBER_ID ou WHATSAPP_ACCESS_TOKEN não configurados, o front vai precisar mandar as credenciais")
	}

	// 1. Gateway
	waClient := whatsapp.NewClient(cfg.GraphAPIURL, cfg.HTTPClientTimeout)

	// 2. UseCase
	sendMessageUC := usecase.NewSendMessageUseCase(
		waClient,
		entity.Credentials{
			AccountID:   cfg.WhatsAppPhoneNumberID,
			AccessToken: cfg.WhatsAppAccessToken,
		},
		cfg.DefaultCountryCode,
		middleware.Recorder{},
	)

	// 3. Handlers + Router
	messageHandler := handlers.NewMessageHandler(sendMessageUC)
	healthHandler := handlers.NewHealthHandler(cfg)
	router := handlers.NewRouter(cfg, messageHandler, healthHandler)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🔥 %s rodando na porta %s", cfg.ServiceName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erro no servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Desligando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Erro no shutdown: %v", err)
	}
}
