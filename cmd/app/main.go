package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"trackshop/config"
	"trackshop/handlers"
	"trackshop/repository"
	"trackshop/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.LoadConfigOrPanic()

	loc, err := time.LoadLocation(cfg.BonusTimezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.BonusTimezone).Msg("Неверный часовой пояс")
	}

	db := config.InitDB(ctx, cfg)
	defer func() { _ = db.Close() }()

	repoImpl := repository.NewPostgresRepository(db)

	svc := service.NewService(
		repoImpl,
		cfg.JWTSecret,
		cfg.DownloadTTL,
		cfg.RequestFee,
		loc,
		log,
	)

	h := handlers.NewHandler(svc, cfg.JWTSecret)

	r := mux.NewRouter()
	r.HandleFunc("/api/auth", h.AuthHandler).Methods("POST")
	r.HandleFunc("/api/info", h.JWTMiddleware(h.InfoHandler)).Methods("GET")
	r.HandleFunc("/api/tracks", h.JWTMiddleware(h.TracksHandler)).Methods("GET")
	r.HandleFunc("/api/buy/{id}", h.JWTMiddleware(h.BuyHandler)).Methods("POST")
	r.HandleFunc("/api/download/{token}", h.JWTMiddleware(h.DownloadHandler)).Methods("GET")
	r.HandleFunc("/api/download/{token}/preview", h.JWTMiddleware(h.PreviewHandler)).Methods("GET")
	r.HandleFunc("/api/bonus", h.JWTMiddleware(h.BonusHandler)).Methods("POST")
	r.HandleFunc("/api/requests", h.JWTMiddleware(h.RequestsListHandler)).Methods("GET")
	r.HandleFunc("/api/requests", h.JWTMiddleware(h.CreateRequestHandler)).Methods("POST")
	r.HandleFunc("/api/requests/{id}/vote", h.JWTMiddleware(h.VoteHandler)).Methods("POST")
	r.HandleFunc("/api/requests/{id}/vote", h.JWTMiddleware(h.UnvoteHandler)).Methods("DELETE")
	r.HandleFunc("/api/notifications", h.JWTMiddleware(h.NotificationsHandler)).Methods("GET")
	r.HandleFunc("/api/notifications/{id}/seen", h.JWTMiddleware(h.NotificationSeenHandler)).Methods("POST")
	r.HandleFunc("/api/admin/recharge", h.JWTMiddleware(h.AdminMiddleware(h.RechargeHandler))).Methods("POST")
	r.HandleFunc("/api/admin/requests/{id}/approve", h.JWTMiddleware(h.AdminMiddleware(h.ApproveHandler))).Methods("POST")
	r.HandleFunc("/api/admin/requests/{id}/reject", h.JWTMiddleware(h.AdminMiddleware(h.RejectHandler))).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	srv := http.Server{
		Handler:      r,
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Info().Str("port", cfg.ServerPort).Msg("Сервер запущен")
	if err := srv.ListenAndServe(); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("Сервер остановлен")
	}
}
