package bot

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/letsssgooo/sikenBot/internal/slack"
)

// Server принимает webhook'и Slack: события Events API и интерактивные callback'и.
type Server struct {
	bot    *Bot
	router *mux.Router
}

// NewServer создаёт новый Server.
func NewServer(bot *Bot) *Server {
	s := &Server{
		bot:    bot,
		router: mux.NewRouter(),
	}

	s.router.HandleFunc("/slack/events", s.handleEvents).Methods(http.MethodPost)
	s.router.HandleFunc("/slack/actions", s.handleActions).Methods(http.MethodPost)

	return s
}

// ServeHTTP реализует http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run запускает HTTP сервер на addr.
func (s *Server) Run(addr string) error {
	slog.Info("webhook server listening", "addr", addr)

	return http.ListenAndServe(addr, s.router)
}

// handleEvents обрабатывает события Events API.
// Диспетчеризация выполняется в отдельной горутине: Slack ждёт быстрый ответ,
// а загрузка страниц может занять время.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var ev slack.EventCallback
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid event body", http.StatusBadRequest)
		return
	}

	if ev.Type == "url_verification" {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(ev.Challenge))
		return
	}

	go s.bot.HandleEvent(context.Background(), &ev)

	w.WriteHeader(http.StatusOK)
}

// handleActions обрабатывает интерактивные callback'и.
// Ошибка обработки не возвращается платформе: пользователю никогда не
// показывается сообщение об ошибке, сбой остаётся строчкой в логе.
func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("payload")
	if raw == "" {
		http.Error(w, "missing payload", http.StatusBadRequest)
		return
	}

	var payload slack.ActionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := s.bot.HandleAction(r.Context(), &payload); err != nil {
		slog.Error("could not handle action", "callback_id", payload.CallbackID, "err", err)
	}

	w.WriteHeader(http.StatusOK)
}
