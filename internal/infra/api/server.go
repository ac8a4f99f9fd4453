package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"
	"github.com/dvvvvv411/vic-automation-sub001/internal/usecase"
)

const (
	SMSPath      = "/functions/v1/send-sms"
	TelegramPath = "/functions/v1/send-telegram"
)

// Server wires the dispatch endpoints to their use cases.
type Server struct {
	smsUC          usecase.SMSUseCase
	broadcastUC    usecase.BroadcastUseCase
	guard          *BearerGuard
	allowedHeaders []string
	log            *zerolog.Logger
}

func NewServer(
	smsUC usecase.SMSUseCase,
	broadcastUC usecase.BroadcastUseCase,
	guard *BearerGuard,
	allowedHeaders []string,
	logger *zerolog.Logger,
) *Server {
	compLog := logger.With().Str("component", "DispatchAPI").Logger()
	if guard == nil {
		guard = NewBearerGuard("", &compLog)
	}
	return &Server{
		smsUC:          smsUC,
		broadcastUC:    broadcastUC,
		guard:          guard,
		allowedHeaders: allowedHeaders,
		log:            &compLog,
	}
}

// Router builds the chi router with every route the service exposes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(Recover(s.log), TraceID(), RequestLog(s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(CORS(s.allowedHeaders))
		r.Options(SMSPath, preflight)
		r.Options(TelegramPath, preflight)

		r.Group(func(r chi.Router) {
			r.Use(s.guard.Middleware())
			r.Post(SMSPath, s.handleSendSMS)
			r.Post(TelegramPath, s.handleSendTelegram)
		})
	})
	return r
}
