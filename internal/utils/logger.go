package utils

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é o logger global da aplicação.
var Logger zerolog.Logger

// InitLogger configura o logger global. APP_DEBUG=true habilita nível
// debug e saída de console legível.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339

	if os.Getenv("APP_DEBUG") == "true" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		Logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
		return
	}
	Logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger registra método, rota, status e duração de cada
// requisição. Usar como middleware do mux.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		evento := Logger.Info()
		if rec.status >= 400 {
			evento = Logger.Error()
		}
		evento.
			Str("metodo", r.Method).
			Str("rota", r.URL.Path).
			Int("status", rec.status).
			Dur("duracao", time.Since(inicio)).
			Msg("requisição")
	})
}
