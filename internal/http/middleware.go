package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"notify-digest/internal/shared/loggers"
	"notify-digest/internal/shared/svcerrors"
	"notify-digest/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwObserve)
	router.Use(mwRecoverer)
}

// mwRequestID reuses the caller's x-request-id or mints a ULID, echoes it on the response and
// attaches a request-scoped logger to the context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwObserve records metrics and writes the completion log once the handler returns.
// Metrics are labelled by route pattern, never the raw path.
func mwObserve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)

		route := routePattern(r)
		status, errorCode, accepted := http.StatusOK, "", 0
		if appWriter := asAppResponseWriter(w); appWriter != nil {
			status = appWriter.StatusOrOK()
			errorCode = appWriter.ErrorCode()
			accepted = appWriter.AcceptedEvents()
		}

		metricRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status), errorCode).Inc()
		metricRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		if accepted > 0 {
			metricEventsPerRequest.WithLabelValues(route).Observe(float64(accepted))
		}

		logger := loggers.Ctx(r.Context())
		event := logger.WithLevel(completionLevel(status)).
			Str(loggers.FieldHttpMethod, r.Method).
			Str(loggers.FieldHttpPath, r.URL.Path).
			Int(loggers.FieldHttpStatus, status).
			Int64(loggers.FieldDuration, elapsed.Milliseconds())
		if errorCode != "" {
			event = event.Str(loggers.FieldErrorCode, errorCode)
		}
		if accepted > 0 {
			event = event.Int(loggers.FieldEventCount, accepted)
		}
		event.Msg("request completed")
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func completionLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// mwRecoverer turns a handler panic into a SYS_9000 response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}
