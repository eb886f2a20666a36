package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок идентификатора запроса, пробрасывается в ответ
const RequestIDHeader = "X-Request-Id"

type (
	// берём структуру для хранения сведений об ответе
	ResponseData struct {
		status int
		size   int
	}

	// добавляем реализацию http.ResponseWriter
	LoggingResponseWriter struct {
		http.ResponseWriter // встраиваем оригинальный http.ResponseWriter
		responseData        *ResponseData
	}
)

func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	// записываем ответ, используя оригинальный http.ResponseWriter
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size // захватываем размер
	return size, err
}

func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	// записываем код статуса, используя оригинальный http.ResponseWriter
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode // захватываем код статуса
}

// Status - код ответа, 200 если обработчик не вызывал WriteHeader
func (r *ResponseData) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// LogHandle - middleware-логер для входящих HTTP-запросов.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		responseData := &ResponseData{
			status: 0,
			size:   0,
		}
		lw := LoggingResponseWriter{
			ResponseWriter: w, // встраиваем оригинальный http.ResponseWriter
			responseData:   responseData,
		}

		h.ServeHTTP(&lw, r)

		duration := time.Since(start)

		logger.Infow("got incoming HTTP request",
			"request_id", requestID,
			"uri", r.RequestURI,
			"method", r.Method,
			"status", responseData.Status(),
			"duration", duration,
			"size", responseData.size,
		)
	})
}
