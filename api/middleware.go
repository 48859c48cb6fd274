package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stsysd/dpsapi/metrics"
	"go.uber.org/zap"
)

// RequestIDHeader はリクエストIDを受け渡すヘッダー名です。
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// requestIDFromContext はコンテキストに保存されたリクエストIDを返します。
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// authMiddleware はAuthorizationヘッダーの固定トークンを検証するミドルウェアです。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")

		// ヘッダーが無い場合
		if token == "" {
			metrics.IncrementErrorResponse("auth")
			s.writeJSONError(w, "Auth Header Token Required", http.StatusUnauthorized)
			return
		}

		// トークンが一致するか確認
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.config.AuthToken)) != 1 {
			metrics.IncrementErrorResponse("auth")
			s.writeJSONError(w, "Unauthorized access, check Token", http.StatusUnauthorized)
			return
		}

		// 認証成功：次のハンドラーを呼び出し
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware はリクエストIDを付与します。クライアントが指定した値はそのまま使います。
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// statusRecorder はステータスコードを記録するためのResponseWriterです。
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

// Unwrap は http.ResponseController 向けに元のResponseWriterを返します。
func (sr *statusRecorder) Unwrap() http.ResponseWriter { return sr.ResponseWriter }

// accessLogMiddleware はリクエストごとにアクセスログと処理時間のメトリクスを記録します。
func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sr, r)
		elapsed := time.Since(start)

		// ルーティングされたパターンをラベルにしてカーディナリティを抑える
		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(r.Method, pattern, strconv.Itoa(sr.statusCode), elapsed)

		s.logger.Info("request",
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sr.statusCode),
			zap.Duration("duration", elapsed),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}

// jsonErrorWriter はServeMuxがプレーンテキストで返す404/405をJSONに置き換えます。
type jsonErrorWriter struct {
	http.ResponseWriter
	replaced bool
}

func (jw *jsonErrorWriter) WriteHeader(code int) {
	// ハンドラーは必ずapplication/jsonを設定するため、text/plainはServeMux自身の応答
	if (code == http.StatusNotFound || code == http.StatusMethodNotAllowed) &&
		strings.HasPrefix(jw.Header().Get("Content-Type"), "text/plain") {
		jw.replaced = true
		metrics.IncrementErrorResponse("route")
		jw.Header().Set("Content-Type", "application/json")
		jw.ResponseWriter.WriteHeader(code)
		json.NewEncoder(jw.ResponseWriter).Encode(ErrorResponse{Error: http.StatusText(code)})
		return
	}
	jw.ResponseWriter.WriteHeader(code)
}

func (jw *jsonErrorWriter) Write(b []byte) (int, error) {
	if jw.replaced {
		return len(b), nil
	}
	return jw.ResponseWriter.Write(b)
}

func (jw *jsonErrorWriter) Unwrap() http.ResponseWriter { return jw.ResponseWriter }

// jsonErrorMiddleware はルートが見つからない場合もJSONで応答させます。
func (s *Server) jsonErrorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&jsonErrorWriter{ResponseWriter: w}, r)
	})
}
