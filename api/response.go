package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stsysd/dpsapi/metrics"
	"github.com/stsysd/dpsapi/model"
	"go.uber.org/zap"
)

// maxBodyBytes はリクエストボディの上限です。
const maxBodyBytes = 1 << 20

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse は更新・削除成功時のレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON はJSON形式でレスポンスを返却します。
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func (s *Server) writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	s.writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// writeError はエラーの種類に応じたステータスコードでレスポンスを返します。
// 想定外のエラーは action（例: "Error creating project"）と詳細を500で返します。
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var (
		internalErr   *model.InternalError
		validationErr *model.ValidationError
		notFoundErr   *model.NotFoundError
	)
	// InternalErrorは原因がValidationErrorでも500として扱う
	isInternal := errors.As(err, &internalErr)
	switch {
	case !isInternal && errors.As(err, &validationErr):
		metrics.IncrementErrorResponse("validation")
		s.writeJSONError(w, validationErr.Message, http.StatusBadRequest)
	case !isInternal && errors.As(err, &notFoundErr):
		metrics.IncrementErrorResponse("not_found")
		s.writeJSONError(w, notFoundErr.Error(), http.StatusNotFound)
	default:
		metrics.IncrementErrorResponse("internal")
		s.logger.Error(action,
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   action,
			Details: err.Error(),
		})
	}
}

// decodeJSON はリクエストボディをvにデコードします。
// 空のボディは空オブジェクトとして扱い、必須項目のチェックに委ねます。
// 1つのJSON値の後に続くデータは不正なJSONとして扱います。
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		var extra json.RawMessage
		err = dec.Decode(&extra)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			return model.NewValidationError("Invalid JSON format")
		}
	}
	return decodeError(err)
}

// decodeError はデコード時のエラーをValidationErrorに変換します。
func decodeError(err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return model.NewValidationError("Request body too large")
	}
	return model.NewValidationError("Invalid JSON format")
}
