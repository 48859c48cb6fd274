package api

import "net/http"

// handleRoot はAPIの名前とバージョンを返します。
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"name":    "dpsapi",
		"version": s.config.Version,
	})
}

// handlePing はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "pong"})
}
