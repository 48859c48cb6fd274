package api

import (
	"net/http"

	"github.com/stsysd/dpsapi/model"
)

// CreateReportRequest はレポート作成のリクエストボディです。
// project_id は数値と文字列のどちらでも受け付けます。
type CreateReportRequest struct {
	Text      string           `json:"text"`
	ProjectID model.ProjectRef `json:"project_id"`
}

// UpdateReportRequest はレポートの部分更新のリクエストボディです。
type UpdateReportRequest struct {
	Text      *string           `json:"text"`
	ProjectID *model.ProjectRef `json:"project_id"`
}

// Patch はリクエストをストア向けの部分更新に変換します。
func (req UpdateReportRequest) Patch() model.ReportPatch {
	patch := model.ReportPatch{Text: req.Text}
	if req.ProjectID != nil {
		id := req.ProjectID.ID()
		patch.ProjectID = &id
	}
	return patch
}

// CreateReportResponse はレポート作成時のレスポンスです。
type CreateReportResponse struct {
	Message   string           `json:"message"`
	ID        model.ID         `json:"id"`
	Text      string           `json:"text"`
	ProjectID model.ProjectRef `json:"project_id"`
}

// ListReportsResponse はレポート一覧取得のレスポンスです。
type ListReportsResponse struct {
	Reports []*model.Report `json:"reports"`
}

// GetReportResponse はレポート取得のレスポンスです。
type GetReportResponse struct {
	Report *model.Report `json:"report"`
}

func reportIDFromPath(r *http.Request) (model.ID, error) {
	return model.ParseID("Report ID", r.PathValue("id"))
}

// handleCreateReport はレポート作成エンドポイントのハンドラーです。
func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "Error creating report")
		return
	}

	report, err := model.NewReport(req.Text, req.ProjectID.ID())
	if err != nil {
		s.writeError(w, r, err, "Error creating report")
		return
	}

	// プロジェクトの存在確認はストアが保存と同じトランザクションで行う
	if err := s.store.CreateReport(r.Context(), report); err != nil {
		s.writeError(w, r, err, "Error creating report")
		return
	}

	s.writeJSON(w, http.StatusCreated, CreateReportResponse{
		Message:   "Report created successfully in the Database",
		ID:        report.ID,
		Text:      report.Text,
		ProjectID: report.ProjectID,
	})
}

// handleListReports はレポート一覧取得のハンドラーです。
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.ListReports(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Error fetching Reports")
		return
	}
	if reports == nil {
		reports = []*model.Report{}
	}
	s.writeJSON(w, http.StatusOK, ListReportsResponse{Reports: reports})
}

// handleGetReport は特定のIDのレポートを取得するハンドラーです。
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error fetching report")
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "Error fetching report")
		return
	}

	s.writeJSON(w, http.StatusOK, GetReportResponse{Report: report})
}

// handleListReportsByProject はプロジェクトに紐づくレポート一覧のハンドラーです。
func (s *Server) handleListReportsByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := model.ParseID("Project ID", r.PathValue("project_id"))
	if err != nil {
		s.writeError(w, r, err, "Error fetching reports")
		return
	}

	reports, err := s.store.ListReportsByProject(r.Context(), projectID)
	if err != nil {
		s.writeError(w, r, err, "Error fetching reports")
		return
	}

	s.writeJSON(w, http.StatusOK, ListReportsResponse{Reports: reports})
}

// handleUpdateReport は特定のIDのレポートを部分更新するハンドラーです。
func (s *Server) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error updating report")
		return
	}

	var req UpdateReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "Error updating report")
		return
	}

	patch := req.Patch()
	if err := patch.Validate(); err != nil {
		s.writeError(w, r, err, "Error updating report")
		return
	}

	if err := s.store.UpdateReport(r.Context(), id, patch); err != nil {
		s.writeError(w, r, err, "Error updating report")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Report updated successfully"})
}

// handleDeleteReport は特定のIDのレポートを削除するハンドラーです。
func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error deleting report")
		return
	}

	if err := s.store.DeleteReport(r.Context(), id); err != nil {
		s.writeError(w, r, err, "Error deleting report")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Report deleted successfully"})
}

// handleRepeatedWordReports は同じ単語を3回以上含むレポートを返すハンドラーです。
func (s *Server) handleRepeatedWordReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.RepeatedWordReports(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Error fetching repeated word reports")
		return
	}
	if reports == nil {
		reports = []*model.RepeatedWordReport{}
	}
	s.writeJSON(w, http.StatusOK, reports)
}
