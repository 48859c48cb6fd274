package api

import (
	"net/http"

	"github.com/stsysd/dpsapi/model"
)

// ProjectRequest はプロジェクトの作成・更新のリクエストボディです。
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateProjectResponse はプロジェクト作成時のレスポンスです。
type CreateProjectResponse struct {
	Message     string   `json:"message"`
	ID          model.ID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// ListProjectsResponse はプロジェクト一覧取得のレスポンスです。
type ListProjectsResponse struct {
	Projects []*model.Project `json:"projects"`
}

// GetProjectResponse はプロジェクト取得のレスポンスです。
type GetProjectResponse struct {
	Project *model.Project `json:"project"`
}

// projectIDFromPath はパスの{id}をプロジェクトIDとして解釈します。
func projectIDFromPath(r *http.Request) (model.ID, error) {
	return model.ParseID("Project ID", r.PathValue("id"))
}

// handleListProjects はプロジェクト一覧取得をハンドリングします。
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Error fetching projects")
		return
	}

	// 空配列を返すためにnilチェック
	if projects == nil {
		projects = []*model.Project{}
	}
	s.writeJSON(w, http.StatusOK, ListProjectsResponse{Projects: projects})
}

// handleCreateProject はプロジェクト作成をハンドリングします。
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "Error creating project")
		return
	}

	// プロジェクトの作成
	project, err := model.NewProject(req.Name, req.Description)
	if err != nil {
		s.writeError(w, r, err, "Error creating project")
		return
	}

	// データベースに保存
	if err := s.store.CreateProject(r.Context(), project); err != nil {
		s.writeError(w, r, err, "Error creating project")
		return
	}

	s.writeJSON(w, http.StatusCreated, CreateProjectResponse{
		Message:     "Project created successfully in the Database",
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	})
}

// handleGetProject はプロジェクト取得をハンドリングします。
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error fetching project")
		return
	}

	project, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "Error fetching project")
		return
	}

	s.writeJSON(w, http.StatusOK, GetProjectResponse{Project: project})
}

// handleUpdateProject はプロジェクト更新をハンドリングします。PUTとPATCHの両方で使われます。
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error updating project")
		return
	}

	var req ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "Error updating project")
		return
	}

	// 名前と説明はどちらも必須
	project := &model.Project{ID: id, Name: req.Name, Description: req.Description}
	if err := project.Validate(); err != nil {
		s.writeError(w, r, err, "Error updating project")
		return
	}

	if err := s.store.UpdateProject(r.Context(), project); err != nil {
		s.writeError(w, r, err, "Error updating project")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Project updated successfully"})
}

// handleDeleteProject はプロジェクト削除をハンドリングします。
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		s.writeError(w, r, err, "Error deleting project")
		return
	}

	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		s.writeError(w, r, err, "Error deleting project")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
