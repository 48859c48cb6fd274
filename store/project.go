package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stsysd/dpsapi/db"
	"github.com/stsysd/dpsapi/model"
)

// CreateProject は新しいプロジェクトをデータベースに保存します。
// IDは既存の最大値+1（0件なら1）で採番し、採番と挿入は同じトランザクションで行います。
func (s *SQLiteStore) CreateProject(ctx context.Context, project *model.Project) error {
	// バリデーション
	if err := project.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		id, err := nextID(q.NextProjectID(ctx))
		if err != nil {
			return err
		}

		err = q.CreateProject(ctx, db.CreateProjectParams{
			ID:          int64(id),
			Name:        project.Name,
			Description: project.Description,
		})
		if err != nil {
			return model.NewInternalError("failed to create project", err)
		}

		project.ID = id
		return nil
	})
}

// ListProjects はすべてのプロジェクトを取得します。
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*model.Project, error) {
	dbProjects, err := s.queries.ListProjects(ctx)
	if err != nil {
		return nil, model.NewInternalError("failed to list projects", err)
	}

	// 結果の変換
	projects := make([]*model.Project, 0, len(dbProjects))
	for _, dbProject := range dbProjects {
		project, err := toProject(dbProject)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// GetProject は指定されたIDのプロジェクトを取得します。
func (s *SQLiteStore) GetProject(ctx context.Context, id model.ID) (*model.Project, error) {
	dbProject, err := s.queries.GetProject(ctx, int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewProjectNotFound(id)
	}
	if err != nil {
		return nil, model.NewInternalError("failed to get project", err)
	}
	return toProject(dbProject)
}

// UpdateProject は指定されたプロジェクトの名前と説明を更新します。
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *model.Project) error {
	if !project.ID.IsValid() {
		return model.NewValidationError("Project ID is required")
	}
	if err := project.Validate(); err != nil {
		return err
	}

	result, err := s.queries.UpdateProject(ctx, db.UpdateProjectParams{
		Name:        project.Name,
		Description: project.Description,
		ID:          int64(project.ID),
	})
	if err != nil {
		return model.NewInternalError("failed to update project", err)
	}

	// 更新された行数を確認
	return affectedOrNotFound(result, model.NewProjectNotFound(project.ID))
}

// DeleteProject は指定されたプロジェクトを削除します。
// reports.project_id の外部キー（ON DELETE CASCADE）により紐づくレポートも削除されます。
func (s *SQLiteStore) DeleteProject(ctx context.Context, id model.ID) error {
	if !id.IsValid() {
		return model.NewValidationError("Project ID is required")
	}

	result, err := s.queries.DeleteProject(ctx, int64(id))
	if err != nil {
		return model.NewInternalError("failed to delete project", err)
	}
	return affectedOrNotFound(result, model.NewProjectNotFound(id))
}

// projectExists はトランザクション内で参照先プロジェクトの存在を確認します。
func projectExists(ctx context.Context, q *db.Queries, id model.ID) (bool, error) {
	found, err := q.ProjectExists(ctx, int64(id))
	if err != nil {
		return false, model.NewInternalError("failed to check project", err)
	}
	return found != 0, nil
}

// toProject はDBの行を検証したうえでモデルに変換します。
func toProject(p db.Project) (*model.Project, error) {
	project, err := model.LoadProject(model.ID(p.ID), p.Name, p.Description)
	if err != nil {
		return nil, model.NewInternalError("invalid project row", err)
	}
	return project, nil
}
