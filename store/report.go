package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stsysd/dpsapi/db"
	"github.com/stsysd/dpsapi/model"
)

// CreateReport は新しいレポートをデータベースに保存します。
// プロジェクトの存在確認・採番・挿入を一つのトランザクションで行います。
func (s *SQLiteStore) CreateReport(ctx context.Context, report *model.Report) error {
	// バリデーション
	if err := report.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		// プロジェクトの存在確認（アプリケーションレベルでの整合性チェック）
		projectID := report.ProjectID.ID()
		exists, err := projectExists(ctx, q, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return model.NewProjectNotFound(projectID)
		}

		id, err := nextID(q.NextReportID(ctx))
		if err != nil {
			return err
		}

		err = q.CreateReport(ctx, db.CreateReportParams{
			ID:        int64(id),
			Text:      report.Text,
			ProjectID: int64(projectID),
		})
		if err != nil {
			return model.NewInternalError("failed to create report", err)
		}

		report.ID = id
		return nil
	})
}

// ListReports はすべてのレポートを取得します。
func (s *SQLiteStore) ListReports(ctx context.Context) ([]*model.Report, error) {
	dbReports, err := s.queries.ListReports(ctx)
	if err != nil {
		return nil, model.NewInternalError("failed to list reports", err)
	}
	return toReports(dbReports)
}

// GetReport は指定されたIDのレポートを取得します。
func (s *SQLiteStore) GetReport(ctx context.Context, id model.ID) (*model.Report, error) {
	dbReport, err := s.queries.GetReport(ctx, int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewReportNotFound(id)
	}
	if err != nil {
		return nil, model.NewInternalError("failed to get report", err)
	}
	return toReport(dbReport)
}

// ListReportsByProject はプロジェクトに紐づくレポートを取得します。
// 1件もない場合は NotFoundError を返します。
func (s *SQLiteStore) ListReportsByProject(ctx context.Context, projectID model.ID) ([]*model.Report, error) {
	dbReports, err := s.queries.ListReportsByProject(ctx, int64(projectID))
	if err != nil {
		return nil, model.NewInternalError("failed to list reports", err)
	}
	if len(dbReports) == 0 {
		return nil, model.NewNoReportsForProject(projectID)
	}
	return toReports(dbReports)
}

// UpdateReport は指定されたIDのレポートを部分更新します。
// project_id が指定された場合は存在確認と更新を同じトランザクションで行います。
func (s *SQLiteStore) UpdateReport(ctx context.Context, id model.ID, patch model.ReportPatch) error {
	if !id.IsValid() {
		return model.NewValidationError("Report ID is required")
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	return s.withTx(ctx, func(q *db.Queries) error {
		if patch.ProjectID != nil {
			exists, err := projectExists(ctx, q, *patch.ProjectID)
			if err != nil {
				return err
			}
			if !exists {
				return model.NewProjectNotFound(*patch.ProjectID)
			}
		}

		// 指定されたカラムのみ更新する
		var (
			result sql.Result
			err    error
		)
		switch {
		case patch.Text != nil && patch.ProjectID != nil:
			result, err = q.UpdateReport(ctx, db.UpdateReportParams{
				Text:      *patch.Text,
				ProjectID: int64(*patch.ProjectID),
				ID:        int64(id),
			})
		case patch.Text != nil:
			result, err = q.UpdateReportText(ctx, db.UpdateReportTextParams{
				Text: *patch.Text,
				ID:   int64(id),
			})
		default:
			result, err = q.UpdateReportProject(ctx, db.UpdateReportProjectParams{
				ProjectID: int64(*patch.ProjectID),
				ID:        int64(id),
			})
		}
		if err != nil {
			return model.NewInternalError("failed to update report", err)
		}

		return affectedOrNotFound(result, model.NewReportNotFound(id))
	})
}

// DeleteReport は指定されたIDのレポートを削除します。
func (s *SQLiteStore) DeleteReport(ctx context.Context, id model.ID) error {
	if !id.IsValid() {
		return model.NewValidationError("Report ID is required")
	}

	result, err := s.queries.DeleteReport(ctx, int64(id))
	if err != nil {
		return model.NewInternalError("failed to delete report", err)
	}
	return affectedOrNotFound(result, model.NewReportNotFound(id))
}

// RepeatedWordReports はすべてのレポートを読み込み、同じ単語を3回以上含むものを返します。
func (s *SQLiteStore) RepeatedWordReports(ctx context.Context) ([]*model.RepeatedWordReport, error) {
	reports, err := s.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	return model.FindRepeatedWordReports(reports), nil
}

// toReport はDBの行を検証したうえでモデルに変換します。
func toReport(r db.Report) (*model.Report, error) {
	report, err := model.LoadReport(model.ID(r.ID), r.Text, model.ID(r.ProjectID))
	if err != nil {
		return nil, model.NewInternalError("invalid report row", err)
	}
	return report, nil
}

func toReports(rs []db.Report) ([]*model.Report, error) {
	reports := make([]*model.Report, 0, len(rs))
	for _, r := range rs {
		report, err := toReport(r)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
