// Package store は、データの永続化機能を提供します。
package store

import (
	"context"

	"github.com/stsysd/dpsapi/model"
)

// ProjectStore はプロジェクトの保存と取得を行うインターフェースです。
type ProjectStore interface {
	// CreateProject は新しいプロジェクトを作成し、採番したIDを設定します。
	CreateProject(ctx context.Context, project *model.Project) error
	// ListProjects はすべてのプロジェクトを取得します。
	ListProjects(ctx context.Context) ([]*model.Project, error)
	// GetProject は指定されたIDのプロジェクトを取得します。
	GetProject(ctx context.Context, id model.ID) (*model.Project, error)
	// UpdateProject は名前と説明を更新します。
	UpdateProject(ctx context.Context, project *model.Project) error
	// DeleteProject はプロジェクトを削除します。紐づくレポートも削除されます。
	DeleteProject(ctx context.Context, id model.ID) error
}

// ReportStore はレポートの保存と取得を行うインターフェースです。
type ReportStore interface {
	// CreateReport は参照先プロジェクトを確認したうえでレポートを作成します。
	CreateReport(ctx context.Context, report *model.Report) error
	// ListReports はすべてのレポートを取得します。
	ListReports(ctx context.Context) ([]*model.Report, error)
	// GetReport は指定されたIDのレポートを取得します。
	GetReport(ctx context.Context, id model.ID) (*model.Report, error)
	// ListReportsByProject はプロジェクトに紐づくレポートを取得します。0件の場合はNotFoundErrorです。
	ListReportsByProject(ctx context.Context, projectID model.ID) ([]*model.Report, error)
	// UpdateReport は指定されたフィールドのみ更新します。
	UpdateReport(ctx context.Context, id model.ID, patch model.ReportPatch) error
	// DeleteReport はレポートを削除します。
	DeleteReport(ctx context.Context, id model.ID) error
	// RepeatedWordReports は同じ単語を3回以上含むレポートを返します。
	RepeatedWordReports(ctx context.Context) ([]*model.RepeatedWordReport, error)
}

// Store はAPIサーバーが利用するストアの全体です。
type Store interface {
	ProjectStore
	ReportStore
	// Close はストアの接続を閉じます。
	Close() error
}
