package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/dpsapi/model"
)

func TestCreateAndGetReport(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	project := createTestProject(t, store, "Alpha")
	report := createTestReport(t, store, "hi", project.ID)
	if report.ID != 1 {
		t.Errorf("Expected first report ID 1, got %d", report.ID)
	}

	got, err := store.GetReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}
	if diff := cmp.Diff(report, got); diff != "" {
		t.Errorf("GetReport mismatch (-want +got):\n%s", diff)
	}
}

// TestCreateReportProjectNotFound は存在しないプロジェクトを参照した場合に保存されないことを確認します。
func TestCreateReportProjectNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	report, err := model.NewReport("hi", 7)
	if err != nil {
		t.Fatalf("Failed to create report model: %v", err)
	}

	err = store.CreateReport(ctx, report)
	if !errors.Is(err, model.ErrProjectNotFound) {
		t.Fatalf("Expected ErrProjectNotFound, got %v", err)
	}

	reports, err := store.ListReports(ctx)
	if err != nil {
		t.Fatalf("Failed to list reports: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("Expected no reports persisted, got %d", len(reports))
	}
}

func TestGetReportNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetReport(context.Background(), 1)
	if !errors.Is(err, model.ErrReportNotFound) {
		t.Errorf("Expected ErrReportNotFound, got %v", err)
	}
}

func TestListReportsByProject(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alpha := createTestProject(t, store, "Alpha")
	beta := createTestProject(t, store, "Beta")
	empty := createTestProject(t, store, "Empty")

	r1 := createTestReport(t, store, "one", alpha.ID)
	createTestReport(t, store, "two", beta.ID)
	r3 := createTestReport(t, store, "three", alpha.ID)

	reports, err := store.ListReportsByProject(ctx, alpha.ID)
	if err != nil {
		t.Fatalf("Failed to list reports: %v", err)
	}
	if diff := cmp.Diff([]*model.Report{r1, r3}, reports); diff != "" {
		t.Errorf("ListReportsByProject mismatch (-want +got):\n%s", diff)
	}
	for _, r := range reports {
		if r.ProjectID.ID() != alpha.ID {
			t.Errorf("Expected project_id %d, got %d", alpha.ID, r.ProjectID.ID())
		}
	}

	// レポートが無いプロジェクトはNotFound
	_, err = store.ListReportsByProject(ctx, empty.ID)
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if notFound.Error() != "No reports found for 3 project ID" {
		t.Errorf("Unexpected message: %s", notFound.Error())
	}
}

func TestUpdateReport(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alpha := createTestProject(t, store, "Alpha")
	beta := createTestProject(t, store, "Beta")
	report := createTestReport(t, store, "original", alpha.ID)

	text := "x"
	betaID := beta.ID
	missing := model.ID(99)

	// textのみの更新はproject_idを変更しない
	if err := store.UpdateReport(ctx, report.ID, model.ReportPatch{Text: &text}); err != nil {
		t.Fatalf("Failed to update text: %v", err)
	}
	got, err := store.GetReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}
	want := &model.Report{ID: report.ID, Text: "x", ProjectID: model.ProjectRef(alpha.ID)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text update mismatch (-want +got):\n%s", diff)
	}

	// project_idのみの更新はtextを変更しない
	if err := store.UpdateReport(ctx, report.ID, model.ReportPatch{ProjectID: &betaID}); err != nil {
		t.Fatalf("Failed to update project_id: %v", err)
	}
	got, err = store.GetReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}
	want.ProjectID = model.ProjectRef(beta.ID)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("project update mismatch (-want +got):\n%s", diff)
	}

	// 両方の更新
	both := "both"
	alphaID := alpha.ID
	if err := store.UpdateReport(ctx, report.ID, model.ReportPatch{Text: &both, ProjectID: &alphaID}); err != nil {
		t.Fatalf("Failed to update both: %v", err)
	}
	got, err = store.GetReport(ctx, report.ID)
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}
	want = &model.Report{ID: report.ID, Text: "both", ProjectID: model.ProjectRef(alpha.ID)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("full update mismatch (-want +got):\n%s", diff)
	}

	// フィールド未指定はValidationError
	err = store.UpdateReport(ctx, report.ID, model.ReportPatch{})
	var validationErr *model.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %v", err)
	}

	// 存在しないプロジェクトへの付け替えはNotFound
	err = store.UpdateReport(ctx, report.ID, model.ReportPatch{ProjectID: &missing})
	if !errors.Is(err, model.ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}

	// 存在しないレポート
	err = store.UpdateReport(ctx, 99, model.ReportPatch{Text: &text})
	if !errors.Is(err, model.ErrReportNotFound) {
		t.Errorf("Expected ErrReportNotFound, got %v", err)
	}
}

func TestDeleteReport(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	project := createTestProject(t, store, "Alpha")
	report := createTestReport(t, store, "hi", project.ID)

	if err := store.DeleteReport(ctx, report.ID); err != nil {
		t.Fatalf("Failed to delete report: %v", err)
	}

	// 削除済みのIDはNotFound
	if err := store.DeleteReport(ctx, report.ID); !errors.Is(err, model.ErrReportNotFound) {
		t.Errorf("Expected ErrReportNotFound on second delete, got %v", err)
	}

	if err := store.DeleteReport(ctx, 0); err == nil {
		t.Error("Expected error for missing id")
	}
}

func TestRepeatedWordReports(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	project := createTestProject(t, store, "Alpha")
	r1 := createTestReport(t, store, "a a a b b", project.ID)
	createTestReport(t, store, "a b c", project.ID)

	got, err := store.RepeatedWordReports(ctx)
	if err != nil {
		t.Fatalf("RepeatedWordReports failed: %v", err)
	}
	want := []*model.RepeatedWordReport{
		{ID: r1.ID, Text: "a a a b b", RepeatedWords: []string{"a"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RepeatedWordReports mismatch (-want +got):\n%s", diff)
	}
}

// TestGetReportRejectsInvalidRow は不正な行を読み込んだ場合に内部エラーになることを確認します。
func TestGetReportRejectsInvalidRow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	project := createTestProject(t, store, "Alpha")

	if _, err := store.conn.ExecContext(ctx, "INSERT INTO reports (id, text, project_id) VALUES (3, '', ?)", int64(project.ID)); err != nil {
		t.Fatalf("Failed to seed report: %v", err)
	}

	var internalErr *model.InternalError
	if _, err := store.GetReport(ctx, 3); !errors.As(err, &internalErr) {
		t.Errorf("Expected InternalError from GetReport, got %v", err)
	}
	if _, err := store.ListReportsByProject(ctx, project.ID); !errors.As(err, &internalErr) {
		t.Errorf("Expected InternalError from ListReportsByProject, got %v", err)
	}
}
