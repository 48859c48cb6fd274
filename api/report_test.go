package api

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/dpsapi/model"
)

// newServerWithProject はプロジェクトを1件作成済みのサーバーを返します。
func newServerWithProject(t *testing.T) (*Server, *MockStore) {
	t.Helper()
	mockStore := NewMockStore()
	server := NewServer(mockStore, newTestConfig(), nil)
	rec := doRequest(t, server, http.MethodPost, "/project", ProjectRequest{Name: "Alpha", Description: "d"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to create project: %d", rec.Code)
	}
	return server, mockStore
}

func TestCreateReport(t *testing.T) {
	server, _ := newServerWithProject(t)

	// project_id は文字列でも数値でも受け付ける
	for i, body := range []string{
		`{"text":"hi","project_id":"1"}`,
		`{"text":"hello","project_id":1}`,
	} {
		rec := doRequest(t, server, http.MethodPost, "/report", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp map[string]any
		decodeBody(t, rec, &resp)
		if resp["id"] != float64(i+1) {
			t.Errorf("Expected id %d, got %v", i+1, resp["id"])
		}
		if resp["project_id"] != "1" {
			t.Errorf("Expected project_id \"1\", got %#v", resp["project_id"])
		}
		if resp["message"] != "Report created successfully in the Database" {
			t.Errorf("Unexpected message: %v", resp["message"])
		}
	}
}

func TestCreateReportErrors(t *testing.T) {
	server, mockStore := newServerWithProject(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"missing text", `{"project_id":"1"}`, http.StatusBadRequest, "Text and Project ID are required"},
		{"missing project", `{"text":"hi"}`, http.StatusBadRequest, "Text and Project ID are required"},
		{"non numeric project", `{"text":"hi","project_id":"abc"}`, http.StatusBadRequest, `invalid id "abc"`},
		{"unknown project", `{"text":"hi","project_id":"7"}`, http.StatusNotFound, "Project with id = 7 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, http.MethodPost, "/report", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp ErrorResponse
			decodeBody(t, rec, &resp)
			if resp.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, resp.Error)
			}
		})
	}

	// 失敗したリクエストでは何も保存されない
	if len(mockStore.reports) != 0 {
		t.Errorf("Expected no reports persisted, got %d", len(mockStore.reports))
	}
}

func TestGetAndListReports(t *testing.T) {
	server, _ := newServerWithProject(t)
	doRequest(t, server, http.MethodPost, "/report", `{"text":"hi","project_id":"1"}`)

	rec := doRequest(t, server, http.MethodGet, "/report", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var list ListReportsResponse
	decodeBody(t, rec, &list)
	want := []*model.Report{{ID: 1, Text: "hi", ProjectID: 1}}
	if diff := cmp.Diff(want, list.Reports); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	rec = doRequest(t, server, http.MethodGet, "/report/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var get GetReportResponse
	decodeBody(t, rec, &get)
	if diff := cmp.Diff(want[0], get.Report); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	rec = doRequest(t, server, http.MethodGet, "/report/2", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestListReportsByProject(t *testing.T) {
	server, _ := newServerWithProject(t)
	doRequest(t, server, http.MethodPost, "/project", ProjectRequest{Name: "Empty", Description: "d"})
	doRequest(t, server, http.MethodPost, "/report", `{"text":"one","project_id":"1"}`)
	doRequest(t, server, http.MethodPost, "/report", `{"text":"two","project_id":1}`)

	rec := doRequest(t, server, http.MethodGet, "/report/project/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var list ListReportsResponse
	decodeBody(t, rec, &list)
	want := []*model.Report{
		{ID: 1, Text: "one", ProjectID: 1},
		{ID: 2, Text: "two", ProjectID: 1},
	}
	if diff := cmp.Diff(want, list.Reports); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}

	// レポートの無いプロジェクトは404
	rec = doRequest(t, server, http.MethodGet, "/report/project/2", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != "No reports found for 2 project ID" {
		t.Errorf("Unexpected error: %s", resp.Error)
	}
}

func TestUpdateReport(t *testing.T) {
	server, mockStore := newServerWithProject(t)
	doRequest(t, server, http.MethodPost, "/project", ProjectRequest{Name: "Beta", Description: "d"})
	doRequest(t, server, http.MethodPost, "/report", `{"text":"original","project_id":"1"}`)

	// textのみの更新
	rec := doRequest(t, server, http.MethodPatch, "/report/1", `{"text":"x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := mockStore.reports[1]; got.Text != "x" || got.ProjectID != 1 {
		t.Errorf("Expected text x and project_id 1, got %+v", got)
	}

	// project_idのみの更新
	rec = doRequest(t, server, http.MethodPatch, "/report/1", `{"project_id":"2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if got := mockStore.reports[1]; got.Text != "x" || got.ProjectID != 2 {
		t.Errorf("Expected text x and project_id 2, got %+v", got)
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"no fields", "/report/1", `{}`, http.StatusBadRequest, "At least one field (text or project_id) is required"},
		{"unknown project", "/report/1", `{"project_id":"9"}`, http.StatusNotFound, "Project with id = 9 not found"},
		{"unknown report", "/report/9", `{"text":"y"}`, http.StatusNotFound, "Report not found"},
		{"invalid id", "/report/x", `{"text":"y"}`, http.StatusBadRequest, "Report ID must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, http.MethodPatch, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp ErrorResponse
			decodeBody(t, rec, &resp)
			if resp.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, resp.Error)
			}
		})
	}
}

func TestDeleteReport(t *testing.T) {
	server, _ := newServerWithProject(t)
	doRequest(t, server, http.MethodPost, "/report", `{"text":"hi","project_id":"1"}`)

	rec := doRequest(t, server, http.MethodDelete, "/report/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	rec = doRequest(t, server, http.MethodDelete, "/report/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", rec.Code)
	}
}

func TestRepeatedWordReportsHandler(t *testing.T) {
	server, _ := newServerWithProject(t)

	// 該当なしは空配列
	rec := doRequest(t, server, http.MethodGet, "/report/repeated-words", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("Expected empty array, got %s", got)
	}

	doRequest(t, server, http.MethodPost, "/report", `{"text":"a a a b b","project_id":"1"}`)
	doRequest(t, server, http.MethodPost, "/report", `{"text":"a b c","project_id":"1"}`)

	rec = doRequest(t, server, http.MethodGet, "/report/repeated-words", nil)
	var got []*model.RepeatedWordReport
	decodeBody(t, rec, &got)
	want := []*model.RepeatedWordReport{
		{ID: 1, Text: "a a a b b", RepeatedWords: []string{"a"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RepeatedWordReports mismatch (-want +got):\n%s", diff)
	}
}

// TestEndToEndDeleteProject はプロジェクト削除後に参照できなくなることを確認します。
func TestEndToEndDeleteProject(t *testing.T) {
	server := NewServer(NewMockStore(), newTestConfig(), nil)

	rec := doRequest(t, server, http.MethodPost, "/project", `{"name":"Alpha","description":"d"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	rec = doRequest(t, server, http.MethodPost, "/report", `{"text":"hi","project_id":"1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created CreateReportResponse
	decodeBody(t, rec, &created)
	if created.ID != 1 || created.ProjectID != 1 {
		t.Errorf("Unexpected create response: %+v", created)
	}

	if rec := doRequest(t, server, http.MethodDelete, "/project/1", nil); rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec := doRequest(t, server, http.MethodGet, "/project/1", nil); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if rec := doRequest(t, server, http.MethodGet, "/report/1", nil); rec.Code != http.StatusNotFound {
		t.Errorf("Expected cascaded report delete, got %d", rec.Code)
	}
}
