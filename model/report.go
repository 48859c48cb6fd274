package model

import "strings"

// Report はプロジェクトに紐づくレポートを表すモデルです。
type Report struct {
	ID        ID         `json:"id"`
	Text      string     `json:"text"`       // 本文
	ProjectID ProjectRef `json:"project_id"` // 参照先プロジェクトID
}

// NewReport はReportの新しいインスタンスを作成します。
// IDはストアが採番するため、0を設定します。
func NewReport(text string, projectID ID) (*Report, error) {
	rep := &Report{
		Text:      text,
		ProjectID: ProjectRef(projectID),
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return rep, nil
}

// LoadReport は既存のReportインスタンスを作成します。
func LoadReport(id ID, text string, projectID ID) (*Report, error) {
	// LoadReportはDBから読み込んだレコード用なので、IDは必須
	if !id.IsValid() {
		return nil, NewValidationError("id is required for loaded report")
	}
	rep := &Report{
		ID:        id,
		Text:      text,
		ProjectID: ProjectRef(projectID),
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	return rep, nil
}

// Validate はレポートのデータバリデーションを行います。
func (r *Report) Validate() error {
	if strings.TrimSpace(r.Text) == "" || !r.ProjectID.ID().IsValid() {
		return NewValidationError("Text and Project ID are required")
	}
	return nil
}

// ReportPatch はレポートの部分更新の内容です。nilのフィールドは変更しません。
type ReportPatch struct {
	Text      *string
	ProjectID *ID
}

// Validate は部分更新の内容を検証します。
func (p ReportPatch) Validate() error {
	if p.Text == nil && p.ProjectID == nil {
		return NewValidationError("At least one field (text or project_id) is required")
	}
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		return NewValidationError("text must not be empty")
	}
	if p.ProjectID != nil && !p.ProjectID.IsValid() {
		return NewValidationError("project_id must be a positive integer")
	}
	return nil
}
