// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import "strings"

// Project はプロジェクトエンティティを表すモデルです。
type Project struct {
	ID          ID     `json:"id"`          // プロジェクトID
	Name        string `json:"name"`        // プロジェクト名
	Description string `json:"description"` // プロジェクトの説明
}

// NewProject は新しいProjectインスタンスを作成します。
// IDはストアが採番するため、0を設定します。
func NewProject(name, description string) (*Project, error) {
	p := &Project{
		Name:        name,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProject は既存のProjectインスタンスを作成します。
func LoadProject(id ID, name, description string) (*Project, error) {
	if !id.IsValid() {
		return nil, NewValidationError("id is required for loaded project")
	}
	p := &Project{
		ID:          id,
		Name:        name,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate はプロジェクトのデータバリデーションを行います。
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" {
		return NewValidationError("Name and description are required")
	}
	return nil
}
