// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
)

// センチネルエラー - リソースが見つからない場合
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrReportNotFound  = errors.New("report not found")
)

// ValidationError はバリデーションエラーを表す型
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError は対象のリソースが存在しないことを表す型です。
// Message が空でない場合はそれをそのままクライアントへ返します。
type NotFoundError struct {
	Resource string
	ID       ID
	Message  string
	sentinel error
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with id = %d not found", e.Resource, e.ID)
}

// Unwrap により errors.Is(err, ErrProjectNotFound) などで判定できます。
func (e *NotFoundError) Unwrap() error {
	return e.sentinel
}

// NewProjectNotFound はプロジェクトが見つからない場合のエラーを生成します。
func NewProjectNotFound(id ID) error {
	return &NotFoundError{
		Resource: "Project",
		ID:       id,
		Message:  fmt.Sprintf("Project with id = %d not found", id),
		sentinel: ErrProjectNotFound,
	}
}

// NewReportNotFound はレポートが見つからない場合のエラーを生成します。
func NewReportNotFound(id ID) error {
	return &NotFoundError{
		Resource: "Report",
		ID:       id,
		Message:  "Report not found",
		sentinel: ErrReportNotFound,
	}
}

// NewNoReportsForProject はプロジェクトに紐づくレポートが一件もない場合のエラーです。
func NewNoReportsForProject(projectID ID) error {
	return &NotFoundError{
		Resource: "Report",
		ID:       projectID,
		Message:  fmt.Sprintf("No reports found for %d project ID", projectID),
		sentinel: ErrReportNotFound,
	}
}

// InternalError はストレージ障害など想定外のエラーを表す型です。
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// NewInternalError は操作名と原因を包んだInternalErrorを生成します。
func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
