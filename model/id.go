package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID はストアが採番する正の整数IDです。
type ID int64

// ParseID はパスやボディの値をIDに変換します。
// name はバリデーションメッセージに使われます（例: "Project ID"）。
func ParseID(name, s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewValidationError(fmt.Sprintf("%s is required", name))
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, NewValidationError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return ID(n), nil
}

// String はIDの10進表記を返します。
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsValid はIDが採番済みかを返します。
func (id ID) IsValid() bool {
	return id > 0
}

// UnmarshalJSON は 1 と "1" のどちらも受け付けます。
func (id *ID) UnmarshalJSON(data []byte) error {
	v, err := decodeFlexibleID(data)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ProjectRef はレポートが持つ project_id です。
// 数値と数字の文字列のどちらからもデコードでき、エンコードは常に文字列です。
type ProjectRef ID

// ID は参照先のプロジェクトIDを返します。
func (p ProjectRef) ID() ID {
	return ID(p)
}

// MarshalJSON は10進の文字列としてエンコードします。
func (p ProjectRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(ID(p).String())
}

// UnmarshalJSON は 1 と "1" のどちらも受け付けます。
func (p *ProjectRef) UnmarshalJSON(data []byte) error {
	v, err := decodeFlexibleID(data)
	if err != nil {
		return err
	}
	*p = ProjectRef(v)
	return nil
}

// decodeFlexibleID はJSONの数値または文字列をデコードします。
// 空文字列とnullは0になり、呼び出し側の必須チェックで検出されます。
func decodeFlexibleID(data []byte) (ID, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
	} else {
		s = string(data)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("invalid id %q", s))
	}
	return ID(n), nil
}
