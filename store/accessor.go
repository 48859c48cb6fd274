package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/stsysd/dpsapi/db"
	"github.com/stsysd/dpsapi/metrics"
)

// accessor はSQLエンジンへの唯一の窓口です。
// db.Queries はこれを経由して文を実行し、各文の実行時間がメトリクスに記録されます。
type accessor struct {
	db db.DBTX
}

var _ db.DBTX = accessor{}

// newAccessor は接続またはトランザクションを包んだaccessorを返します。
func newAccessor(conn db.DBTX) accessor {
	return accessor{db: conn}
}

// ExecContext は更新系の文を実行します。
func (a accessor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer observe(queryName(query), time.Now())
	return a.db.ExecContext(ctx, query, args...)
}

// QueryContext は複数行を返す文を実行します。
func (a accessor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer observe(queryName(query), time.Now())
	return a.db.QueryContext(ctx, query, args...)
}

// QueryRowContext は1行を返す文を実行します。
func (a accessor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer observe(queryName(query), time.Now())
	return a.db.QueryRowContext(ctx, query, args...)
}

func (a accessor) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return a.db.PrepareContext(ctx, query)
}

// queryName はsqlcが付与する "-- name: X :kind" 行からクエリ名を取り出します。
// 名前の無い文は "raw" として扱います。
func queryName(query string) string {
	const prefix = "-- name: "
	if !strings.HasPrefix(query, prefix) {
		return "raw"
	}
	name := query[len(prefix):]
	if i := strings.IndexAny(name, " \n"); i >= 0 {
		name = name[:i]
	}
	return name
}

// observe は文の実行時間をメトリクスに記録します。
func observe(operation string, start time.Time) {
	metrics.RecordDBQueryDuration(operation, time.Since(start))
}
