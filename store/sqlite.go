package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/dpsapi/db"
	"github.com/stsysd/dpsapi/model"
)

// MigrateFunc はスキーマを準備する関数です。通常は db.Migrate を渡します。
type MigrateFunc func(*sql.DB) error

// SQLiteStore はSQLiteを使用したStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir, dbFile string, migrate MigrateFunc) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// 外部キー制約を接続ごとに有効化し、書き込みトランザクションは即時ロックを取る
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000",
		filepath.Join(dataDir, dbFile))

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if migrate != nil {
		if err := migrate(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to initialize database tables: %w", err)
		}
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(newAccessor(conn)),
	}, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// SchemaVersion は適用済みのマイグレーションバージョンを返します。
func (s *SQLiteStore) SchemaVersion() (int64, error) {
	return db.Version(s.conn)
}

// withTx はトランザクション内でfnを実行します。fnがエラーを返した場合はロールバックします。
func (s *SQLiteStore) withTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return model.NewInternalError("failed to begin transaction", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	if err := fn(db.New(newAccessor(tx))); err != nil {
		return err
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return model.NewInternalError("failed to commit transaction", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// affectedOrNotFound は更新・削除の結果が0件の場合にnotFoundを返します。
func affectedOrNotFound(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// nextID はmax+1で求めたIDを検証します。
func nextID(next int64, err error) (model.ID, error) {
	if err != nil {
		return 0, model.NewInternalError("Invalid ID value encountered while calculating new ID", err)
	}
	id := model.ID(next)
	if !id.IsValid() {
		return 0, model.NewInternalError("Invalid ID value encountered while calculating new ID", nil)
	}
	return id, nil
}
