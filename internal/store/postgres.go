package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresStore Postgres 文档存储实现
// 所有集合存放在单张 documents 表里（collection + doc_id 主键，data 为 JSONB），
// 批量提交放在一个事务内，获得与参考存储一致的"单批次原子"语义。
type PostgresStore struct {
	db *sql.DB
}

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	doc_id     TEXT NOT NULL,
	data       JSONB NOT NULL,
	PRIMARY KEY (collection, doc_id)
)`

// NewPostgresStore 打开连接并确保 documents 表存在
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if _, err := db.Exec(documentsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure documents table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

var _ Store = (*PostgresStore)(nil)

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, doc_id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, doc_id) DO UPDATE SET data = EXCLUDED.data`,
		collection, id, raw)
	if err != nil {
		return fmt.Errorf("failed to set document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var raw json.RawMessage
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND doc_id = $2`,
		collection, id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return decodeDoc(raw)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND doc_id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_id, data FROM documents WHERE collection = $1 ORDER BY doc_id`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *PostgresStore) Query(ctx context.Context, collection string, filters map[string]any) ([]Document, error) {
	query := `SELECT doc_id, data FROM documents WHERE collection = $1`
	args := []any{collection}
	for field, value := range filters {
		args = append(args, field, fmt.Sprintf("%v", value))
		query += fmt.Sprintf(" AND data->>$%d = $%d", len(args)-1, len(args))
	}
	query += " ORDER BY doc_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *PostgresStore) CommitBatch(ctx context.Context, ops []Operation) error {
	if err := checkBatchSize(ops); err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch: %w", err)
	}
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			raw, err := json.Marshal(op.Data)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to encode document %s/%s: %w", op.Collection, op.ID, err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO documents (collection, doc_id, data)
				VALUES ($1, $2, $3)
				ON CONFLICT (collection, doc_id) DO UPDATE SET data = EXCLUDED.data`,
				op.Collection, op.ID, raw)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to write document %s/%s: %w", op.Collection, op.ID, err)
			}
		case OpDelete:
			_, err := tx.ExecContext(ctx,
				`DELETE FROM documents WHERE collection = $1 AND doc_id = $2`,
				op.Collection, op.ID)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to delete document %s/%s: %w", op.Collection, op.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func scanDocuments(rows *sql.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var id string
		var raw json.RawMessage
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		data, err := decodeDoc(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

func decodeDoc(raw json.RawMessage) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return data, nil
}
