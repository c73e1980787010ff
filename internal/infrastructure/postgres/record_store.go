package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
)

var _ store.Backend = (*RecordStore)(nil)

// recordRow fila de pos_records. Exactamente uno de Payload y Compressed tiene datos.
type recordRow struct {
	Key        string `db:"key"`
	Payload    []byte `db:"payload"`
	Compressed []byte `db:"compressed"`
}

// RecordStore guarda cada colección del estado como una fila de pos_records.
// Los registros que superan el umbral se guardan comprimidos con zstd.
type RecordStore struct {
	pool      *pgxpool.Pool
	tx        *TxRunner
	builder   squirrel.StatementBuilderType
	encoder   *zstd.Encoder
	decoder   *zstd.Decoder
	threshold int
}

// NewRecordStore construye el almacenamiento. threshold <= 0 desactiva la compresión.
func NewRecordStore(pool *pgxpool.Pool, threshold int) (*RecordStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &RecordStore{
		pool:      pool,
		tx:        NewTxRunner(pool),
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		encoder:   encoder,
		decoder:   decoder,
		threshold: threshold,
	}, nil
}

// EnsureSchema crea las tablas si no existen.
func (s *RecordStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// LoadAll implementa store.Backend.
func (s *RecordStore) LoadAll(ctx context.Context) (map[state.Key][]byte, error) {
	sql, args, err := s.builder.Select("key", "payload", "compressed").From("pos_records").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	var rows []recordRow
	if err := pgxscan.Select(ctx, s.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select pos_records: %w", err)
	}
	out := make(map[state.Key][]byte, len(rows))
	for _, r := range rows {
		payload := r.Payload
		if len(r.Compressed) > 0 {
			payload, err = s.decoder.DecodeAll(r.Compressed, nil)
			if err != nil {
				return nil, fmt.Errorf("descomprimir %s: %w", r.Key, err)
			}
		}
		out[state.Key(r.Key)] = payload
	}
	return out, nil
}

// SaveAll implementa store.Backend: upsert de los registros y proyección de las
// ventas nuevas en la misma transacción.
func (s *RecordStore) SaveAll(ctx context.Context, b store.Batch) error {
	if len(b.Records) == 0 && len(b.NewSales) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		if len(b.Records) > 0 {
			q := s.builder.Insert("pos_records").Columns("key", "payload", "compressed", "updated_at")
			for k, v := range b.Records {
				payload, compressed := s.pack(v)
				q = q.Values(string(k), payload, compressed, now)
			}
			q = q.Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, " +
				"compressed = EXCLUDED.compressed, updated_at = EXCLUDED.updated_at")
			sql, args, err := q.ToSql()
			if err != nil {
				return fmt.Errorf("build upsert: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("upsert pos_records: %w", err)
			}
		}
		return s.appendJournal(ctx, tx, b.NewSales)
	})
}

// pack devuelve (payload, nil) o (nil, comprimido) según el umbral.
func (s *RecordStore) pack(v []byte) (payload *string, compressed []byte) {
	if s.threshold > 0 && len(v) > s.threshold {
		return nil, s.encoder.EncodeAll(v, nil)
	}
	str := string(v)
	return &str, nil
}

func (s *RecordStore) appendJournal(ctx context.Context, tx pgx.Tx, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	q := s.builder.Insert("pos_sales_journal").
		Columns("id", "branch_id", "sold_at", "customer_id", "payment_method", "subtotal", "tax", "total", "seller")
	for _, v := range sales {
		q = q.Values(v.ID, v.BranchID, v.Date, v.CustomerID, string(v.PaymentMethod), v.Subtotal, v.Tax, v.Total, v.User)
	}
	sql, args, err := q.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build journal insert: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert pos_sales_journal: %w", err)
	}
	return nil
}
