package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// CredentialModel is the Bun model for the persisted credential pair. The
// table holds a single fixed row so token and profile always change as one
// atomic write, mirroring the invariant MemoryStore enforces with a mutex.
type CredentialModel struct {
	bun.BaseModel `bun:"table:credentials"`

	ID        int64     `bun:"id,pk"`
	Token     string    `bun:"token,notnull"`
	Profile   []byte    `bun:"profile"`
	UpdatedAt time.Time `bun:"updated_at,default:current_timestamp"`
}

const credentialRowID = 1

// BunStore persists credentials across process restarts in a local SQLite
// database.
type BunStore struct {
	db     *bun.DB
	logger Logger
}

var _ CredentialStore = (*BunStore)(nil)

// OpenStoreDB opens (or creates) the credential database at the given path.
// Use ":memory:" for a throwaway store.
func OpenStoreDB(path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// NewBunStore creates the store and ensures its table exists.
func NewBunStore(db *bun.DB) (*BunStore, error) {
	s := &BunStore{db: db, logger: defLogger{}}

	_, err := db.NewCreateTable().
		Model((*CredentialModel)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *BunStore) WithLogger(logger Logger) *BunStore {
	s.logger = logger
	return s
}

// Token returns the persisted raw token, empty when absent.
func (s *BunStore) Token() string {
	record, err := s.load()
	if err != nil {
		return ""
	}
	return record.Token
}

// Profile returns the persisted serialized user profile, nil when absent.
func (s *BunStore) Profile() []byte {
	record, err := s.load()
	if err != nil {
		return nil
	}
	return record.Profile
}

// Put upserts the single credential row, replacing both slots at once.
func (s *BunStore) Put(token string, profile []byte) error {
	record := &CredentialModel{
		ID:        credentialRowID,
		Token:     token,
		Profile:   profile,
		UpdatedAt: time.Now(),
	}

	_, err := s.db.NewInsert().
		Model(record).
		On("CONFLICT (id) DO UPDATE").
		Set("token = EXCLUDED.token").
		Set("profile = EXCLUDED.profile").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(context.Background())
	if err != nil {
		s.logger.Error("credential store put failed", "error", err)
	}
	return err
}

// Clear deletes the credential row. Deleting a missing row is a no-op.
func (s *BunStore) Clear() error {
	_, err := s.db.NewDelete().
		Model((*CredentialModel)(nil)).
		Where("id = ?", credentialRowID).
		Exec(context.Background())
	if err != nil {
		s.logger.Error("credential store clear failed", "error", err)
	}
	return err
}

func (s *BunStore) load() (*CredentialModel, error) {
	record := &CredentialModel{}
	err := s.db.NewSelect().
		Model(record).
		Where("id = ?", credentialRowID).
		Scan(context.Background())
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("credential store read failed", "error", err)
		}
		return &CredentialModel{}, err
	}
	return record, nil
}
