package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/snackops/snackledger/internal/models"
)

const testSchema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(16) NOT NULL DEFAULT 'member',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS snacks (
	snack_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	name VARCHAR(100) NOT NULL UNIQUE,
	quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	expire_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_by UUID NOT NULL REFERENCES users(user_id),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_by UUID NOT NULL REFERENCES users(user_id)
);

CREATE TABLE IF NOT EXISTS snack_requests (
	request_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	name VARCHAR(100) NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	reason TEXT,
	url TEXT,
	status VARCHAR(16) NOT NULL DEFAULT 'pending',
	created_by UUID NOT NULL REFERENCES users(user_id),
	approved_by UUID REFERENCES users(user_id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS snack_histories (
	history_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	snack_id UUID,
	user_id UUID NOT NULL REFERENCES users(user_id),
	action VARCHAR(16) NOT NULL,
	quantity INTEGER,
	memo TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS snack_alerts (
	alert_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	snack_id UUID NOT NULL REFERENCES snacks(snack_id) ON DELETE CASCADE,
	expire_date DATE NOT NULL,
	days_left INTEGER NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (snack_id, expire_date)
);

CREATE TABLE IF NOT EXISTS quotes (
	quote_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	text TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quote_cache (
	day DATE PRIMARY KEY,
	quote_id UUID NOT NULL REFERENCES quotes(quote_id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// setupPostgresContainer starts a throwaway Postgres, applies the schema
// and returns a connected db plus teardown.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	_, err = db.Exec(testSchema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		_ = container.Terminate(context.Background())
	}

	return db, teardown
}

// seedUser inserts a user row and returns its id.
func seedUser(t *testing.T, db *sqlx.DB, username string, role models.Role) uuid.UUID {
	t.Helper()

	writer := NewUserWriteRepository(db)
	userID, err := writer.Save(context.Background(), username, "hash", role)
	assert.NoError(t, err)
	return userID
}
