// Package testdb creates a throwaway database for end-to-end tests on the
// server named by TEST_DATABASE_URI.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const envDSN = "TEST_DATABASE_URI"

var ErrNoDatabase = errors.New(envDSN + " is not set")

type TestDBInstance struct {
	DSN string

	adminDSN string
	name     string
}

// NewTestDBInstance creates an empty database next to the one in
// TEST_DATABASE_URI. The URI must be in URL form.
func NewTestDBInstance() (*TestDBInstance, error) {
	adminDSN := os.Getenv(envDSN)
	if adminDSN == "" {
		return nil, ErrNoDatabase
	}

	u, err := url.Parse(adminDSN)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envDSN, err)
	}

	name := "orderdesk_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := exec(adminDSN, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return nil, err
	}

	u.Path = "/" + name
	return &TestDBInstance{DSN: u.String(), adminDSN: adminDSN, name: name}, nil
}

// Down drops the database, closing any connections still open on it.
func (i *TestDBInstance) Down() error {
	return exec(i.adminDSN, "DROP DATABASE IF EXISTS "+pgx.Identifier{i.name}.Sanitize()+" WITH (FORCE)")
}

func exec(dsn, sql string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	if _, err := conn.Exec(ctx, sql); err != nil {
		return fmt.Errorf("%s: %w", sql, err)
	}
	return nil
}
