package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/videoflix-server/database/migrations"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_accounts.sql",
		"00002_activation_tokens.sql",
		"00003_videos.sql",
	}, files)
}

func TestMigrateDB(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	t.Run("success", func(t *testing.T) {
		var dir string
		gooseUp = func(_ context.Context, _ *sql.DB, d string, _ ...goose.OptionsFunc) error {
			dir = d
			return nil
		}

		require.NoError(t, MigrateDB(context.Background(), &sql.DB{}))
		assert.Equal(t, ".", dir)
	})

	t.Run("goose error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		gooseUp = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
			return boom
		}

		err := MigrateDB(context.Background(), &sql.DB{})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
