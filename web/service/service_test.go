package service

import (
	"os"
	"path/filepath"
	"testing"

	"streamd/database"
	"streamd/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("STREAMD_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func setup(t *testing.T) {
	t.Helper()
	removeTestDB()
	require.NoError(t, database.InitDB("test.db"))
}

func teardown() {
	database.CloseDB()
	removeTestDB()
}

func removeTestDB() {
	files, _ := filepath.Glob("test.db*")
	for _, f := range files {
		os.Remove(f)
	}
}
