package handlers

import (
	"os"
	"testing"

	"github.com/investrack/server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by error responses)
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}
