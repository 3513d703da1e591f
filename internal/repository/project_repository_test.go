package repository

import (
	"testing"
	"time"

	"github.com/investrack/server/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStatusChanged(t *testing.T) {
	latest := &models.ProjectStatus{
		ProjectStatusID: 7,
		ProjectID:       1,
		StatusID:        3,
		StatusDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	require.False(t, statusChanged(latest, 3), "re-sending the current status must not append history")
	require.True(t, statusChanged(latest, 4))
	require.True(t, statusChanged(nil, 1), "a project without history always accepts a status")
}
