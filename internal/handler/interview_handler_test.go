package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/seam"
)

func TestSessionStatusProgress(t *testing.T) {
	tests := []struct {
		name         string
		index        int
		status       string
		wantProgress int
		wantCategory string
	}{
		{"fresh session", 0, model.SessionStatusActive, 0, seam.CategoryOrder[0]},
		{"mid interview", 3, model.SessionStatusActive, 50, seam.CategoryOrder[3]},
		{"last category", 5, model.SessionStatusActive, 83, seam.CategoryOrder[5]},
		{"finished", 6, model.SessionStatusCompleted, 100, "completed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sessionStatus(&model.InterviewSession{
				ParticipantCode: "P-ABC123",
				Status:          tc.status,
				CategoryIndex:   tc.index,
			})
			require.Equal(t, tc.wantProgress, got.Progress)
			require.Equal(t, tc.wantCategory, got.CurrentCategory)
			require.Equal(t, seam.CategoryCount, got.CategoryCount)
		})
	}
}
