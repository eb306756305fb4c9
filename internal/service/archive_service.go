package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/filestore"
	"github.com/hakimdiab/seamnote/internal/model"
)

// ArchiveService writes a JSON snapshot of each completed session to the
// configured file store, giving the consultant an audit trail outside the
// database.
type ArchiveService struct {
	exporter *ExportService
	store    filestore.Store
}

func NewArchiveService(exporter *ExportService, store filestore.Store) *ArchiveService {
	return &ArchiveService{exporter: exporter, store: store}
}

// Archive saves the JSON export of one session under its participant code.
func (s *ArchiveService) Archive(ctx context.Context, session *model.InterviewSession) error {
	result, err := s.exporter.Export(ctx, session.ID, FormatJSON)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("session_%s.json", session.ParticipantCode)
	reader := nopReadSeekCloser{bytes.NewReader(result.Data)}
	return s.store.Save(ctx, key, reader, int64(len(result.Data)))
}

// CompletionHook returns the hook form, logging instead of failing.
func (s *ArchiveService) CompletionHook() CompletionHook {
	return func(ctx context.Context, session *model.InterviewSession) {
		if err := s.Archive(ctx, session); err != nil {
			logutil.GetLogger(ctx).Error("failed to archive session",
				zap.String("session_id", session.ID), zap.Error(err))
		}
	}
}

type nopReadSeekCloser struct {
	*bytes.Reader
}

func (nopReadSeekCloser) Close() error {
	return nil
}
