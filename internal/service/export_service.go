package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	rendererhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatHTML = "html"
)

// ExportService renders a session's anonymized material for delivery to
// the client organization. Original verbatim text never leaves the system
// through here.
type ExportService struct {
	sessions *repo.SessionRepo
	messages *repo.MessageRepo
	notes    *repo.FieldNoteRepo
	md       goldmark.Markdown
}

func NewExportService(sessions *repo.SessionRepo, messages *repo.MessageRepo, notes *repo.FieldNoteRepo) *ExportService {
	return &ExportService{
		sessions: sessions,
		messages: messages,
		notes:    notes,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(rendererhtml.WithHardWraps()),
		),
	}
}

type SessionExport struct {
	Session    *model.InterviewSession `json:"session"`
	Messages   []model.ChatMessage     `json:"messages"`
	FieldNotes []model.FieldNote       `json:"field_notes"`
}

type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}

// Export renders one session in the requested format.
func (s *ExportService) Export(ctx context.Context, sessionID string, format string) (*ExportResult, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON, "":
		messages, err := s.messages.ListBySession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		data, err := json.MarshalIndent(SessionExport{Session: session, Messages: messages, FieldNotes: notes}, "", "  ")
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			ContentType: "application/json",
			Filename:    fmt.Sprintf("session_%s.json", session.ParticipantCode),
			Data:        data,
		}, nil
	case FormatCSV:
		data, err := renderCSV(notes)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("session_%s.csv", session.ParticipantCode),
			Data:        data,
		}, nil
	case FormatHTML:
		data, err := s.renderHTML(session, notes)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			ContentType: "text/html",
			Filename:    fmt.Sprintf("session_%s.html", session.ParticipantCode),
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q: %w", format, errs.ErrInvalid)
	}
}

func renderCSV(notes []model.FieldNote) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "anonymized_text", "primary_category", "secondary_category", "tags", "confidence", "language", "ctime"}); err != nil {
		return nil, err
	}
	for _, note := range notes {
		record := []string{
			note.ID,
			note.AnonymizedText,
			note.PrimaryCategory,
			note.SecondaryCategory,
			strings.Join(note.Tags, ";"),
			strconv.Itoa(note.Confidence),
			note.Language,
			strconv.FormatInt(note.Ctime, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHTML converts the session brief plus its notes into a standalone
// document. The markdown summary is rendered through goldmark.
func (s *ExportService) renderHTML(session *model.InterviewSession, notes []model.FieldNote) ([]byte, error) {
	var body bytes.Buffer
	fmt.Fprintf(&body, "<h1>Interview %s</h1>\n", html.EscapeString(session.ParticipantCode))
	fmt.Fprintf(&body, "<p>Role level: %s | Department: %s | Status: %s</p>\n",
		html.EscapeString(session.RoleLevel), html.EscapeString(session.Department), html.EscapeString(session.Status))

	if session.Summary != "" {
		body.WriteString("<h2>Diagnostic Brief</h2>\n")
		var rendered bytes.Buffer
		if err := s.md.Convert([]byte(session.Summary), &rendered); err != nil {
			return nil, err
		}
		body.Write(rendered.Bytes())
	}

	body.WriteString("<h2>Field Notes</h2>\n<table border=\"1\">\n<tr><th>Category</th><th>Note</th><th>Tags</th><th>Confidence</th></tr>\n")
	for _, note := range notes {
		category := seam.DisplayNameEN(note.PrimaryCategory)
		if category == "" {
			category = "Uncategorized"
		}
		fmt.Fprintf(&body, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>\n",
			html.EscapeString(category),
			html.EscapeString(note.AnonymizedText),
			html.EscapeString(strings.Join(note.Tags, ", ")),
			note.Confidence)
	}
	body.WriteString("</table>\n")

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&out, "<title>Interview %s</title>\n", html.EscapeString(session.ParticipantCode))
	out.WriteString("</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
