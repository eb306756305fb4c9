package service

import (
	"context"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/ai"
	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/nlp"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/repo"
	"github.com/hakimdiab/seamnote/internal/seam"
)

// CompletionHook runs after a session reaches completed state. Hooks are
// best-effort; failures are logged and never surface to the participant.
type CompletionHook func(ctx context.Context, session *model.InterviewSession)

// InterviewService drives the diagnostic interview: one participant turn
// in, one assistant turn out, with the category pointer moving forward
// only when the dialogue oracle emits the advancement marker.
type InterviewService struct {
	sessions    *repo.SessionRepo
	messages    *repo.MessageRepo
	notes       *repo.FieldNoteRepo
	detector    *nlp.Detector
	anonymizer  *nlp.Anonymizer
	categorizer *CategorizerService
	oracle      ai.IChatOracle
	locks       *sessionLocks
	hooks       []CompletionHook
}

func NewInterviewService(
	sessions *repo.SessionRepo,
	messages *repo.MessageRepo,
	notes *repo.FieldNoteRepo,
	detector *nlp.Detector,
	anonymizer *nlp.Anonymizer,
	categorizer *CategorizerService,
	oracle ai.IChatOracle,
) *InterviewService {
	return &InterviewService{
		sessions:    sessions,
		messages:    messages,
		notes:       notes,
		detector:    detector,
		anonymizer:  anonymizer,
		categorizer: categorizer,
		oracle:      oracle,
		locks:       newSessionLocks(),
	}
}

func (s *InterviewService) AddCompletionHook(hook CompletionHook) {
	s.hooks = append(s.hooks, hook)
}

type StartRequest struct {
	Department   string
	RoleLevel    string
	LanguagePref string
}

type StartResult struct {
	Session  *model.InterviewSession
	Greeting string
}

func (s *InterviewService) Start(ctx context.Context, req StartRequest) (*StartResult, error) {
	role := strings.TrimSpace(req.RoleLevel)
	switch role {
	case "":
		role = model.RoleOperational
	case model.RoleOperational, model.RoleTeacher, model.RoleCoordinator, model.RoleManagerial, model.RoleExecutive:
	default:
		return nil, errs.ErrInvalid
	}
	lang := req.LanguagePref
	if lang != nlp.LangAR {
		lang = nlp.LangEN
	}

	now := time.Now().Unix()
	session := &model.InterviewSession{
		ID:              newID(),
		ParticipantCode: newParticipantCode(),
		Department:      strings.TrimSpace(req.Department),
		RoleLevel:       role,
		LanguagePref:    lang,
		Status:          model.SessionStatusActive,
		CategoryIndex:   0,
		Ctime:           now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	greeting := seam.BuildGreeting(lang)
	if err := s.storeMessage(ctx, session.ID, model.MessageRoleAssistant, greeting, lang, 0); err != nil {
		return nil, err
	}
	return &StartResult{Session: session, Greeting: greeting}, nil
}

func (s *InterviewService) Get(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	return s.sessions.GetByID(ctx, sessionID)
}

func (s *InterviewService) GetByParticipantCode(ctx context.Context, code string) (*model.InterviewSession, error) {
	return s.sessions.GetByParticipantCode(ctx, code)
}

func (s *InterviewService) Transcript(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.messages.ListBySession(ctx, sessionID)
}

type TurnResult struct {
	Reply         string
	Language      string
	CategoryIndex int
	Completed     bool
	FieldNoteID   string
}

// Message handles one participant turn. Oracle failure degrades to a
// localized apology and leaves the session state untouched.
func (s *InterviewService) Message(ctx context.Context, sessionID string, text string) (*TurnResult, error) {
	release := s.locks.Acquire(sessionID)
	defer release()

	logger := logutil.GetLogger(ctx).With(zap.String("session_id", sessionID))

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, errs.ErrSessionFinished
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrInvalid
	}

	language := s.detector.Detect(text)
	if err := s.storeMessage(ctx, session.ID, model.MessageRoleParticipant, text, language, session.CategoryIndex); err != nil {
		return nil, err
	}

	result := &TurnResult{Language: language, CategoryIndex: session.CategoryIndex}

	if nlp.IsSubstantive(text) {
		noteID, err := s.recordFieldNote(ctx, session, text, language)
		if err != nil {
			return nil, err
		}
		result.FieldNoteID = noteID
	}

	reply, err := s.generateReply(ctx, session, language)
	if err != nil {
		logger.Error("dialogue oracle failed twice, replying with apology", zap.Error(err))
		apology := seam.ApologyMessage(language)
		if err := s.storeMessage(ctx, session.ID, model.MessageRoleAssistant, apology, language, session.CategoryIndex); err != nil {
			return nil, err
		}
		result.Reply = apology
		return result, nil
	}

	advance := strings.Contains(reply, seam.AdvanceMarker)
	if advance && !strings.HasSuffix(strings.TrimSpace(reply), seam.AdvanceMarker) {
		logger.Warn("advancement marker found mid-reply")
	}
	cleaned := strings.ReplaceAll(reply, seam.AdvanceMarker, "")
	cleaned = strings.ReplaceAll(cleaned, "—", ", ")
	cleaned = strings.TrimSpace(cleaned)

	categoryIndex := session.CategoryIndex
	if advance {
		categoryIndex++
		if categoryIndex >= seam.CategoryCount {
			if err := s.complete(ctx, session, categoryIndex); err != nil {
				return nil, err
			}
			result.Completed = true
			if cleaned == "" {
				cleaned = seam.CompletionMessage(language)
			}
		} else {
			if err := s.sessions.UpdateProgress(ctx, session.ID, categoryIndex); err != nil {
				return nil, err
			}
			if cleaned == "" {
				next, _ := seam.OpeningQuestion(seam.CategoryOrder[categoryIndex])
				cleaned = seam.BridgePhrase(language, next)
			}
		}
	}
	if cleaned == "" {
		cleaned = seam.ContinuationPrompt(language)
	}

	if err := s.storeMessage(ctx, session.ID, model.MessageRoleAssistant, cleaned, language, categoryIndex); err != nil {
		return nil, err
	}
	result.Reply = cleaned
	result.CategoryIndex = categoryIndex
	return result, nil
}

// End finishes a session ahead of the natural flow, keeping whatever notes
// were collected so far.
func (s *InterviewService) End(ctx context.Context, sessionID string) (*model.InterviewSession, error) {
	release := s.locks.Acquire(sessionID)
	defer release()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, errs.ErrSessionFinished
	}
	if err := s.complete(ctx, session, session.CategoryIndex); err != nil {
		return nil, err
	}
	ack := seam.ClosingAcknowledgment(session.LanguagePref)
	if err := s.storeMessage(ctx, session.ID, model.MessageRoleAssistant, ack, session.LanguagePref, session.CategoryIndex); err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, sessionID)
}

func (s *InterviewService) complete(ctx context.Context, session *model.InterviewSession, categoryIndex int) error {
	now := time.Now().Unix()
	if err := s.sessions.Finish(ctx, session.ID, model.SessionStatusCompleted, now); err != nil {
		return err
	}
	session.Status = model.SessionStatusCompleted
	session.CategoryIndex = categoryIndex
	session.CompletedAt = now
	for _, hook := range s.hooks {
		hook(ctx, session)
	}
	return nil
}

func (s *InterviewService) recordFieldNote(ctx context.Context, session *model.InterviewSession, text, language string) (string, error) {
	pair := s.anonymizer.AnonymizeWithOriginal(ctx, text)
	classification := s.categorizer.Categorize(ctx, pair.Anonymized)
	note := &model.FieldNote{
		ID:                newID(),
		SessionID:         session.ID,
		OriginalText:      pair.Original,
		AnonymizedText:    pair.Anonymized,
		PrimaryCategory:   classification.PrimaryCategory,
		SecondaryCategory: classification.SecondaryCategory,
		Tags:              classification.Tags,
		Confidence:        classification.Confidence,
		Language:          language,
		Ctime:             time.Now().Unix(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return "", err
	}
	return note.ID, nil
}

func (s *InterviewService) generateReply(ctx context.Context, session *model.InterviewSession, language string) (string, error) {
	exchanges, err := s.messages.CountExchanges(ctx, session.ID, session.CategoryIndex)
	if err != nil {
		return "", err
	}
	minDepth, maxDepth := seam.DepthBand(session.RoleLevel)

	var system strings.Builder
	system.WriteString(seam.InterviewSystemPrompt)
	system.WriteString("\n\n")
	system.WriteString(seam.BuildCategoryContext(session.CategoryIndex, language, session.RoleLevel))
	system.WriteString("\n\n")
	system.WriteString(seam.DepthStatusMessage(exchanges, minDepth, maxDepth, session.RoleLevel))

	history, err := s.messages.ListBySession(ctx, session.ID)
	if err != nil {
		return "", err
	}
	messages := make([]ai.Message, 0, len(history)+1)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: system.String()})
	for _, msg := range history {
		role := ai.RoleUser
		if msg.Role == model.MessageRoleAssistant {
			role = ai.RoleAssistant
		}
		messages = append(messages, ai.Message{Role: role, Content: msg.Content})
	}

	reply, err := s.oracle.Chat(ctx, messages)
	if err != nil {
		reply, err = s.oracle.Chat(ctx, messages)
	}
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (s *InterviewService) storeMessage(ctx context.Context, sessionID, role, content, language string, categoryIndex int) error {
	return s.messages.Create(ctx, &model.ChatMessage{
		ID:            newID(),
		SessionID:     sessionID,
		Role:          role,
		Content:       content,
		Language:      language,
		CategoryIndex: categoryIndex,
		Ctime:         time.Now().UnixNano(),
	})
}
