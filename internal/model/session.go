package model

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

const (
	RoleOperational = "operational"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
	RoleManagerial  = "managerial"
	RoleExecutive   = "executive"
)

type InterviewSession struct {
	ID              string `json:"id" db:"id"`
	ParticipantCode string `json:"participant_code" db:"participant_code"`
	Department      string `json:"department" db:"department"`
	RoleLevel       string `json:"role_level" db:"role_level"`
	LanguagePref    string `json:"language_pref" db:"language_pref"`
	Status          string `json:"status" db:"status"`
	CategoryIndex   int    `json:"current_category_index" db:"category_index"`
	Summary         string `json:"summary,omitempty" db:"summary"`
	Ctime           int64  `json:"ctime" db:"ctime"`
	CompletedAt     int64  `json:"completed_at,omitempty" db:"completed_at"`
}

func (s *InterviewSession) Active() bool {
	return s.Status == SessionStatusActive
}
