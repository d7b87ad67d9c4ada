package models

import "time"

// Student represents a postgraduate learner and the individually owned copy of
// their training pipeline. The stage list is seeded from the track template at
// enrollment and only ever updated through document edits or reconciliation.
type Student struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	DOB            string          `json:"dob"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Degree         DegreeTrack     `json:"degree"`
	Major          string          `json:"major"`
	ClassID        string          `json:"class_id"`
	Batch          string          `json:"batch"`
	StudentCode    string          `json:"student_code"`
	EnrollmentDate string          `json:"enrollment_date"`
	AvatarURL      string          `json:"avatar_url,omitempty"`
	CurrentStageID int             `json:"current_stage_id"`
	Stages         []TrainingStage `json:"stages"`
	Notes          string          `json:"notes,omitempty"`
	TuitionRecords []TuitionRecord `json:"tuition_records"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Clone returns a deep copy of the student, including stages and tuition.
func (s Student) Clone() Student {
	out := s
	out.Stages = CloneStages(s.Stages)
	out.TuitionRecords = make([]TuitionRecord, len(s.TuitionRecords))
	copy(out.TuitionRecords, s.TuitionRecords)
	return out
}

// CurrentStage returns the stage matching CurrentStageID, or nil.
func (s *Student) CurrentStage() *TrainingStage {
	for i := range s.Stages {
		if s.Stages[i].ID == s.CurrentStageID {
			return &s.Stages[i]
		}
	}
	return nil
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search   string
	ClassID  string
	Degree   DegreeTrack
	StageID  int
	Batch    string
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
