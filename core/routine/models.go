package routine

import "time"

// CourseRegistration is one student registered for one backlog course.
type CourseRegistration struct {
	StudentID  int    `json:"student_id" db:"student_id" csv:"student_id" validate:"required,min=1"`
	CourseID   int    `json:"course_id" db:"course_id" csv:"course_id" validate:"required,min=1"`
	CourseCode string `json:"course_code" db:"course_code" csv:"course_code" validate:"required,notblank"`
}

// Course is a backlog course examined on a single exam day.
type Course struct {
	ID   int    `json:"course_id"`
	Code string `json:"course_code"`
}

// Schedule maps exam day indices (0-based, dense) to the courses examined that day.
type Schedule struct {
	NumDays  int              `json:"num_days"`
	ExamDays map[int][]Course `json:"exam_days"`
}

// CourseCount returns the number of courses scheduled over all days.
func (s Schedule) CourseCount() int {
	var n int
	for _, courses := range s.ExamDays {
		n += len(courses)
	}
	return n
}

// BacklogGroup is a batch of backlog registrations examined together.
type BacklogGroup struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Session      string    `json:"session,omitempty"`
	CourseCount  int       `json:"course_count"`
	StudentCount int       `json:"student_count"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

// Routine is the schedule generated for a BacklogGroup.
type Routine struct {
	Group    BacklogGroup `json:"group"`
	Schedule Schedule     `json:"schedule"`
}
