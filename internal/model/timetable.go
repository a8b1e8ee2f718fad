package model

import "time"

// Timetable is the weekly schedule document for one class within an
// academic year and term. One document exists per (admin, class, year,
// term); composing again for the same key replaces its periods.
type Timetable struct {
	ID           int               `json:"id"`
	AdminID      int               `json:"-"`
	ClassID      int               `json:"class_id"`
	AcademicYear string            `json:"academic_year"`
	Term         string            `json:"term"`
	TeacherID    *int              `json:"teacher_id,omitempty"`
	IsActive     bool              `json:"is_active"`
	Periods      []TimetablePeriod `json:"periods"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TimetablePeriod is one slot entry inside a timetable. The subject,
// teacher and room names are snapshots copied in at composition time;
// they are not kept in sync with later edits to the referenced rows.
type TimetablePeriod struct {
	DayID       int    `json:"day_id"`
	PeriodID    int    `json:"period_id"`
	SubjectID   *int   `json:"subject_id,omitempty"`
	TeacherID   *int   `json:"teacher_id,omitempty"`
	RoomID      *int   `json:"room_id,omitempty"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
	RoomName    string `json:"room_name"`
	IsBreak     bool   `json:"is_break"`
	BreakType   string `json:"break_type,omitempty"`
}

// ComposeTimetableRequest is the payload for creating or replacing a
// class timetable. Academic year and term default to the current
// calendar year and "1st Term" when omitted.
type ComposeTimetableRequest struct {
	ClassID      int                    `json:"class_id" binding:"required,min=1"`
	AcademicYear string                 `json:"academic_year" binding:"omitempty,max=20"`
	Term         string                 `json:"term" binding:"omitempty,max=20"`
	TeacherID    *int                   `json:"teacher_id" binding:"omitempty,min=1"`
	Periods      []ComposePeriodRequest `json:"periods" binding:"required,min=1,dive"`
}

// ComposePeriodRequest is one desired slot entry in a compose call.
type ComposePeriodRequest struct {
	DayID     int    `json:"day_id" binding:"omitempty,min=1"`
	PeriodID  int    `json:"period_id" binding:"omitempty,min=1"`
	SubjectID *int   `json:"subject_id" binding:"omitempty,min=1"`
	TeacherID *int   `json:"teacher_id" binding:"omitempty,min=1"`
	RoomID    *int   `json:"room_id" binding:"omitempty,min=1"`
	IsBreak   bool   `json:"is_break"`
	BreakType string `json:"break_type" binding:"omitempty,max=30"`
}

// DayTimetable groups the periods scheduled on a single day, preserving
// the stored order of the periods array.
type DayTimetable struct {
	Day     *WeekDay          `json:"day,omitempty"`
	Periods []TimetablePeriod `json:"periods"`
}

// ClassTimetableView is the by-class read projection.
type ClassTimetableView struct {
	Timetable      *Timetable            `json:"timetable"`
	TimetableByDay map[int]*DayTimetable `json:"timetable_by_day"`
}

// TeacherPeriod is a flattened period entry in the by-teacher view,
// tagged with the originating class.
type TeacherPeriod struct {
	TimetablePeriod
	ClassID      int    `json:"class_id"`
	ClassName    string `json:"class_name"`
	Section      string `json:"section"`
	AcademicYear string `json:"academic_year"`
	Term         string `json:"term"`
}

// TeacherTimetableView is the by-teacher read projection across all of
// an admin's timetables. FreePeriods is the sum over every scanned
// document of (total slots minus slots assigned to this teacher in
// that document). It is not the teacher's idle time.
type TeacherTimetableView struct {
	TeacherID      int                     `json:"teacher_id"`
	TimetableByDay map[int][]TeacherPeriod `json:"timetable_by_day"`
	TotalPeriods   int                     `json:"total_periods"`
	ClassPeriods   int                     `json:"class_periods"`
	FreePeriods    int                     `json:"free_periods"`
}

// AvailableResources lists the reference data a timetable composer UI
// can draw from.
type AvailableResources struct {
	WeekDays   []WeekDay    `json:"week_days"`
	Periods    []TimePeriod `json:"periods"`
	Classrooms []Classroom  `json:"classrooms"`
	Subjects   []Subject    `json:"subjects"`
	Teachers   []Employee   `json:"teachers"`
}
