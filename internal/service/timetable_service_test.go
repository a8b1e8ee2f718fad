package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

func intPtr(v int) *int { return &v }

// timetableFixture seeds a tenant with one class, two days, two
// periods, one room, one subject and one active teacher.
type timetableFixture struct {
	store     *fakeTimetableStore
	classes   *fakeClassStore
	weekDays  *fakeWeekDayStore
	periods   *fakeTimePeriodStore
	rooms     *fakeClassroomStore
	subjects  *fakeSubjectStore
	employees *fakeEmployeeStore
	svc       *TimetableService

	classID   int
	dayIDs    []int
	periodIDs []int
	roomID    int
	subjectID int
	teacherID int
}

func newTimetableFixture(t *testing.T) *timetableFixture {
	t.Helper()
	ctx := context.Background()

	f := &timetableFixture{
		store:     newFakeTimetableStore(),
		classes:   newFakeClassStore(),
		weekDays:  newFakeWeekDayStore(),
		periods:   newFakeTimePeriodStore(),
		rooms:     newFakeClassroomStore(),
		subjects:  newFakeSubjectStore(),
		employees: newFakeEmployeeStore(),
	}
	f.svc = NewTimetableService(
		f.store, f.classes, f.weekDays, f.periods,
		f.rooms, f.subjects, f.employees,
		nil, time.Minute, zerolog.Nop(),
	)

	class := &model.Class{AdminID: 1, ClassName: "Grade 10", Section: "A", Status: model.ClassStatusActive}
	if err := f.classes.Create(ctx, class); err != nil {
		t.Fatalf("seed class: %v", err)
	}
	f.classID = class.ID

	for i, name := range []string{"Monday", "Tuesday"} {
		day := &model.WeekDay{AdminID: 1, Name: name, ShortName: name[:3], IsActive: true, SortOrder: i + 1}
		if err := f.weekDays.Create(ctx, day); err != nil {
			t.Fatalf("seed day: %v", err)
		}
		f.dayIDs = append(f.dayIDs, day.ID)
	}

	for i, name := range []string{"Period 1", "Period 2"} {
		p := &model.TimePeriod{AdminID: 1, Name: name, StartTime: "08:00", EndTime: "08:45", DurationMinutes: 45, Kind: model.PeriodKindClass, SortOrder: i + 1}
		if err := f.periods.Create(ctx, p); err != nil {
			t.Fatalf("seed period: %v", err)
		}
		f.periodIDs = append(f.periodIDs, p.ID)
	}

	room := &model.Classroom{AdminID: 1, Name: "Room 101", IsAvailable: true}
	if err := f.rooms.Create(ctx, room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	f.roomID = room.ID

	subject := &model.Subject{AdminID: 1, Name: "Mathematics", Code: "MATH"}
	if err := f.subjects.Create(ctx, subject); err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	f.subjectID = subject.ID

	teacher := &model.Employee{AdminID: 1, Name: "Alice Teacher", Status: model.EmployeeStatusActive}
	if err := f.employees.Create(ctx, teacher); err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	f.teacherID = teacher.ID

	return f
}

func TestComposeCreatesThenReplaces(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	req := &model.ComposeTimetableRequest{
		ClassID:      f.classID,
		AcademicYear: "2026",
		Term:         "1st Term",
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], SubjectID: intPtr(f.subjectID), TeacherID: intPtr(f.teacherID), RoomID: intPtr(f.roomID)},
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[1], IsBreak: true, BreakType: "lunch"},
		},
	}

	doc, created, err := f.svc.Compose(ctx, 1, req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !created {
		t.Fatal("first compose should create")
	}
	if len(doc.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(doc.Periods))
	}
	if doc.Periods[0].SubjectName != "Mathematics" {
		t.Fatalf("expected subject name snapshot, got %q", doc.Periods[0].SubjectName)
	}
	if doc.Periods[0].TeacherName != "Alice Teacher" {
		t.Fatalf("expected teacher name snapshot, got %q", doc.Periods[0].TeacherName)
	}
	if doc.Periods[0].RoomName != "Room 101" {
		t.Fatalf("expected room name snapshot, got %q", doc.Periods[0].RoomName)
	}
	if !doc.IsActive {
		t.Fatal("new document should be active")
	}

	// Composing again for the same key replaces the periods in place.
	req.Periods = req.Periods[:1]
	replaced, created, err := f.svc.Compose(ctx, 1, req)
	if err != nil {
		t.Fatalf("second Compose: %v", err)
	}
	if created {
		t.Fatal("second compose should replace, not create")
	}
	if replaced.ID != doc.ID {
		t.Fatalf("expected same document id %d, got %d", doc.ID, replaced.ID)
	}
	if len(replaced.Periods) != 1 {
		t.Fatalf("expected periods replaced to 1, got %d", len(replaced.Periods))
	}
	if len(f.store.docs) != 1 {
		t.Fatalf("expected a single stored document, got %d", len(f.store.docs))
	}
}

func TestComposeDefaultsYearAndTerm(t *testing.T) {
	f := newTimetableFixture(t)

	doc, _, err := f.svc.Compose(context.Background(), 1, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if doc.AcademicYear != strconv.Itoa(time.Now().Year()) {
		t.Fatalf("expected current year default, got %q", doc.AcademicYear)
	}
	if doc.Term != DefaultTerm {
		t.Fatalf("expected term %q, got %q", DefaultTerm, doc.Term)
	}
}

func TestComposeRejectsForeignClass(t *testing.T) {
	f := newTimetableFixture(t)

	// A class owned by another tenant is a scoped miss, not a bad
	// reference.
	_, _, err := f.svc.Compose(context.Background(), 2, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(f.store.docs) != 0 {
		t.Fatal("nothing may be persisted on a failed compose")
	}
}

func TestComposeRejectsUnknownReferences(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	cases := []struct {
		kind   string
		period model.ComposePeriodRequest
	}{
		{"day", model.ComposePeriodRequest{DayID: 99, PeriodID: f.periodIDs[0]}},
		{"period", model.ComposePeriodRequest{DayID: f.dayIDs[0], PeriodID: 99}},
		{"subject", model.ComposePeriodRequest{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], SubjectID: intPtr(99)}},
		{"teacher", model.ComposePeriodRequest{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], TeacherID: intPtr(99)}},
		{"room", model.ComposePeriodRequest{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], RoomID: intPtr(99)}},
	}
	for _, tc := range cases {
		_, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
			ClassID: f.classID,
			Periods: []model.ComposePeriodRequest{tc.period},
		})
		var badRef *BadReferenceError
		if !errors.As(err, &badRef) {
			t.Fatalf("%s: expected BadReferenceError, got %v", tc.kind, err)
		}
		if badRef.Kind != tc.kind {
			t.Fatalf("expected reference kind %q, got %q", tc.kind, badRef.Kind)
		}
	}
	if len(f.store.docs) != 0 {
		t.Fatal("nothing may be persisted on a failed compose")
	}
}

func TestComposeSlotTeacherMustBeActiveTenantMember(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	inactive := &model.Employee{AdminID: 1, Name: "Bob Inactive", Status: model.EmployeeStatusInactive}
	if err := f.employees.Create(ctx, inactive); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], TeacherID: intPtr(inactive.ID)},
		},
	})
	var badRef *BadReferenceError
	if !errors.As(err, &badRef) || badRef.Kind != "teacher" {
		t.Fatalf("expected teacher reference error for inactive teacher, got %v", err)
	}
}

func TestComposeDocumentTeacherCheckedUnscoped(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	// A teacher belonging to another tenant still passes the
	// document-level existence check.
	foreign := &model.Employee{AdminID: 2, Name: "Foreign Teacher", Status: model.EmployeeStatusActive}
	if err := f.employees.Create(ctx, foreign); err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:   f.classID,
		TeacherID: intPtr(foreign.ID),
		Periods:   []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if doc.TeacherID == nil || *doc.TeacherID != foreign.ID {
		t.Fatalf("expected document teacher %d, got %v", foreign.ID, doc.TeacherID)
	}

	_, _, err = f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:   f.classID,
		TeacherID: intPtr(99),
		Periods:   []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown document teacher, got %v", err)
	}
}

func TestComposeOmittedYearMatchesExistingDocument(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	doc, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:      f.classID,
		AcademicYear: "2019",
		Term:         "2nd Term",
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]},
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[1]},
		},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	// An omitted year/term is a wildcard on the lookup: the existing
	// document is replaced, keeping its own year and term.
	replaced, created, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if err != nil {
		t.Fatalf("second Compose: %v", err)
	}
	if created {
		t.Fatal("expected replacement, not a second document")
	}
	if replaced.ID != doc.ID {
		t.Fatalf("expected same document id %d, got %d", doc.ID, replaced.ID)
	}
	if replaced.AcademicYear != "2019" || replaced.Term != "2nd Term" {
		t.Fatalf("expected stored year/term kept, got %s/%s", replaced.AcademicYear, replaced.Term)
	}
	if len(replaced.Periods) != 1 {
		t.Fatalf("expected periods replaced to 1, got %d", len(replaced.Periods))
	}
	if len(f.store.docs) != 1 {
		t.Fatalf("expected a single stored document, got %d", len(f.store.docs))
	}
}

func TestComposeBareSlotDefaults(t *testing.T) {
	f := newTimetableFixture(t)

	doc, created, err := f.svc.Compose(context.Background(), 1, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !created {
		t.Fatal("expected creation")
	}

	slot := doc.Periods[0]
	if slot.IsBreak {
		t.Fatal("slot must not be a break unless marked")
	}
	if slot.SubjectName != "" || slot.TeacherName != "" || slot.RoomName != "" {
		t.Fatalf("expected empty snapshots without references, got %+v", slot)
	}
	if slot.SubjectID != nil || slot.TeacherID != nil || slot.RoomID != nil {
		t.Fatalf("expected nil reference ids, got %+v", slot)
	}
}

func TestGetByClassGroupsEveryPeriod(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	doc, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:      f.classID,
		AcademicYear: "2026",
		Term:         "1st Term",
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]},
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[1]},
			{DayID: f.dayIDs[1], PeriodID: f.periodIDs[0]},
		},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	view, err := f.svc.GetByClass(ctx, 1, f.classID, "2026", "1st Term")
	if err != nil {
		t.Fatalf("GetByClass: %v", err)
	}

	total := 0
	for _, group := range view.TimetableByDay {
		total += len(group.Periods)
	}
	if total != len(doc.Periods) {
		t.Fatalf("day buckets hold %d periods, document has %d", total, len(doc.Periods))
	}
	if len(view.TimetableByDay) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(view.TimetableByDay))
	}

	monday := view.TimetableByDay[f.dayIDs[0]]
	if monday == nil || len(monday.Periods) != 2 {
		t.Fatalf("expected 2 periods on Monday, got %+v", monday)
	}
	if monday.Day == nil || monday.Day.Name != "Monday" {
		t.Fatalf("expected day row attached, got %+v", monday.Day)
	}
}

func TestGetByClassMisses(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	if _, err := f.svc.GetByClass(ctx, 1, 99, "2026", "1st Term"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown class: expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.GetByClass(ctx, 1, f.classID, "2026", "1st Term"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no document: expected ErrNotFound, got %v", err)
	}
}

func TestGetByTeacherCounters(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	other := &model.Employee{AdminID: 1, Name: "Carol Teacher", Status: model.EmployeeStatusActive}
	if err := f.employees.Create(ctx, other); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Document one: 2 of 4 slots for Alice, one of them a break.
	if _, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:      f.classID,
		AcademicYear: "2026",
		Term:         "1st Term",
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], TeacherID: intPtr(f.teacherID), SubjectID: intPtr(f.subjectID)},
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[1], TeacherID: intPtr(f.teacherID), IsBreak: true, BreakType: "recess"},
			{DayID: f.dayIDs[1], PeriodID: f.periodIDs[0], TeacherID: intPtr(other.ID)},
			{DayID: f.dayIDs[1], PeriodID: f.periodIDs[1]},
		},
	}); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	// Document two, second class: 1 of 2 slots for Alice.
	second := &model.Class{AdminID: 1, ClassName: "Grade 11", Section: "B", Status: model.ClassStatusActive}
	if err := f.classes.Create(ctx, second); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID:      second.ID,
		AcademicYear: "2026",
		Term:         "1st Term",
		Periods: []model.ComposePeriodRequest{
			{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0], TeacherID: intPtr(f.teacherID)},
			{DayID: f.dayIDs[1], PeriodID: f.periodIDs[0]},
		},
	}); err != nil {
		t.Fatalf("Compose second: %v", err)
	}

	view, err := f.svc.GetByTeacher(ctx, 1, f.teacherID, "2026", "1st Term")
	if err != nil {
		t.Fatalf("GetByTeacher: %v", err)
	}

	if view.TotalPeriods != 3 {
		t.Fatalf("expected 3 total periods, got %d", view.TotalPeriods)
	}
	if view.ClassPeriods != 2 {
		t.Fatalf("expected 2 class periods (break excluded), got %d", view.ClassPeriods)
	}
	// Per document: (4-2) + (2-1).
	if view.FreePeriods != 3 {
		t.Fatalf("expected 3 free periods, got %d", view.FreePeriods)
	}

	entries := 0
	for _, periods := range view.TimetableByDay {
		for _, p := range periods {
			entries++
			if p.ClassName == "" {
				t.Fatalf("expected class name on entry %+v", p)
			}
		}
	}
	if entries != view.TotalPeriods {
		t.Fatalf("expected %d flattened entries, got %d", view.TotalPeriods, entries)
	}
}

func TestGetByTeacherUnknownTeacher(t *testing.T) {
	f := newTimetableFixture(t)

	if _, err := f.svc.GetByTeacher(context.Background(), 1, 99, "", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTimetableDeleteAndToggle(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	doc, _, err := f.svc.Compose(ctx, 1, &model.ComposeTimetableRequest{
		ClassID: f.classID,
		Periods: []model.ComposePeriodRequest{{DayID: f.dayIDs[0], PeriodID: f.periodIDs[0]}},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	toggled, err := f.svc.ToggleActive(ctx, 1, doc.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected document deactivated")
	}

	if err := f.svc.Delete(ctx, 1, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := f.svc.Delete(ctx, 1, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAvailableResources(t *testing.T) {
	f := newTimetableFixture(t)

	res, err := f.svc.AvailableResources(context.Background(), 1)
	if err != nil {
		t.Fatalf("AvailableResources: %v", err)
	}
	if len(res.WeekDays) != 2 || len(res.Periods) != 2 || len(res.Classrooms) != 1 || len(res.Subjects) != 1 || len(res.Teachers) != 1 {
		t.Fatalf("unexpected resource counts: %+v", res)
	}
}
