package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/config"
	"github.com/edulink/edulink-backend/internal/model"
)

// DefaultTerm is assumed when a compose request omits the term.
const DefaultTerm = "1st Term"

// TimetableStore is the data-access contract for timetable documents.
type TimetableStore interface {
	Find(ctx context.Context, adminID, classID int, academicYear, term string) (*model.Timetable, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Timetable, error)
	List(ctx context.Context, adminID, limit, offset int) ([]model.Timetable, int, error)
	ListAll(ctx context.Context, adminID int, academicYear, term string) ([]model.Timetable, error)
	Create(ctx context.Context, t *model.Timetable) error
	Update(ctx context.Context, t *model.Timetable) error
	Delete(ctx context.Context, adminID, id int) error
	ToggleActive(ctx context.Context, adminID, id int) (*model.Timetable, error)
}

// TimetableService implements timetable composition and its two read
// projections. Composition snapshots subject/teacher/room names into
// the document; the projections only regroup what is stored.
type TimetableService struct {
	store      TimetableStore
	classes    ClassStore
	weekDays   WeekDayStore
	periods    TimePeriodStore
	classrooms ClassroomStore
	subjects   SubjectStore
	employees  EmployeeStore
	rdb        *redis.Client
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewTimetableService creates a new TimetableService. rdb may be nil,
// which disables the by-class read cache.
func NewTimetableService(
	store TimetableStore,
	classes ClassStore,
	weekDays WeekDayStore,
	periods TimePeriodStore,
	classrooms ClassroomStore,
	subjects SubjectStore,
	employees EmployeeStore,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *TimetableService {
	return &TimetableService{
		store:      store,
		classes:    classes,
		weekDays:   weekDays,
		periods:    periods,
		classrooms: classrooms,
		subjects:   subjects,
		employees:  employees,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		log:        log.With().Str("component", "timetable_service").Logger(),
	}
}

// referenceMaps indexes the admin's registries by id for period
// resolution.
type referenceMaps struct {
	days     map[int]model.WeekDay
	periods  map[int]model.TimePeriod
	rooms    map[int]model.Classroom
	subjects map[int]model.Subject
	teachers map[int]model.Employee
}

func (s *TimetableService) loadReferenceMaps(ctx context.Context, adminID int) (*referenceMaps, error) {
	days, err := s.weekDays.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load week days: %w", err)
	}
	periods, err := s.periods.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load time periods: %w", err)
	}
	rooms, err := s.classrooms.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load classrooms: %w", err)
	}
	subjects, err := s.subjects.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	teachers, err := s.employees.ListActiveByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}

	m := &referenceMaps{
		days:     make(map[int]model.WeekDay, len(days)),
		periods:  make(map[int]model.TimePeriod, len(periods)),
		rooms:    make(map[int]model.Classroom, len(rooms)),
		subjects: make(map[int]model.Subject, len(subjects)),
		teachers: make(map[int]model.Employee, len(teachers)),
	}
	for _, d := range days {
		m.days[d.ID] = d
	}
	for _, p := range periods {
		m.periods[p.ID] = p
	}
	for _, r := range rooms {
		m.rooms[r.ID] = r
	}
	for _, sub := range subjects {
		m.subjects[sub.ID] = sub
	}
	for _, t := range teachers {
		m.teachers[t.ID] = t
	}
	return m, nil
}

// buildPeriods resolves each requested slot against the reference maps,
// snapshotting display names. Slot order is preserved as given; no
// overlap or double-booking checks are applied.
func buildPeriods(reqs []model.ComposePeriodRequest, refs *referenceMaps) ([]model.TimetablePeriod, error) {
	out := make([]model.TimetablePeriod, 0, len(reqs))
	for _, req := range reqs {
		if req.DayID != 0 {
			if _, ok := refs.days[req.DayID]; !ok {
				return nil, &BadReferenceError{Kind: "day", ID: req.DayID}
			}
		}
		if req.PeriodID != 0 {
			if _, ok := refs.periods[req.PeriodID]; !ok {
				return nil, &BadReferenceError{Kind: "period", ID: req.PeriodID}
			}
		}

		p := model.TimetablePeriod{
			DayID:     req.DayID,
			PeriodID:  req.PeriodID,
			IsBreak:   req.IsBreak,
			BreakType: req.BreakType,
		}

		if req.SubjectID != nil {
			sub, ok := refs.subjects[*req.SubjectID]
			if !ok {
				return nil, &BadReferenceError{Kind: "subject", ID: *req.SubjectID}
			}
			p.SubjectID = req.SubjectID
			p.SubjectName = sub.Name
		}
		if req.TeacherID != nil {
			t, ok := refs.teachers[*req.TeacherID]
			if !ok {
				return nil, &BadReferenceError{Kind: "teacher", ID: *req.TeacherID}
			}
			p.TeacherID = req.TeacherID
			p.TeacherName = t.Name
		}
		if req.RoomID != nil {
			room, ok := refs.rooms[*req.RoomID]
			if !ok {
				return nil, &BadReferenceError{Kind: "room", ID: *req.RoomID}
			}
			p.RoomID = req.RoomID
			p.RoomName = room.Name
		}

		out = append(out, p)
	}
	return out, nil
}

// Compose creates or replaces the timetable for (class, year, term).
// The returned created flag distinguishes insert from replacement so
// the handler can answer 201 vs 200. An omitted year or term acts as a
// wildcard on the lookup and defaults (current calendar year,
// DefaultTerm) only when a new document is created. A missing class or
// document-level teacher is a not-found, unlike the per-period
// references, which answer with a bad-reference error.
func (s *TimetableService) Compose(ctx context.Context, adminID int, req *model.ComposeTimetableRequest) (*model.Timetable, bool, error) {
	if _, err := s.classes.GetByID(ctx, adminID, req.ClassID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("load class: %w", err)
	}

	// The document-level teacher is checked for bare existence only,
	// not tenant membership.
	if req.TeacherID != nil {
		if _, err := s.employees.GetByIDUnscoped(ctx, *req.TeacherID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, false, ErrNotFound
			}
			return nil, false, fmt.Errorf("load teacher: %w", err)
		}
	}

	refs, err := s.loadReferenceMaps(ctx, adminID)
	if err != nil {
		return nil, false, err
	}
	periods, err := buildPeriods(req.Periods, refs)
	if err != nil {
		return nil, false, err
	}

	created := false
	doc, err := s.store.Find(ctx, adminID, req.ClassID, req.AcademicYear, req.Term)
	switch {
	case err == nil:
		if req.AcademicYear != "" {
			doc.AcademicYear = req.AcademicYear
		}
		if req.Term != "" {
			doc.Term = req.Term
		}
		doc.TeacherID = req.TeacherID
		doc.Periods = periods
		if err := s.store.Update(ctx, doc); err != nil {
			return nil, false, err
		}
	case errors.Is(err, pgx.ErrNoRows):
		created = true
		academicYear := req.AcademicYear
		if academicYear == "" {
			academicYear = strconv.Itoa(time.Now().Year())
		}
		term := req.Term
		if term == "" {
			term = DefaultTerm
		}
		doc = &model.Timetable{
			AdminID:      adminID,
			ClassID:      req.ClassID,
			AcademicYear: academicYear,
			Term:         term,
			TeacherID:    req.TeacherID,
			IsActive:     true,
			Periods:      periods,
		}
		if err := s.store.Create(ctx, doc); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, err
	}

	s.invalidateClassCache(ctx, adminID, req.ClassID)
	s.log.Info().
		Int("admin_id", adminID).
		Int("class_id", req.ClassID).
		Str("academic_year", doc.AcademicYear).
		Str("term", doc.Term).
		Bool("created", created).
		Int("periods", len(periods)).
		Msg("timetable composed")

	return doc, created, nil
}

// GetByClass returns the class projection: the document's periods
// regrouped per day, with each day's registry row attached when it
// still exists. Served from redis when a fresh copy is cached.
func (s *TimetableService) GetByClass(ctx context.Context, adminID, classID int, academicYear, term string) (*model.ClassTimetableView, error) {
	if _, err := s.classes.GetByID(ctx, adminID, classID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load class: %w", err)
	}

	cacheKey := config.CacheKey.TimetableByClassKey(adminID, classID, academicYear, term)
	if view := s.cachedView(ctx, cacheKey); view != nil {
		return view, nil
	}

	doc, err := s.store.Find(ctx, adminID, classID, academicYear, term)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	days, err := s.weekDays.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("load week days: %w", err)
	}
	dayByID := make(map[int]model.WeekDay, len(days))
	for _, d := range days {
		dayByID[d.ID] = d
	}

	view := &model.ClassTimetableView{
		Timetable:      doc,
		TimetableByDay: make(map[int]*model.DayTimetable),
	}
	for _, p := range doc.Periods {
		group, ok := view.TimetableByDay[p.DayID]
		if !ok {
			group = &model.DayTimetable{}
			if d, ok := dayByID[p.DayID]; ok {
				day := d
				group.Day = &day
			}
			view.TimetableByDay[p.DayID] = group
		}
		group.Periods = append(group.Periods, p)
	}

	s.cacheView(ctx, cacheKey, view)
	return view, nil
}

// GetByTeacher flattens every period assigned to one teacher across the
// admin's timetables, grouped per day. FreePeriods accumulates, per
// scanned document, the count of slots not assigned to this teacher.
func (s *TimetableService) GetByTeacher(ctx context.Context, adminID, teacherID int, academicYear, term string) (*model.TeacherTimetableView, error) {
	teacher, err := s.employees.GetByID(ctx, adminID, teacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load teacher: %w", err)
	}

	docs, err := s.store.ListAll(ctx, adminID, academicYear, term)
	if err != nil {
		return nil, err
	}

	view := &model.TeacherTimetableView{
		TeacherID:      teacher.ID,
		TimetableByDay: make(map[int][]model.TeacherPeriod),
	}

	classNames := make(map[int]*model.Class)
	for _, doc := range docs {
		matched := 0
		for _, p := range doc.Periods {
			if p.TeacherID == nil || *p.TeacherID != teacherID {
				continue
			}
			matched++

			class, ok := classNames[doc.ClassID]
			if !ok {
				class, err = s.classes.GetByID(ctx, adminID, doc.ClassID)
				if err != nil && !errors.Is(err, pgx.ErrNoRows) {
					return nil, fmt.Errorf("load class %d: %w", doc.ClassID, err)
				}
				classNames[doc.ClassID] = class
			}

			entry := model.TeacherPeriod{
				TimetablePeriod: p,
				ClassID:         doc.ClassID,
				AcademicYear:    doc.AcademicYear,
				Term:            doc.Term,
			}
			if class != nil {
				entry.ClassName = class.ClassName
				entry.Section = class.Section
			}
			view.TimetableByDay[p.DayID] = append(view.TimetableByDay[p.DayID], entry)

			if p.IsBreak {
				continue
			}
			view.ClassPeriods++
		}
		view.TotalPeriods += matched
		view.FreePeriods += len(doc.Periods) - matched
	}

	return view, nil
}

// Get retrieves a timetable document by id.
func (s *TimetableService) Get(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	doc, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// List returns the admin's timetable documents, newest first.
func (s *TimetableService) List(ctx context.Context, adminID, limit, offset int) ([]model.Timetable, int, error) {
	return s.store.List(ctx, adminID, limit, offset)
}

// Delete removes a timetable document and its cached projections.
func (s *TimetableService) Delete(ctx context.Context, adminID, id int) error {
	doc, err := s.Get(ctx, adminID, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateClassCache(ctx, adminID, doc.ClassID)
	return nil
}

// ToggleActive flips a timetable's active flag.
func (s *TimetableService) ToggleActive(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	doc, err := s.store.ToggleActive(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.invalidateClassCache(ctx, adminID, doc.ClassID)
	return doc, nil
}

// AvailableResources lists the registries a composer UI draws from.
func (s *TimetableService) AvailableResources(ctx context.Context, adminID int) (*model.AvailableResources, error) {
	days, err := s.weekDays.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	periods, err := s.periods.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.classrooms.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	teachers, err := s.employees.ListActiveByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return &model.AvailableResources{
		WeekDays:   days,
		Periods:    periods,
		Classrooms: rooms,
		Subjects:   subjects,
		Teachers:   teachers,
	}, nil
}

func (s *TimetableService) cachedView(ctx context.Context, key string) *model.ClassTimetableView {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("timetable cache read failed")
		}
		return nil
	}
	view := &model.ClassTimetableView{}
	if err := json.Unmarshal(raw, view); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("timetable cache decode failed")
		return nil
	}
	return view
}

func (s *TimetableService) cacheView(ctx context.Context, key string, view *model.ClassTimetableView) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("timetable cache encode failed")
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("timetable cache write failed")
	}
}

func (s *TimetableService) invalidateClassCache(ctx context.Context, adminID, classID int) {
	if s.rdb == nil {
		return
	}
	pattern := config.CacheKey.TimetableByClassPattern(adminID, classID)
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", iter.Val()).Msg("timetable cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Warn().Err(err).Str("pattern", pattern).Msg("timetable cache scan failed")
	}
}
