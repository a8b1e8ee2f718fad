package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/model"
)

// In-memory store fakes shared by the service tests. Misses surface
// pgx.ErrNoRows, matching the repository layer.

type fakeWeekDayStore struct {
	nextID int
	days   map[int]model.WeekDay
}

func newFakeWeekDayStore() *fakeWeekDayStore {
	return &fakeWeekDayStore{days: make(map[int]model.WeekDay)}
}

func (f *fakeWeekDayStore) ListByAdmin(ctx context.Context, adminID int) ([]model.WeekDay, error) {
	var out []model.WeekDay
	for _, d := range f.days {
		if d.AdminID == adminID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeWeekDayStore) GetByID(ctx context.Context, adminID, id int) (*model.WeekDay, error) {
	d, ok := f.days[id]
	if !ok || d.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (f *fakeWeekDayStore) FindCollision(ctx context.Context, adminID int, name, shortName string, sortOrder, excludeID int) (*model.WeekDay, error) {
	for _, d := range f.days {
		if d.AdminID != adminID || d.ID == excludeID {
			continue
		}
		if d.Name == name || d.ShortName == shortName || d.SortOrder == sortOrder {
			return &d, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeWeekDayStore) Create(ctx context.Context, d *model.WeekDay) error {
	f.nextID++
	d.ID = f.nextID
	f.days[d.ID] = *d
	return nil
}

func (f *fakeWeekDayStore) Update(ctx context.Context, d *model.WeekDay) error {
	current, ok := f.days[d.ID]
	if !ok || current.AdminID != d.AdminID {
		return pgx.ErrNoRows
	}
	current.Name = d.Name
	current.ShortName = d.ShortName
	current.SortOrder = d.SortOrder
	f.days[d.ID] = current
	return nil
}

func (f *fakeWeekDayStore) Delete(ctx context.Context, adminID, id int) error {
	d, ok := f.days[id]
	if !ok || d.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.days, id)
	return nil
}

func (f *fakeWeekDayStore) ToggleActive(ctx context.Context, adminID, id int) (*model.WeekDay, error) {
	d, ok := f.days[id]
	if !ok || d.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	d.IsActive = !d.IsActive
	f.days[id] = d
	return &d, nil
}

func (f *fakeWeekDayStore) Stats(ctx context.Context, adminID int) (*model.WeekDayStats, error) {
	stats := &model.WeekDayStats{}
	for _, d := range f.days {
		if d.AdminID != adminID {
			continue
		}
		stats.Total++
		if d.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

type fakeTimePeriodStore struct {
	nextID  int
	periods map[int]model.TimePeriod
}

func newFakeTimePeriodStore() *fakeTimePeriodStore {
	return &fakeTimePeriodStore{periods: make(map[int]model.TimePeriod)}
}

func (f *fakeTimePeriodStore) ListByAdmin(ctx context.Context, adminID int) ([]model.TimePeriod, error) {
	var out []model.TimePeriod
	for _, p := range f.periods {
		if p.AdminID == adminID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeTimePeriodStore) GetByID(ctx context.Context, adminID, id int) (*model.TimePeriod, error) {
	p, ok := f.periods[id]
	if !ok || p.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (f *fakeTimePeriodStore) FindCollision(ctx context.Context, adminID int, name string, sortOrder, excludeID int) (*model.TimePeriod, error) {
	for _, p := range f.periods {
		if p.AdminID != adminID || p.ID == excludeID {
			continue
		}
		if p.Name == name || p.SortOrder == sortOrder {
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTimePeriodStore) Create(ctx context.Context, p *model.TimePeriod) error {
	f.nextID++
	p.ID = f.nextID
	f.periods[p.ID] = *p
	return nil
}

func (f *fakeTimePeriodStore) Update(ctx context.Context, p *model.TimePeriod) error {
	current, ok := f.periods[p.ID]
	if !ok || current.AdminID != p.AdminID {
		return pgx.ErrNoRows
	}
	f.periods[p.ID] = *p
	return nil
}

func (f *fakeTimePeriodStore) Delete(ctx context.Context, adminID, id int) error {
	p, ok := f.periods[id]
	if !ok || p.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.periods, id)
	return nil
}

func (f *fakeTimePeriodStore) Stats(ctx context.Context, adminID int) (*model.TimePeriodStats, error) {
	stats := &model.TimePeriodStats{}
	for _, p := range f.periods {
		if p.AdminID != adminID {
			continue
		}
		stats.Total++
		stats.TotalMinutes += p.DurationMinutes
		if p.Kind == model.PeriodKindBreak {
			stats.BreakPeriods++
		} else {
			stats.ClassPeriods++
		}
	}
	return stats, nil
}

type fakeClassroomStore struct {
	nextID int
	rooms  map[int]model.Classroom
}

func newFakeClassroomStore() *fakeClassroomStore {
	return &fakeClassroomStore{rooms: make(map[int]model.Classroom)}
}

func (f *fakeClassroomStore) ListByAdmin(ctx context.Context, adminID int) ([]model.Classroom, error) {
	var out []model.Classroom
	for _, r := range f.rooms {
		if r.AdminID == adminID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeClassroomStore) GetByID(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	r, ok := f.rooms[id]
	if !ok || r.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &r, nil
}

func (f *fakeClassroomStore) FindByName(ctx context.Context, adminID int, name string, excludeID int) (*model.Classroom, error) {
	for _, r := range f.rooms {
		if r.AdminID == adminID && r.ID != excludeID && r.Name == name {
			return &r, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeClassroomStore) Create(ctx context.Context, c *model.Classroom) error {
	f.nextID++
	c.ID = f.nextID
	f.rooms[c.ID] = *c
	return nil
}

func (f *fakeClassroomStore) Update(ctx context.Context, c *model.Classroom) error {
	current, ok := f.rooms[c.ID]
	if !ok || current.AdminID != c.AdminID {
		return pgx.ErrNoRows
	}
	f.rooms[c.ID] = *c
	return nil
}

func (f *fakeClassroomStore) Delete(ctx context.Context, adminID, id int) error {
	r, ok := f.rooms[id]
	if !ok || r.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeClassroomStore) ToggleAvailable(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	r, ok := f.rooms[id]
	if !ok || r.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	r.IsAvailable = !r.IsAvailable
	f.rooms[id] = r
	return &r, nil
}

func (f *fakeClassroomStore) Stats(ctx context.Context, adminID int) (*model.ClassroomStats, error) {
	stats := &model.ClassroomStats{ByBuilding: map[string]int{}, ByType: map[string]int{}}
	for _, r := range f.rooms {
		if r.AdminID != adminID {
			continue
		}
		stats.Total++
		if r.IsAvailable {
			stats.Available++
		} else {
			stats.Unavailable++
		}
		stats.ByBuilding[r.Building]++
		stats.ByType[r.RoomType]++
	}
	return stats, nil
}

type fakeSubjectStore struct {
	nextID   int
	subjects map[int]model.Subject
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{subjects: make(map[int]model.Subject)}
}

func (f *fakeSubjectStore) ListByAdmin(ctx context.Context, adminID int) ([]model.Subject, error) {
	var out []model.Subject
	for _, s := range f.subjects {
		if s.AdminID == adminID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeSubjectStore) GetByID(ctx context.Context, adminID, id int) (*model.Subject, error) {
	s, ok := f.subjects[id]
	if !ok || s.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

func (f *fakeSubjectStore) FindByCode(ctx context.Context, adminID int, code string, excludeID int) (*model.Subject, error) {
	for _, s := range f.subjects {
		if s.AdminID == adminID && s.ID != excludeID && s.Code == code {
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeSubjectStore) Create(ctx context.Context, sub *model.Subject) error {
	f.nextID++
	sub.ID = f.nextID
	f.subjects[sub.ID] = *sub
	return nil
}

func (f *fakeSubjectStore) Update(ctx context.Context, sub *model.Subject) error {
	current, ok := f.subjects[sub.ID]
	if !ok || current.AdminID != sub.AdminID {
		return pgx.ErrNoRows
	}
	f.subjects[sub.ID] = *sub
	return nil
}

func (f *fakeSubjectStore) Delete(ctx context.Context, adminID, id int) error {
	s, ok := f.subjects[id]
	if !ok || s.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.subjects, id)
	return nil
}

type fakeEmployeeStore struct {
	nextID    int
	employees map[int]model.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[int]model.Employee)}
}

func (f *fakeEmployeeStore) ListByAdmin(ctx context.Context, adminID int, search string, limit, offset int) ([]model.Employee, int, error) {
	var out []model.Employee
	for _, e := range f.employees {
		if e.AdminID == adminID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (f *fakeEmployeeStore) ListActiveByAdmin(ctx context.Context, adminID int) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range f.employees {
		if e.AdminID == adminID && e.Status == model.EmployeeStatusActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployeeStore) GetByID(ctx context.Context, adminID, id int) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (f *fakeEmployeeStore) GetByIDUnscoped(ctx context.Context, id int) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (f *fakeEmployeeStore) Create(ctx context.Context, e *model.Employee) error {
	f.nextID++
	e.ID = f.nextID
	f.employees[e.ID] = *e
	return nil
}

func (f *fakeEmployeeStore) Update(ctx context.Context, e *model.Employee) error {
	current, ok := f.employees[e.ID]
	if !ok || current.AdminID != e.AdminID {
		return pgx.ErrNoRows
	}
	e.PhotoURL = current.PhotoURL
	e.PhotoKey = current.PhotoKey
	f.employees[e.ID] = *e
	return nil
}

func (f *fakeEmployeeStore) SetPhoto(ctx context.Context, adminID, id int, url, key string) error {
	e, ok := f.employees[id]
	if !ok || e.AdminID != adminID {
		return pgx.ErrNoRows
	}
	e.PhotoURL = url
	e.PhotoKey = key
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeStore) Delete(ctx context.Context, adminID, id int) error {
	e, ok := f.employees[id]
	if !ok || e.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.employees, id)
	return nil
}

type fakeClassStore struct {
	nextID          int
	nextMaterialID  int
	classes         map[int]model.Class
	materials       map[int]model.ClassMaterial
	failAddMaterial bool
}

func newFakeClassStore() *fakeClassStore {
	return &fakeClassStore{
		classes:   make(map[int]model.Class),
		materials: make(map[int]model.ClassMaterial),
	}
}

func (f *fakeClassStore) ListByAdmin(ctx context.Context, adminID int, status string, limit, offset int) ([]model.Class, int, error) {
	var out []model.Class
	for _, c := range f.classes {
		if c.AdminID != adminID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (f *fakeClassStore) GetByID(ctx context.Context, adminID, id int) (*model.Class, error) {
	c, ok := f.classes[id]
	if !ok || c.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	c.Materials, _ = f.ListMaterials(ctx, id)
	return &c, nil
}

func (f *fakeClassStore) FindActivePair(ctx context.Context, adminID int, className, section string, excludeID int) (*model.Class, error) {
	for _, c := range f.classes {
		if c.AdminID != adminID || c.ID == excludeID || c.Status == model.ClassStatusCancelled {
			continue
		}
		if c.ClassName == className && c.Section == section {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeClassStore) Create(ctx context.Context, c *model.Class) error {
	f.nextID++
	c.ID = f.nextID
	f.classes[c.ID] = *c
	return nil
}

func (f *fakeClassStore) Update(ctx context.Context, c *model.Class) error {
	current, ok := f.classes[c.ID]
	if !ok || current.AdminID != c.AdminID {
		return pgx.ErrNoRows
	}
	f.classes[c.ID] = *c
	return nil
}

func (f *fakeClassStore) Delete(ctx context.Context, adminID, id int) error {
	c, ok := f.classes[id]
	if !ok || c.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.classes, id)
	for mid, m := range f.materials {
		if m.ClassID == id {
			delete(f.materials, mid)
		}
	}
	return nil
}

func (f *fakeClassStore) ListMaterials(ctx context.Context, classID int) ([]model.ClassMaterial, error) {
	var out []model.ClassMaterial
	for _, m := range f.materials {
		if m.ClassID == classID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeClassStore) AddMaterial(ctx context.Context, m *model.ClassMaterial) error {
	if f.failAddMaterial {
		return errors.New("insert failed")
	}
	f.nextMaterialID++
	m.ID = f.nextMaterialID
	f.materials[m.ID] = *m
	return nil
}

func (f *fakeClassStore) GetMaterial(ctx context.Context, classID, materialID int) (*model.ClassMaterial, error) {
	m, ok := f.materials[materialID]
	if !ok || m.ClassID != classID {
		return nil, pgx.ErrNoRows
	}
	return &m, nil
}

func (f *fakeClassStore) DeleteMaterial(ctx context.Context, classID, materialID int) error {
	m, ok := f.materials[materialID]
	if !ok || m.ClassID != classID {
		return pgx.ErrNoRows
	}
	delete(f.materials, materialID)
	return nil
}

type fakeTimetableStore struct {
	nextID int
	docs   map[int]model.Timetable
}

func newFakeTimetableStore() *fakeTimetableStore {
	return &fakeTimetableStore{docs: make(map[int]model.Timetable)}
}

// Find mirrors the repository: an empty year or term is a wildcard.
func (f *fakeTimetableStore) Find(ctx context.Context, adminID, classID int, academicYear, term string) (*model.Timetable, error) {
	for _, d := range f.docs {
		if d.AdminID != adminID || d.ClassID != classID {
			continue
		}
		if academicYear != "" && d.AcademicYear != academicYear {
			continue
		}
		if term != "" && d.Term != term {
			continue
		}
		return &d, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTimetableStore) GetByID(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	d, ok := f.docs[id]
	if !ok || d.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (f *fakeTimetableStore) List(ctx context.Context, adminID, limit, offset int) ([]model.Timetable, int, error) {
	var out []model.Timetable
	for _, d := range f.docs {
		if d.AdminID == adminID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (f *fakeTimetableStore) ListAll(ctx context.Context, adminID int, academicYear, term string) ([]model.Timetable, error) {
	var out []model.Timetable
	for _, d := range f.docs {
		if d.AdminID != adminID {
			continue
		}
		if academicYear != "" && d.AcademicYear != academicYear {
			continue
		}
		if term != "" && d.Term != term {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTimetableStore) Create(ctx context.Context, t *model.Timetable) error {
	f.nextID++
	t.ID = f.nextID
	f.docs[t.ID] = *t
	return nil
}

func (f *fakeTimetableStore) Update(ctx context.Context, t *model.Timetable) error {
	current, ok := f.docs[t.ID]
	if !ok || current.AdminID != t.AdminID {
		return pgx.ErrNoRows
	}
	f.docs[t.ID] = *t
	return nil
}

func (f *fakeTimetableStore) Delete(ctx context.Context, adminID, id int) error {
	d, ok := f.docs[id]
	if !ok || d.AdminID != adminID {
		return pgx.ErrNoRows
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeTimetableStore) ToggleActive(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	d, ok := f.docs[id]
	if !ok || d.AdminID != adminID {
		return nil, pgx.ErrNoRows
	}
	d.IsActive = !d.IsActive
	f.docs[id] = d
	return &d, nil
}

// fakeBlobStore records uploads and deletes without touching disk.
type fakeBlobStore struct {
	nextID     int
	uploaded   []media.Object
	deleted    []string
	failDelete map[string]bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{failDelete: make(map[string]bool)}
}

func (f *fakeBlobStore) Upload(ctx context.Context, r io.Reader, folder, contentType string, size int64) (media.Object, error) {
	f.nextID++
	obj := media.Object{
		URL: fmt.Sprintf("/uploads/%s/file-%d", folder, f.nextID),
		Key: fmt.Sprintf("%s/file-%d", folder, f.nextID),
	}
	f.uploaded = append(f.uploaded, obj)
	return obj, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.failDelete[key] {
		return errors.New("delete failed")
	}
	return nil
}
