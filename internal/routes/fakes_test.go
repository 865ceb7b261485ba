package routes

import (
	"context"
	"errors"
	"sort"
	"sync"

	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
)

// fakeUsers is an in-memory user table with a unique email index.
type fakeUsers struct {
	mu    sync.Mutex
	next  uint
	users map[uint]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uint]models.User{}}
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.next++
	user.ID = f.next
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// fakeDoctors is an in-memory doctor table.
type fakeDoctors struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

func (f *fakeDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctors) Create(ctx context.Context, doctor *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doctor.DID = uint(len(f.doctors) + 1)
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctors) FindByDept(ctx context.Context, dept string) (*models.Doctor, error) {
	return f.find(func(d models.Doctor) bool { return d.Dept == dept })
}

func (f *fakeDoctors) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	return f.find(func(d models.Doctor) bool { return d.Doctorname == name })
}

func (f *fakeDoctors) find(match func(models.Doctor) bool) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.doctors {
		if match(d) {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakeAppointments is an in-memory appointment table.
type fakeAppointments struct {
	mu   sync.Mutex
	next uint
	rows map[uint]models.Patient
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{rows: map[uint]models.Patient{}}
}

func (f *fakeAppointments) List(ctx context.Context) ([]models.Patient, error) {
	return f.filter(func(models.Patient) bool { return true }), nil
}

func (f *fakeAppointments) ListByEmail(ctx context.Context, email string) ([]models.Patient, error) {
	return f.filter(func(p models.Patient) bool { return p.Email == email }), nil
}

func (f *fakeAppointments) filter(keep func(models.Patient) bool) []models.Patient {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Patient
	for _, p := range f.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

func (f *fakeAppointments) FindByID(ctx context.Context, pid uint) (*models.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[pid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeAppointments) Create(ctx context.Context, appointment *models.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	appointment.PID = f.next
	f.rows[appointment.PID] = *appointment
	return nil
}

func (f *fakeAppointments) Update(ctx context.Context, appointment models.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[appointment.PID]; ok {
		f.rows[appointment.PID] = appointment
	}
	return nil
}

func (f *fakeAppointments) Delete(ctx context.Context, appointment models.Patient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, appointment.PID)
	return nil
}

func (f *fakeAppointments) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeAudit struct {
	entries []models.Trigr
}

func (f *fakeAudit) List(ctx context.Context) ([]models.Trigr, error) {
	return f.entries, nil
}

type fakeProbe struct {
	down bool
}

func (f *fakeProbe) Ping(ctx context.Context) error {
	if f.down {
		return errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	}
	return nil
}
