package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type testApp struct {
	users        *fakeUsers
	doctors      *fakeDoctors
	appointments *fakeAppointments
	audit        *fakeAudit
	probe        *fakeProbe
	router       *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	app := &testApp{
		users:        newFakeUsers(),
		doctors:      &fakeDoctors{},
		appointments: newFakeAppointments(),
		audit:        &fakeAudit{},
		probe:        &fakeProbe{},
	}
	router, err := NewRouter(Dependencies{
		Users:        app.users,
		Doctors:      app.doctors,
		Appointments: app.appointments,
		Audit:        app.audit,
		Probe:        app.probe,
		Sessions:     session.NewCookieStore("test-secret", session.CookieOptions{Name: "hms_session", MaxAge: 3600}),
	}, "http://localhost:5000")
	require.NoError(t, err)
	app.router = router
	return app
}

// browser keeps cookies between requests like a real client would.
type browser struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser(t *testing.T) *browser {
	return &browser{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.app.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

// follow asserts a redirect to location and loads it.
func (b *browser) follow(rec *httptest.ResponseRecorder, location string) *httptest.ResponseRecorder {
	b.t.Helper()
	require.Equal(b.t, http.StatusFound, rec.Code)
	require.Equal(b.t, location, rec.Header().Get("Location"))
	return b.get(location)
}

func (b *browser) signupAndLogin(username, usertype, email, password string) {
	b.t.Helper()
	rec := b.post("/signup", url.Values{
		"username": {username}, "usertype": {usertype}, "email": {email}, "password": {password},
	})
	b.follow(rec, "/login")

	rec = b.post("/login", url.Values{"email": {email}, "password": {password}})
	page := b.follow(rec, "/")
	require.Contains(b.t, page.Body.String(), "Login Success")
}

func bookingForm(email, name, slot, number string) url.Values {
	return url.Values{
		"email":   {email},
		"name":    {name},
		"gender":  {"Female"},
		"slot":    {slot},
		"disease": {"flu"},
		"time":    {"10:00"},
		"date":    {"2024-01-01"},
		"dept":    {"General"},
		"number":  {number},
	}
}

func TestEndToEnd_BookEditDelete(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.post("/patients", bookingForm("a@x.com", "Ann", "morning", "1234567890"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking Confirmed")
	require.Equal(t, 1, app.appointments.count())

	rec = b.get("/bookings")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
	assert.Contains(t, rec.Body.String(), `<td class="slot">morning</td>`)

	rec = b.get("/edit/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="morning"`)

	rec = b.post("/edit/1", bookingForm("a@x.com", "Ann", "evening", "1234567890"))
	page := b.follow(rec, "/bookings")
	assert.Contains(t, page.Body.String(), "Slot Updated")
	assert.Contains(t, page.Body.String(), `<td class="slot">evening</td>`)
	assert.NotContains(t, page.Body.String(), `<td class="slot">morning</td>`)

	rec = b.get("/delete/1")
	page = b.follow(rec, "/bookings")
	assert.Contains(t, page.Body.String(), "Slot Deleted Successfully")
	assert.NotContains(t, page.Body.String(), "/edit/1")
	assert.Equal(t, 0, app.appointments.count())
}

func TestBooking_RejectsShortNumber(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.post("/patients", bookingForm("a@x.com", "Zed Uniquename", "morning", "12345"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide a 10-digit number")
	assert.NotContains(t, rec.Body.String(), "Booking Confirmed")
	assert.NotContains(t, rec.Body.String(), "Zed Uniquename")
	assert.Equal(t, 0, app.appointments.count())
}

func TestBooking_RejectsAnyLengthOtherThanTen(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	for _, number := range []string{"", "123456789", "12345678901"} {
		rec := b.post("/patients", bookingForm("a@x.com", "Ann", "morning", number))
		assert.Contains(t, rec.Body.String(), "Please provide a 10-digit number", number)
	}
	assert.Equal(t, 0, app.appointments.count())
}

func TestBooking_RequiresDateAndTime(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	form := bookingForm("a@x.com", "Ann", "morning", "1234567890")
	form.Del("date")
	rec := b.post("/patients", form)
	assert.Contains(t, rec.Body.String(), "Please provide the appointment date and time")
	assert.Equal(t, 0, app.appointments.count())
}

func TestBooking_ListsDoctors(t *testing.T) {
	app := newTestApp(t)
	app.doctors.doctors = []models.Doctor{{DID: 1, Doctorname: "House", Dept: "Diagnostics"}}
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.get("/patients")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "House (Diagnostics)")
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	form := url.Values{"username": {"ann"}, "usertype": {"Patient"}, "email": {"a@x.com"}, "password": {"p1"}}
	page := b.follow(b.post("/signup", form), "/login")
	assert.Contains(t, page.Body.String(), "Signup Successful, Please Login")

	form.Set("username", "other")
	rec := b.post("/signup", form)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email Already Exists")
	assert.Equal(t, 1, app.users.count())
}

func TestLogin_RequiresExactPassword(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.users.Create(context.Background(), &models.User{Username: "ann", Usertype: "Patient", Email: "a@x.com", Password: "p1"}))

	cases := []struct {
		email, password string
		ok              bool
	}{
		{"a@x.com", "p1", true},
		{"a@x.com", "P1", false},
		{"a@x.com", "p1 ", false},
		{"a@x.com", "", false},
		{"b@x.com", "p1", false},
	}
	for _, tc := range cases {
		b := app.browser(t)
		rec := b.post("/login", url.Values{"email": {tc.email}, "password": {tc.password}})
		if tc.ok {
			assert.Equal(t, http.StatusFound, rec.Code, tc)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			assert.Equal(t, http.StatusOK, b.get("/bookings").Code)
			continue
		}
		assert.Equal(t, http.StatusOK, rec.Code, tc)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.Equal(t, http.StatusFound, b.get("/bookings").Code)
	}
}

func TestBookings_ScopedByUsertype(t *testing.T) {
	app := newTestApp(t)
	for _, p := range []models.Patient{
		{Email: "a@x.com", Name: "Ann", Time: "10:00", Date: "2024-01-01"},
		{Email: "b@x.com", Name: "Bob", Time: "11:00", Date: "2024-01-01"},
		{Email: "a@x.com", Name: "Ann", Time: "12:00", Date: "2024-01-02"},
	} {
		p := p
		require.NoError(t, app.appointments.Create(context.Background(), &p))
	}

	patient := app.browser(t)
	patient.signupAndLogin("ann", "Patient", "a@x.com", "p1")
	body := patient.get("/bookings").Body.String()
	assert.Equal(t, 2, strings.Count(body, "<td>a@x.com</td>"))
	assert.NotContains(t, body, "b@x.com")

	doctor := app.browser(t)
	doctor.signupAndLogin("house", "Doctor", "d@x.com", "d1")
	body = doctor.get("/bookings").Body.String()
	assert.Equal(t, 2, strings.Count(body, "<td>a@x.com</td>"))
	assert.Equal(t, 1, strings.Count(body, "<td>b@x.com</td>"))
}

func TestDelete_UnknownIDRedirectsSilently(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.appointments.Create(context.Background(), &models.Patient{Email: "a@x.com", Time: "10:00", Date: "2024-01-01"}))
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	page := b.follow(b.get("/delete/999"), "/bookings")
	assert.NotContains(t, page.Body.String(), "Slot Deleted Successfully")
	assert.Equal(t, 1, app.appointments.count())

	page = b.follow(b.post("/delete/999", url.Values{}), "/bookings")
	assert.NotContains(t, page.Body.String(), "alert-danger")
	assert.Equal(t, 1, app.appointments.count())
}

func TestEdit_UnknownOrMalformedID(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.get("/edit/42")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/bookings", rec.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, b.get("/edit/abc").Code)
	assert.Equal(t, http.StatusNotFound, b.get("/delete/-1").Code)
}

func TestEdit_WritesWithoutValidation(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.appointments.Create(context.Background(), &models.Patient{Email: "a@x.com", Time: "10:00", Date: "2024-01-01", Number: "1234567890"}))
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	b.follow(b.post("/edit/1", bookingForm("a@x.com", "Ann", "night", "1")), "/bookings")

	row, err := app.appointments.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), row.PID)
	assert.Equal(t, "1", row.Number)
	assert.Equal(t, "night", row.Slot)
}

func TestRequireLogin_RedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	for _, path := range []string{"/patients", "/bookings", "/edit/1", "/delete/1", "/logout", "/details", "/search"} {
		rec := b.get(path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}

	page := b.follow(b.get("/bookings"), "/login")
	assert.Contains(t, page.Body.String(), "Please log in to access this page.")
}

func TestLogout_EndsSession(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	page := b.follow(b.get("/logout"), "/login")
	assert.Contains(t, page.Body.String(), "Logout Successful")
	assert.Equal(t, http.StatusFound, b.get("/bookings").Code)
}

func TestDoctors_OpenRegistrationWithoutDuplicateCheck(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	form := url.Values{"email": {"h@x.com"}, "doctorname": {"House"}, "dept": {"Diagnostics"}}
	for i := 0; i < 2; i++ {
		rec := b.post("/doctors", form)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Information is Stored")
	}
	assert.Len(t, app.doctors.doctors, 2)

	rec := b.get("/doctors")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Information is Stored")
}

func TestSearch_ReportsNameMatchOnly(t *testing.T) {
	app := newTestApp(t)
	app.doctors.doctors = []models.Doctor{{DID: 1, Doctorname: "House", Dept: "Diagnostics"}}
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.post("/search", url.Values{"search": {"House"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor is Available")

	rec = b.post("/search", url.Values{"search": {"Diagnostics"}})
	assert.Contains(t, rec.Body.String(), "Doctor is Not Available")

	rec = b.get("/search")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Doctor is")
}

func TestProbe(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.get("/test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Database Connected", rec.Body.String())

	app.probe.down = true
	rec = b.get("/test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Database Not Connected", rec.Body.String())
}

func TestDetails_ListsAuditEntries(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	rec := b.get("/details")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), models.ActionInserted)

	app.audit.entries = []models.Trigr{{TID: 1, PID: 4, Email: "a@x.com", Name: "Ann", Action: models.ActionInserted, Timestamp: "2024-01-01 10:00:00"}}
	rec = b.get("/details")
	assert.Contains(t, rec.Body.String(), "<td>INSERTED</td>")
}

func TestIndex_ShowsCurrentUser(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/login"`)

	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")
	rec = b.get("/")
	assert.Contains(t, rec.Body.String(), "<span>ann</span>")
	assert.NotContains(t, rec.Body.String(), "Login Success")
}

func TestSession_DeletedUserIsAnonymous(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.signupAndLogin("ann", "Patient", "a@x.com", "p1")

	app.users.mu.Lock()
	app.users.users = map[uint]models.User{}
	app.users.mu.Unlock()

	assert.Equal(t, http.StatusFound, b.get("/bookings").Code)
}
