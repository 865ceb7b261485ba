package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/session"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles booking and the bookings list.
type AppointmentHandler struct {
	Appointments AppointmentStore
	Doctors      DoctorStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments AppointmentStore, doctors DoctorStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Doctors: doctors}
}

// Book shows the booking form and stores valid bookings. A rejected booking
// re-renders an empty form.
func (h *AppointmentHandler) Book(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	page := gin.H{"doct": doctors}

	if c.Request.Method == http.MethodPost {
		var form AppointmentForm
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}

		sess := middleware.GetSession(c)
		if problem := form.Problem(); problem != "" {
			sess.AddFlash(problem, session.CategoryWarning)
			utils.Render(c, "patient.html", page)
			return
		}

		appointment := form.Patient()
		if err := h.Appointments.Create(c.Request.Context(), &appointment); err != nil {
			utils.InternalServerError(c, err)
			return
		}
		sess.AddFlash("Booking Confirmed", session.CategoryInfo)
	}

	utils.Render(c, "patient.html", page)
}

// List shows every booking to doctors and only their own bookings to everyone else.
func (h *AppointmentHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.Redirect(c, "/login")
		return
	}

	var (
		rows []models.Patient
		err  error
	)
	if principal.IsDoctor() {
		rows, err = h.Appointments.List(c.Request.Context())
	} else {
		rows, err = h.Appointments.ListByEmail(c.Request.Context(), principal.Email)
	}
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Render(c, "booking.html", gin.H{"query": rows})
}

// Edit shows one booking and overwrites all of its fields on POST. An unknown
// id goes back to the list without a message.
func (h *AppointmentHandler) Edit(c *gin.Context) {
	current, ok := h.lookup(c)
	if !ok {
		return
	}

	if c.Request.Method != http.MethodPost {
		utils.Render(c, "edit.html", gin.H{"posts": current})
		return
	}

	var form AppointmentForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if err := h.Appointments.Update(c.Request.Context(), current.WithDetails(form.Patient())); err != nil {
		utils.InternalServerError(c, err)
		return
	}
	middleware.GetSession(c).AddFlash("Slot Updated", session.CategorySuccess)
	utils.Redirect(c, "/bookings")
}

// Delete removes one booking. An unknown id goes back to the list without a message.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	current, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := h.Appointments.Delete(c.Request.Context(), *current); err != nil {
		utils.InternalServerError(c, err)
		return
	}
	middleware.GetSession(c).AddFlash("Slot Deleted Successfully", session.CategoryDanger)
	utils.Redirect(c, "/bookings")
}

// lookup resolves the :id parameter. When it returns false the response has
// already been written.
func (h *AppointmentHandler) lookup(c *gin.Context) (*models.Patient, bool) {
	pid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.NotFound(c)
		return nil, false
	}

	current, err := h.Appointments.FindByID(c.Request.Context(), uint(pid))
	if errors.Is(err, repository.ErrNotFound) {
		utils.Redirect(c, "/bookings")
		return nil, false
	}
	if err != nil {
		utils.InternalServerError(c, err)
		return nil, false
	}
	return current, true
}
