package handlers

import (
	"errors"
	"net/http"

	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/session"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DoctorHandler handles doctor registration and doctor search.
type DoctorHandler struct {
	Doctors DoctorStore
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors DoctorStore) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

// Register stores every submitted doctor; there is no duplicate check.
func (h *DoctorHandler) Register(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		var form DoctorForm
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}

		doctor := form.Doctor()
		if err := h.Doctors.Create(c.Request.Context(), &doctor); err != nil {
			utils.InternalServerError(c, err)
			return
		}
		middleware.GetSession(c).AddFlash("Information is Stored", session.CategoryPrimary)
	}

	utils.Render(c, "doctor.html", nil)
}

// Search reports whether a doctor with exactly the queried name exists.
func (h *DoctorHandler) Search(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		var form SearchForm
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "Bad Request")
			return
		}
		ctx := c.Request.Context()

		// The department match does not affect the answer.
		byDept, err := h.Doctors.FindByDept(ctx, form.Search)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			utils.InternalServerError(c, err)
			return
		}
		logger.WithFields(logrus.Fields{"query": form.Search, "dept_match": byDept != nil}).Debug("doctor search")

		byName, err := h.Doctors.FindByName(ctx, form.Search)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			utils.InternalServerError(c, err)
			return
		}

		sess := middleware.GetSession(c)
		if byName != nil {
			sess.AddFlash("Doctor is Available", session.CategoryInfo)
		} else {
			sess.AddFlash("Doctor is Not Available", session.CategoryDanger)
		}
	}

	utils.Render(c, "index.html", nil)
}
