package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/middleware"
)

// RegistryController exposes the plain record-keeping registries: transport,
// hostels, clubs, notices, timetable, leave and notifications. The handlers
// are uniform bind/dispatch/respond wrappers around RegistryService.
type RegistryController struct {
	registryService *services.RegistryService
}

// NewRegistryController creates a new RegistryController
func NewRegistryController(registryService *services.RegistryService) *RegistryController {
	return &RegistryController{registryService: registryService}
}

func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

func respond(ctx *gin.Context, status int, data interface{}, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

// Transport.

func (c *RegistryController) CreateRoute(ctx *gin.Context) {
	var route models.TransportRoute
	if !bindJSON(ctx, &route) {
		return
	}
	created, err := c.registryService.CreateRoute(route)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateRoute(ctx *gin.Context) {
	var route models.TransportRoute
	if !bindJSON(ctx, &route) {
		return
	}
	route.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, route, c.registryService.UpdateRoute(route))
}

func (c *RegistryController) DeleteRoute(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteRoute(ctx.Param("id")))
}

func (c *RegistryController) GetAllRoutes(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListRoutes(), nil)
}

func (c *RegistryController) CreateVehicle(ctx *gin.Context) {
	var vehicle models.Vehicle
	if !bindJSON(ctx, &vehicle) {
		return
	}
	created, err := c.registryService.CreateVehicle(vehicle)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateVehicle(ctx *gin.Context) {
	var vehicle models.Vehicle
	if !bindJSON(ctx, &vehicle) {
		return
	}
	vehicle.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, vehicle, c.registryService.UpdateVehicle(vehicle))
}

func (c *RegistryController) DeleteVehicle(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteVehicle(ctx.Param("id")))
}

func (c *RegistryController) GetAllVehicles(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListVehicles(), nil)
}

func (c *RegistryController) CreateDriver(ctx *gin.Context) {
	var driver models.Driver
	if !bindJSON(ctx, &driver) {
		return
	}
	created, err := c.registryService.CreateDriver(driver)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateDriver(ctx *gin.Context) {
	var driver models.Driver
	if !bindJSON(ctx, &driver) {
		return
	}
	driver.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, driver, c.registryService.UpdateDriver(driver))
}

func (c *RegistryController) DeleteDriver(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteDriver(ctx.Param("id")))
}

func (c *RegistryController) GetAllDrivers(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListDrivers(), nil)
}

// Hostels.

func (c *RegistryController) CreateHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if !bindJSON(ctx, &hostel) {
		return
	}
	created, err := c.registryService.CreateHostel(hostel)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if !bindJSON(ctx, &hostel) {
		return
	}
	hostel.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, hostel, c.registryService.UpdateHostel(hostel))
}

func (c *RegistryController) DeleteHostel(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteHostel(ctx.Param("id")))
}

func (c *RegistryController) GetAllHostels(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListHostels(), nil)
}

// Clubs.

func (c *RegistryController) CreateClub(ctx *gin.Context) {
	var club models.Club
	if !bindJSON(ctx, &club) {
		return
	}
	created, err := c.registryService.CreateClub(club)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateClub(ctx *gin.Context) {
	var club models.Club
	if !bindJSON(ctx, &club) {
		return
	}
	club.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, club, c.registryService.UpdateClub(club))
}

func (c *RegistryController) DeleteClub(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteClub(ctx.Param("id")))
}

func (c *RegistryController) GetAllClubs(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListClubs(), nil)
}

// Notices.

func (c *RegistryController) PostNotice(ctx *gin.Context) {
	var notice models.Notice
	if !bindJSON(ctx, &notice) {
		return
	}
	notice.PostedBy = ctx.GetString("userID")
	created, err := c.registryService.PostNotice(notice)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) DeleteNotice(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteNotice(ctx.Param("id")))
}

func (c *RegistryController) GetAllNotices(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListNotices(), nil)
}

// Timetable.

func (c *RegistryController) CreateTimetableEntry(ctx *gin.Context) {
	var entry models.TimetableEntry
	if !bindJSON(ctx, &entry) {
		return
	}
	created, err := c.registryService.CreateTimetableEntry(entry)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) UpdateTimetableEntry(ctx *gin.Context) {
	var entry models.TimetableEntry
	if !bindJSON(ctx, &entry) {
		return
	}
	entry.ID = ctx.Param("id")
	respond(ctx, http.StatusOK, entry, c.registryService.UpdateTimetableEntry(entry))
}

func (c *RegistryController) DeleteTimetableEntry(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteTimetableEntry(ctx.Param("id")))
}

func (c *RegistryController) GetTimetable(ctx *gin.Context) {
	semester, _ := strconv.Atoi(ctx.Query("semester"))
	entries := c.registryService.Timetable(ctx.Query("course"), ctx.Query("branch"), semester)
	respond(ctx, http.StatusOK, entries, nil)
}

// Leave applications.

func (c *RegistryController) ApplyLeave(ctx *gin.Context) {
	var leave models.LeaveApplication
	if !bindJSON(ctx, &leave) {
		return
	}
	created, err := c.registryService.ApplyLeave(leave)
	respond(ctx, http.StatusCreated, created, err)
}

func (c *RegistryController) ReviewLeave(ctx *gin.Context) {
	var req dto.ReviewLeaveRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if req.ReviewedBy == "" {
		req.ReviewedBy = ctx.GetString("userID")
	}
	reviewed, err := c.registryService.ReviewLeave(ctx.Param("id"), req)
	respond(ctx, http.StatusOK, reviewed, err)
}

func (c *RegistryController) DeleteLeave(ctx *gin.Context) {
	respond(ctx, http.StatusNoContent, nil, c.registryService.DeleteLeave(ctx.Param("id")))
}

func (c *RegistryController) GetAllLeaves(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListLeaves(), nil)
}

// Activity trail and notifications.

func (c *RegistryController) GetAllActivities(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.ListActivities(), nil)
}

func (c *RegistryController) GetMyNotifications(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.registryService.Notifications(ctx.GetString("userID")), nil)
}

func (c *RegistryController) MarkNotificationRead(ctx *gin.Context) {
	err := c.registryService.MarkNotificationRead(ctx.Param("id"))
	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Notification marked read"}, err)
}
