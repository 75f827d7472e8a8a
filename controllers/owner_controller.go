package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/services"
	"github.com/Avadhut20/roxiler/utils"
)

type OwnerController struct {
	dashboards *services.DashboardService
}

func NewOwnerController(dashboards *services.DashboardService) *OwnerController {
	return &OwnerController{dashboards: dashboards}
}

// GET /api/owner/dashboard (OWNER)
// Scoped to the authenticated owner's stores only.
func (oc *OwnerController) Dashboard(c *gin.Context) {
	uid, ok := utils.CurrentUserID(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	d, err := oc.dashboards.Owner(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, d)
}
