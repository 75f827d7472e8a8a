package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/repository"
	"github.com/Avadhut20/roxiler/services"
)

type AdminController struct {
	users      *services.UserService
	stores     *services.StoreService
	ratings    *services.RatingService
	dashboards *services.DashboardService
}

func NewAdminController(users *services.UserService, stores *services.StoreService, ratings *services.RatingService, dashboards *services.DashboardService) *AdminController {
	return &AdminController{users: users, stores: stores, ratings: ratings, dashboards: dashboards}
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	d, err := ac.dashboards.Admin()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, d)
}

type CreateUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Role     string `json:"role" binding:"required"`
}

// POST /api/admin/users
func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.users.CreateWithRole(req.Name, req.Email, req.Password, req.Address, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, user)
}

type CreateStoreReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
	OwnerID uint   `json:"ownerId" binding:"required"`
}

// POST /api/admin/stores
func (ac *AdminController) CreateStore(c *gin.Context) {
	var req CreateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store, err := ac.stores.Create(req.Name, req.Email, req.Address, req.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, store)
}

// GET /api/admin/users?name=&email=&address=&role=
func (ac *AdminController) Users(c *gin.Context) {
	filter := repository.UserFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
		Role:    c.Query("role"),
	}

	users, err := ac.users.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /api/admin/stores?name=&email=&address=
func (ac *AdminController) Stores(c *gin.Context) {
	filter := repository.StoreFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
	}

	stores, err := ac.stores.ListAll(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, stores)
}

// GET /api/admin/users/:id
func (ac *AdminController) UserDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	profile, err := ac.dashboards.UserDetail(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, profile)
}

// POST /api/admin/stores/:id/reconcile
// Repair operation: recompute a store's denormalized fields from its
// rating rows.
func (ac *AdminController) ReconcileStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid store id")
		return
	}

	store, err := ac.ratings.Reconcile(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, store)
}
