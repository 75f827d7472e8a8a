package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/repository"
	"github.com/Avadhut20/roxiler/services"
	"github.com/Avadhut20/roxiler/utils"
)

type StoreController struct {
	stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{stores: stores}
}

// GET /api/stores?name=&address= (Protected)
// Each row carries the caller's own rating next to the store aggregate.
func (sc *StoreController) List(c *gin.Context) {
	uid, ok := utils.CurrentUserID(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	filter := repository.StoreFilter{
		Name:    c.Query("name"),
		Address: c.Query("address"),
	}

	result, err := sc.stores.ListForUser(uid, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, result)
}
