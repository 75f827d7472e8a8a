package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/pkg/resp"
	"github.com/Avadhut20/roxiler/services"
	"github.com/Avadhut20/roxiler/utils"
)

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

type SubmitRatingReq struct {
	StoreID uint `json:"storeId" binding:"required"`
	Rating  int  `json:"rating" binding:"required"`
}

// POST /api/ratings (Protected)
// Upserts the caller's rating for the store and returns the fresh
// aggregate snapshot.
func (rc *RatingController) Submit(c *gin.Context) {
	uid, ok := utils.CurrentUserID(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req SubmitRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := rc.ratings.Submit(uid, req.StoreID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, result)
}
