package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"growling-tummy/internal/foodcart"
	"growling-tummy/pkg/response"
)

// List godoc
// @Summary     List food carts
// @Description Returns the carts matching every supplied filter, in dataset order. No filters returns every cart.
// @Tags        FoodCart
// @Accept      json
// @Produce     json
// @Param       cuisine            query string false "Cuisine, case-insensitive"
// @Param       dining_option      query string false "dine-in, to-go or takeout"
// @Param       dietary_preference query string false "vegan or vegetarian"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/foodcarts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.empty() {
		carts, err := h.uc.List(ctx)
		if err != nil {
			h.l.Errorf(ctx, "uc.List: %v", err)
			response.InternalError(c, err)
			return
		}
		response.OK(c, h.newListResp(foodcart.FindCartsOutput{Carts: carts}))
		return
	}

	output, err := h.uc.FindByDiningOptions(ctx, req.toInput())
	if err != nil && !errors.Is(err, foodcart.ErrNoMatch) {
		h.l.Errorf(ctx, "uc.FindByDiningOptions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
