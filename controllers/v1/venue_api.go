package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"sailing-venues-backend/controllers"
	venueprovider "sailing-venues-backend/lib/venue"
	apimodels "sailing-venues-backend/models/api"
	venueapimodels "sailing-venues-backend/models/api/venue"
)

type venueApiController struct {
	controllers.BaseAPIController
}

func InitVenueApiRouters(app *fiber.App) {
	controller := venueApiController{}
	app.Route("venue", func(router fiber.Router) {
		router.Post("find", controller.venueFind)
		router.Get("stats", controller.venueStats)
		router.Get(":id", controller.venueGet)
	})
}

// @Summary Get venue by ID
// @Tags Venues
// @Description Get a sailing venue by its osm-<type>-<id> key
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=venueapimodels.VenueView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/{id} [get]
func (c *venueApiController) venueGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := venueprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "venue fetch failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Find venues
// @Tags Venues
// @Description Search venues by name, country, region, type, verified flag or bounding box
// @Param	body body	 venueapimodels.VenueFindRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]venueapimodels.VenueView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/find [post]
func (c *venueApiController) venueFind(ctx *fiber.Ctx) error {
	var payload venueapimodels.VenueFindRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := venueprovider.Instance.Find(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "venue search failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Dataset stats
// @Tags Venues
// @Description Venue counts, verified counts and per-country distribution
// @Success 200 {object} apimodels.Response{data=venueapimodels.VenueStatsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/stats [get]
func (c *venueApiController) venueStats(ctx *fiber.Ctx) error {
	resp, err := venueprovider.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "venue stats failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
