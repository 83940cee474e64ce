package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"sailing-venues-backend/controllers"
	"sailing-venues-backend/db"
	apimodels "sailing-venues-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Service health
// @Tags Health
// @Description Check service and database availability
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "database unavailable")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
