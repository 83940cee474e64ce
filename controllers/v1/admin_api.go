package apiv1

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"sailing-venues-backend/controllers"
	"sailing-venues-backend/lib/dataquality"
	exporthandler "sailing-venues-backend/lib/export"
	osmrefresh "sailing-venues-backend/lib/osm"
	venueprovider "sailing-venues-backend/lib/venue"
	apimodels "sailing-venues-backend/models/api"
	dbmodels "sailing-venues-backend/models/db"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("dump", func(router fiber.Router) {
		router.Post("apply", controller.dumpApply)
	})
	app.Route("refresh", func(router fiber.Router) {
		router.Post("run", controller.refreshRun)
	})
	app.Route("export", func(router fiber.Router) {
		router.Post(":format", controller.exportGenerate)
		router.Get("", controller.exportList)
	})
	app.Route("quality", func(router fiber.Router) {
		router.Post("run", controller.qualityRun)
		router.Get("report", controller.qualityReport)
	})
}

type dumpApplyView struct {
	Applied int `json:"applied"`
}

// @Summary Apply venue dump
// @Tags Admin
// @Description Apply an uploaded sailing_venues upsert dump; re-applying the same dump is a no-op
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 string	true	"dump file content"
// @Success 200 {object} apimodels.Response{data=dumpApplyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/dump/apply [post]
func (c *adminApiController) dumpApply(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if len(body) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("empty dump"))
	}
	applied, err := venueprovider.Instance.ApplyDump(bytes.NewReader(body))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "dump apply failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dumpApplyView{Applied: applied}))
}

// @Summary Run coordinate refresh
// @Tags Admin
// @Description Refresh venue coordinates from OSM; only the coordinate pair is revised
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=osmrefresh.RefreshResult}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/refresh/run [post]
func (c *adminApiController) refreshRun(ctx *fiber.Ctx) error {
	result, err := osmrefresh.Instance.RefreshCoordinates(ctx.Context())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "coordinate refresh failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Generate export
// @Tags Admin
// @Description Generate a dataset export (sql, xlsx or pdf) and store it in S3
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   format          	path    string  				    	true         "export format"
// @Success 200 {object} apimodels.Response{data=venueapimodels.ExportFileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/export/{format} [post]
func (c *adminApiController) exportGenerate(ctx *fiber.Ctx) error {
	format := dbmodels.ExportFormat(ctx.Params("format"))
	switch format {
	case dbmodels.ExportFormatSQL, dbmodels.ExportFormatXLSX, dbmodels.ExportFormatPDF:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unsupported export format"))
	}
	resp, err := exporthandler.Instance.Generate(ctx.Context(), format)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "export generation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List exports
// @Tags Admin
// @Description List generated exports with download links
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]venueapimodels.ExportFileView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/export [get]
func (c *adminApiController) exportList(ctx *fiber.Ctx) error {
	list, err := exporthandler.Instance.List(ctx.Context())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "export list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Run data quality checks
// @Tags Admin
// @Description Run the dataset integrity checks and persist the report
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=venueapimodels.QualityReportView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/quality/run [post]
func (c *adminApiController) qualityRun(ctx *fiber.Ctx) error {
	resp, err := dataquality.Instance.Run()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "data quality run failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Latest data quality report
// @Tags Admin
// @Description Get the latest persisted data quality report
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=venueapimodels.QualityReportView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/quality/report [get]
func (c *adminApiController) qualityReport(ctx *fiber.Ctx) error {
	resp, err := dataquality.Instance.Latest()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "data quality report fetch failed")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no quality report yet"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
