package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kojofoli/temperature-toolkit/internal/importer"
	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

var validate = validator.New()

// Defaults carries the configured fallback thresholds for endpoints that
// accept an optional threshold parameter.
type Defaults struct {
	ExtremeThreshold float64
	SpikeThreshold   float64
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. im may be nil,
// in which case the import endpoint is not registered.
func RegisterRoutes(app *fiber.App, st *store.MemoryStore, im *importer.Importer, defaults Defaults) {
	v1 := app.Group("/api/v1")

	v1.Get("/convert", func(c *fiber.Ctx) error {
		req, err := parseConvertQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := temperature.ConvertString(req.Value, req.From, req.To)
		if err != nil {
			return scaleError(err)
		}

		return c.JSON(fiber.Map{
			"value":  req.Value,
			"from":   req.From,
			"to":     req.To,
			"result": result,
		})
	})

	v1.Post("/records", func(c *fiber.Ctx) error {
		var req recordBody
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		record, err := temperature.NewRecord(req.Date, req.Readings, req.Scale)
		if err != nil {
			return scaleError(err)
		}

		st.Put(record)
		return c.Status(fiber.StatusCreated).JSON(record)
	})

	v1.Get("/records", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"records": st.List()})
	})

	v1.Get("/records/:date", func(c *fiber.Ctx) error {
		record, err := getRecord(st, c)
		if err != nil {
			return err
		}
		return c.JSON(record)
	})

	v1.Get("/records/:date/summary", func(c *fiber.Ctx) error {
		record, err := getRecord(st, c)
		if err != nil {
			return err
		}

		summary, err := record.Summary()
		if errors.Is(err, temperature.ErrNoData) {
			return fiber.NewError(fiber.StatusNotFound, "no readings for requested date")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute summary")
		}
		return c.JSON(summary)
	})

	v1.Put("/records/:date/scale", func(c *fiber.Ctx) error {
		target := c.Query("to")
		if target == "" {
			return fiber.NewError(fiber.StatusBadRequest, "to query parameter is required")
		}
		scale, err := temperature.ParseScale(target)
		if err != nil {
			return scaleError(err)
		}

		// The store converts under its own lock; handlers never mutate a
		// record directly.
		record, err := st.ConvertRecord(c.Params("date"), scale)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no record for requested date")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to convert record")
		}
		return c.JSON(record)
	})

	v1.Get("/records/:date/trend", func(c *fiber.Ctx) error {
		record, err := getRecord(st, c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"date":  record.Date,
			"trend": temperature.Trend(record.Readings),
		})
	})

	v1.Get("/records/:date/spike", func(c *fiber.Ctx) error {
		threshold, err := parseThreshold(c, defaults.SpikeThreshold)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		record, err := getRecord(st, c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"date":      record.Date,
			"threshold": threshold,
			"spike":     temperature.DetectSpike(record.Readings, threshold),
		})
	})

	analytics := v1.Group("/analytics")

	analytics.Get("/average", func(c *fiber.Ctx) error {
		avg, err := temperature.AverageAcrossDays(st.List())
		if errors.Is(err, temperature.ErrNoData) {
			return fiber.NewError(fiber.StatusNotFound, "no readings stored")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute average")
		}
		return c.JSON(fiber.Map{"average": avg})
	})

	analytics.Get("/hottest", func(c *fiber.Ctx) error {
		date, err := temperature.HottestDay(st.List())
		if errors.Is(err, temperature.ErrNoData) {
			return fiber.NewError(fiber.StatusNotFound, "no readings stored")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to find hottest day")
		}
		return c.JSON(fiber.Map{"date": date})
	})

	analytics.Get("/extremes", func(c *fiber.Ctx) error {
		threshold, err := parseThreshold(c, defaults.ExtremeThreshold)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		days := temperature.DetectExtremeDays(st.List(), threshold)
		if days == nil {
			days = []string{}
		}
		return c.JSON(fiber.Map{
			"threshold": threshold,
			"dates":     days,
		})
	})

	analytics.Get("/ranges", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ranges": temperature.RangeForEachDay(st.List())})
	})

	if im != nil {
		v1.Post("/import", func(c *fiber.Ctx) error {
			reading, err := im.Import(c.Context())
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, "import failed: "+err.Error())
			}
			return c.Status(fiber.StatusCreated).JSON(reading)
		})
	}
}

// recordBody is the JSON body for creating a record.
type recordBody struct {
	Date     string    `json:"date" validate:"required"`
	Readings []float64 `json:"readings"`
	Scale    string    `json:"scale" validate:"required"`
}

// convertQuery holds query parameters for the convert endpoint.
type convertQuery struct {
	Value float64
	From  string `validate:"required"`
	To    string `validate:"required"`
}

func parseConvertQuery(c *fiber.Ctx) (convertQuery, error) {
	var q convertQuery

	raw := c.Query("value")
	if raw == "" {
		return q, errors.New("value query parameter is required")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return q, errors.New("value must be a number")
	}
	q.Value = value
	q.From = c.Query("from")
	q.To = c.Query("to")

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func parseThreshold(c *fiber.Ctx, def float64) (float64, error) {
	raw := c.Query("threshold")
	if raw == "" {
		return def, nil
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("threshold must be a number")
	}
	return threshold, nil
}

func getRecord(st *store.MemoryStore, c *fiber.Ctx) (*temperature.Record, error) {
	record, err := st.Get(c.Params("date"))
	if errors.Is(err, store.ErrNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "no record for requested date")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load record")
	}
	return record, nil
}

func scaleError(err error) error {
	if errors.Is(err, temperature.ErrInvalidScale) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
