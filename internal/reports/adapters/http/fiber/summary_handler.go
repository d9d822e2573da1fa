package fiber

import (
	"context"
	"errors"
	"net/http"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetSessionsSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSessionsSummaryInput) (*domain.SessionsSummary, error)
}

type SummaryHandler struct {
	uc GetSessionsSummaryUseCase
}

func NewSummaryHandler(uc GetSessionsSummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetSessionsSummary godoc
// @Summary Archived sessions summary
// @Description Sums the daily sessions persisted by previous exports, optionally bucketed by week or month
// @Tags Reports
// @Produce json
// @Param view_id query string false "View ID, defaults to the configured view"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param group_by query string false "Group by: week | month"
// @Success 200 {object} SessionsSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/sessions/summary [get]
func (h *SummaryHandler) GetSessionsSummary(c *fiber.Ctx) error {
	from := c.Query("from", "")
	to := c.Query("to", "")
	if from == "" || to == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "from and to are required",
		})
	}

	in := usecase.GetSessionsSummaryInput{
		ViewID:  c.Query("view_id", ""),
		From:    from,
		To:      to,
		GroupBy: c.Query("group_by", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSummaryQuery),
			errors.Is(err, usecase.ErrInvalidDateRange),
			errors.Is(err, usecase.ErrInvalidGroupBy):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := SessionsSummaryResponse{
		ViewID:        res.ViewID,
		From:          res.From,
		To:            res.To,
		TotalSessions: res.TotalSessions,
		Days:          res.Days,
		GroupBy:       res.GroupBy,
		Groups:        make([]SessionsBucketResponse, 0, len(res.Groups)),
	}

	for _, g := range res.Groups {
		resp.Groups = append(resp.Groups, SessionsBucketResponse{
			Key:      g.Key,
			Sessions: g.Sessions,
			Days:     g.Days,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
