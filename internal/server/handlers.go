package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-labels/labels"
	"github.com/cwbudde/algo-labels/labels/metrickey"
)

// FilterResponse describes one filter.
type FilterResponse struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Kind     labels.Kind     `json:"kind,omitempty"`
	Category labels.Category `json:"category,omitempty"`
}

// MetricResponse describes one metric or parameter.
type MetricResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Parameter bool   `json:"parameter"`
}

// CategoryResponse lists the filters of one category.
type CategoryResponse struct {
	Category labels.Category `json:"category"`
	Filters  []string        `json:"filters"`
}

// KeyResponse is a parsed information metric key.
type KeyResponse struct {
	ID        string             `json:"id"`
	Method    metrickey.Method   `json:"method"`
	Quantity  metrickey.Quantity `json:"quantity"`
	Region    metrickey.Region   `json:"region"`
	Side      metrickey.Side     `json:"side,omitempty"`
	Scale     float64            `json:"scale,omitempty"`
	PixelSize float64            `json:"pixel_size,omitempty"`
	Label     string             `json:"label"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (s *Server) handleCategories(c *gin.Context) {
	out := make([]CategoryResponse, 0, len(labels.Categories()))
	for _, cat := range labels.Categories() {
		out = append(out, CategoryResponse{Category: cat, Filters: s.resolver.FiltersIn(cat)})
	}

	c.JSON(http.StatusOK, out)
}

// handleFilters lists all filters, optionally restricted by ?category=.
func (s *Server) handleFilters(c *gin.Context) {
	ids := s.resolver.Filters()

	if q := c.Query("category"); q != "" {
		cat, err := labels.ParseCategory(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		ids = s.resolver.FiltersIn(cat)
	}

	out := make([]FilterResponse, 0, len(ids))

	for _, id := range ids {
		f, err := s.filter(id)
		if err != nil {
			s.handleError(c, err)
			return
		}

		out = append(out, f)
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleFilter(c *gin.Context) {
	f, err := s.filter(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

func (s *Server) filter(id string) (FilterResponse, error) {
	label, err := s.resolver.FilterLabel(id)
	if err != nil {
		return FilterResponse{}, err
	}

	f := FilterResponse{ID: id, Label: label}

	if id == labels.Baseline {
		return f, nil
	}

	if f.Kind, err = s.resolver.FilterKind(id); err != nil {
		return FilterResponse{}, err
	}

	if f.Category, err = s.resolver.FilterCategory(id); err != nil {
		return FilterResponse{}, err
	}

	return f, nil
}

func (s *Server) handleMetrics(c *gin.Context) {
	ids := s.resolver.Metrics()
	out := make([]MetricResponse, 0, len(ids))

	for _, id := range ids {
		label, err := s.resolver.MetricLabel(id)
		if err != nil {
			s.handleError(c, err)
			return
		}

		out = append(out, MetricResponse{ID: id, Label: label, Parameter: s.resolver.IsParameter(id)})
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleMetric(c *gin.Context) {
	id := c.Param("id")

	label, err := s.resolver.MetricLabel(id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MetricResponse{ID: id, Label: label, Parameter: s.resolver.IsParameter(id)})
}

func (s *Server) handleMetricKey(c *gin.Context) {
	id := c.Param("id")

	label, err := s.resolver.MetricLabel(id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	k, err := metrickey.Parse(id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, KeyResponse{
		ID:        id,
		Method:    k.Method,
		Quantity:  k.Quantity,
		Region:    k.Region,
		Side:      k.Side,
		Scale:     k.Scale,
		PixelSize: k.PixelSize(),
		Label:     label,
	})
}

func (s *Server) handleError(c *gin.Context, err error) {
	var nf *labels.NotFoundError

	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Suggestions: nf.Suggestions})
	case errors.Is(err, metrickey.ErrSyntax):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
