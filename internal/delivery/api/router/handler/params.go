package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// queryFloat parses an optional float query parameter. Absent or blank values yield nil.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("%s must be a number", name)
	}

	return &value, nil
}

// queryInt parses an optional integer query parameter. Absent or blank values yield nil.
func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Errorf("%s must be an integer", name)
	}

	return &value, nil
}
