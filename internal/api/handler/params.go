package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// intParam reads an integer from the query ("query") or path ("path"). A
// missing query value yields def.
func intParam(c echo.Context, in, name string, def int) (int, error) {
	var raw string
	if in == "path" {
		raw = c.Param(name)
	} else {
		raw = c.QueryParam(name)
	}
	if raw == "" && in != "path" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Issues: []FieldIssue{{
			Loc:  []string{in, name},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}}
	}
	return n, nil
}

func pageParams(c echo.Context) (domain.Page, error) {
	limit, err := intParam(c, "query", "limit", domain.DefaultPageLimit)
	if err != nil {
		return domain.Page{}, err
	}
	offset, err := intParam(c, "query", "offset", 0)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Limit: limit, Offset: offset}, nil
}
