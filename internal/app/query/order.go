package query

import (
	"strings"

	"github.com/palikatech/gunaso/internal/app/models"
)

// sortColumns maps the active status filter to the sort column. Querying for
// resolved complaints sorts by resolution time; everything else by submission
// time. New statuses get a row here, not a branch in ResolveOrdering.
var sortColumns = map[models.ComplaintStatus]string{
	models.StatusResolved: "c.resolved_at",
}

const defaultSortColumn = "c.submitted_at"

// Ordering is a resolved sort column and direction. Both come from fixed
// tables, never from raw caller input.
type Ordering struct {
	Column    string
	Direction string
}

// ResolveOrdering derives the ORDER BY clause from the active status filter
// and the requested direction. Direction matches "asc" case-insensitively;
// anything else, including absent, is descending.
func ResolveOrdering(status, order string) Ordering {
	column := defaultSortColumn
	if c, ok := sortColumns[models.ComplaintStatus(status)]; ok {
		column = c
	}

	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}

	return Ordering{Column: column, Direction: direction}
}

// OrderBy renders the clause for the statement builder.
func (o Ordering) OrderBy() string {
	return o.Column + " " + o.Direction
}
