// Package query compiles caller-supplied filter parameters into typed,
// parameterized predicates. Bound values are always rendered as positional
// placeholders; no caller input ever reaches the query text itself.
package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
)

// Accepted layouts for startDate/endDate values, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// Filters carries the raw, caller-supplied filter values. Empty string
// means the filter was not supplied.
type Filters struct {
	WardID    string
	PalikaID  string
	Status    string
	Tags      string
	StartDate string
	EndDate   string
}

// Compiled is an ordered predicate set ready for rendering. Predicates are
// combined with AND only; there is no OR support and no nested grouping.
type Compiled struct {
	// Where holds the conjunction. Parameter positions are assigned at
	// render time by the statement builder, so fragment and value can
	// never drift apart.
	Where squirrel.And

	// JoinWards is set when the predicate set references the wards table
	// (palika filtering goes through the ward's parent unit column). The
	// executor adds the join structurally, never by string concatenation.
	JoinWards bool
}

// CompileUserScope compiles the optional filters on top of a mandatory
// supporter scope: the effective user id resolved by the access policy.
func CompileUserScope(effectiveUserID int64, f Filters) (*Compiled, error) {
	c := &Compiled{
		Where: squirrel.And{squirrel.Eq{"cs.user_id": effectiveUserID}},
	}

	if err := compileCommon(c, f); err != nil {
		return nil, err
	}
	return c, nil
}

// CompileLocation compiles a location-scoped predicate set. Exactly one of
// ward_id/palika_id must parse as an integer; ward_id wins when both do.
func CompileLocation(f Filters) (*Compiled, error) {
	wardID, wardErr := strconv.ParseInt(f.WardID, 10, 64)
	palikaID, palikaErr := strconv.ParseInt(f.PalikaID, 10, 64)

	c := &Compiled{}
	switch {
	case wardErr == nil:
		c.Where = squirrel.And{squirrel.Eq{"c.ward_id": wardID}}
	case palikaErr == nil:
		c.Where = squirrel.And{squirrel.Eq{"w.palika_id": palikaID}}
		c.JoinWards = true
	default:
		return nil, apperrors.NewCustomError(apperrors.ErrMissingLocationScope,
			"Either ward_id or palika_id is required and must be a valid integer.")
	}

	if err := compileCommon(c, f); err != nil {
		return nil, err
	}
	return c, nil
}

// compileCommon appends the filters shared by every list query.
func compileCommon(c *Compiled, f Filters) error {
	if f.Status != "" {
		c.Where = append(c.Where, squirrel.Eq{"c.status": f.Status})
	}

	if tags := splitTags(f.Tags); len(tags) > 0 {
		// array overlap: matches when the complaint's tag set intersects
		// the supplied set
		c.Where = append(c.Where, squirrel.Expr("c.tags && ?::text[]", tags))
	}

	if f.StartDate != "" {
		start, err := parseDate(f.StartDate)
		if err != nil {
			return apperrors.NewValidationError("startDate must be a valid date")
		}
		c.Where = append(c.Where, squirrel.GtOrEq{"c.submitted_at": start})
	}

	if f.EndDate != "" {
		end, err := parseDate(f.EndDate)
		if err != nil {
			return apperrors.NewValidationError("endDate must be a valid date")
		}
		c.Where = append(c.Where, squirrel.LtOrEq{"c.submitted_at": end})
	}

	return nil
}

// splitTags splits the comma-separated tag list, dropping empty entries.
// An empty result means no tag filter.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
