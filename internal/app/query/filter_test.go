package query_test

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/palikatech/gunaso/internal/app/query"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// render runs the compiled predicates through the statement builder the way
// the repository does, so tests check the SQL that actually executes.
func render(t *testing.T, c *query.Compiled) (string, []interface{}) {
	t.Helper()
	sqlStr, args, err := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("c.id").
		From("complaints c").
		Where(c.Where).
		ToSql()
	require.NoError(t, err)
	return sqlStr, args
}

func TestCompileUserScope_ScopeAlwaysFirst(t *testing.T) {
	compiled, err := query.CompileUserScope(42, query.Filters{Status: "pending"})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.Contains(t, sqlStr, "cs.user_id = $1")
	assert.Contains(t, sqlStr, "c.status = $2")
	assert.Equal(t, []interface{}{int64(42), "pending"}, args)
}

func TestCompileUserScope_NoFilters(t *testing.T) {
	compiled, err := query.CompileUserScope(7, query.Filters{})
	require.NoError(t, err)

	_, args := render(t, compiled)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestCompileLocation_WardID(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{WardID: "5"})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.False(t, compiled.JoinWards)
	assert.Contains(t, sqlStr, "c.ward_id = $1")
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestCompileLocation_PalikaIDNeedsJoin(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{PalikaID: "3"})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.True(t, compiled.JoinWards)
	assert.Contains(t, sqlStr, "w.palika_id = $1")
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestCompileLocation_WardWinsOverPalika(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{WardID: "5", PalikaID: "3"})
	require.NoError(t, err)

	sqlStr, _ := render(t, compiled)

	assert.False(t, compiled.JoinWards)
	assert.Contains(t, sqlStr, "c.ward_id")
	assert.NotContains(t, sqlStr, "w.palika_id")
}

func TestCompileLocation_BothMissingOrInvalid(t *testing.T) {
	cases := map[string]query.Filters{
		"both empty":   {},
		"ward garbage": {WardID: "abc"},
		"both garbage": {WardID: "abc", PalikaID: "xyz"},
	}

	for name, filters := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := query.CompileLocation(filters)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMissingLocationScope)
		})
	}
}

func TestCompileLocation_InvalidWardFallsBackToValidPalika(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{WardID: "abc", PalikaID: "3"})
	require.NoError(t, err)

	assert.True(t, compiled.JoinWards)
}

func TestCompile_TagsOverlap(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{WardID: "1", Tags: "road, water ,,power"})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.Contains(t, sqlStr, "c.tags && $2::text[]")
	require.Len(t, args, 2)
	assert.Equal(t, []string{"road", "water", "power"}, args[1])
}

func TestCompile_TagsAllWhitespaceIgnored(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{WardID: "1", Tags: " , ,"})
	require.NoError(t, err)

	_, args := render(t, compiled)
	assert.Len(t, args, 1)
}

func TestCompile_DateRange(t *testing.T) {
	compiled, err := query.CompileLocation(query.Filters{
		WardID:    "1",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30T23:59:59Z",
	})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.Contains(t, sqlStr, "c.submitted_at >= $2")
	assert.Contains(t, sqlStr, "c.submitted_at <= $3")
	require.Len(t, args, 3)

	start, ok := args[1].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.January, start.Month())
}

func TestCompile_InvalidDateRejected(t *testing.T) {
	_, err := query.CompileLocation(query.Filters{WardID: "1", StartDate: "yesterday"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = query.CompileLocation(query.Filters{WardID: "1", EndDate: "31/12/2026"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCompile_PlaceholdersStayAlignedWithArgs(t *testing.T) {
	// Every filter at once: positions are assigned at render time, so the
	// arg slice must line up with the placeholder numbering.
	compiled, err := query.CompileUserScope(9, query.Filters{
		Status:    "resolved",
		Tags:      "road",
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
	})
	require.NoError(t, err)

	sqlStr, args := render(t, compiled)

	assert.Contains(t, sqlStr, "$5")
	assert.Len(t, args, 5)
	assert.Equal(t, int64(9), args[0])
	assert.Equal(t, "resolved", args[1])
}
