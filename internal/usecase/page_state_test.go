package usecase

import (
	"testing"

	"eventify/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPageState_Defaults(t *testing.T) {
	state := NewPageState()

	query := state.Query()
	assert.Empty(t, query.Search)
	assert.Equal(t, entity.CategoryAll, query.Category)
	assert.Equal(t, 1, query.Page)
}

func TestPageState_SearchChangeResetsPage(t *testing.T) {
	state := NewPageState()
	state.SetPage(4)

	state.SetSearch("venue")

	assert.Equal(t, 1, state.Query().Page)
	assert.Equal(t, "venue", state.Query().Search)
}

func TestPageState_UnchangedSearchKeepsPage(t *testing.T) {
	state := NewPageState()
	state.SetSearch("venue")
	state.SetPage(3)

	// Re-settling the same text is what a data refresh looks like to the
	// view state: the page must not move.
	state.SetSearch("venue")

	assert.Equal(t, 3, state.Query().Page)
}

func TestPageState_CategoryChangeResetsPage(t *testing.T) {
	state := NewPageState()
	state.SetPage(2)

	state.SetCategory(entity.CategoryRefreshments)

	assert.Equal(t, 1, state.Query().Page)

	state.SetPage(5)
	state.SetCategory(entity.CategoryRefreshments)

	assert.Equal(t, 5, state.Query().Page)
}

func TestPageState_SetPageClampsBelowOne(t *testing.T) {
	state := NewPageState()

	state.SetPage(0)
	assert.Equal(t, 1, state.Query().Page)

	state.SetPage(-3)
	assert.Equal(t, 1, state.Query().Page)
}
