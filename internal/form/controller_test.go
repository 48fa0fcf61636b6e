package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/shelf/internal/model"
	"github.com/lazyvibe/shelf/internal/store"
)

var cleanCode = model.Book{
	Title:  "Clean Code",
	Author: "Robert Martin",
	Year:   "2008",
	ISBN:   "9780132350884",
}

func newController() *Controller {
	return NewController(store.NewMemoryStore(), nil)
}

func fill(c *Controller, title, author, year, isbn string) {
	c.SetField(FieldTitle, title)
	c.SetField(FieldAuthor, author)
	c.SetField(FieldYear, year)
	c.SetField(FieldISBN, isbn)
}

func fillBook(c *Controller, b model.Book) {
	fill(c, b.Title, b.Author, b.Year, b.ISBN)
}

func assertCleared(t *testing.T, c *Controller) {
	t.Helper()
	assert.Equal(t, [FieldCount]string{}, c.Fields())
	_, ok := c.Selection().Index()
	assert.False(t, ok, "selection should be none")
}

func TestSubmitAddAppendsTrimmedRecord(t *testing.T) {
	c := newController()
	fill(c, "  Clean Code ", " Robert Martin", "2008 ", "\t9780132350884\n")

	require.NoError(t, c.SubmitAdd())
	assert.Equal(t, []model.Book{cleanCode}, c.Rows())
	assertCleared(t, c)
}

func TestSubmitAddSequenceMatchesDisplay(t *testing.T) {
	c := newController()
	var want []model.Book
	for _, title := range []string{"A", "B", "A", "C"} {
		b := model.Book{Title: title, Author: "x", Year: "1999", ISBN: "1"}
		fillBook(c, b)
		require.NoError(t, c.SubmitAdd())
		want = append(want, b)
		assert.Equal(t, want, c.Rows())
	}
}

func TestSubmitAddRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"empty title", FieldTitle, ""},
		{"blank author", FieldAuthor, "   "},
		{"empty year", FieldYear, ""},
		{"tab isbn", FieldISBN, "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController()
			fillBook(c, cleanCode)
			require.NoError(t, c.SubmitAdd())
			require.NoError(t, c.SelectRow(0))

			fillBook(c, cleanCode)
			c.SetField(tt.field, tt.value)
			fieldsBefore := c.Fields()

			err := c.SubmitAdd()
			assert.ErrorIs(t, err, ErrFieldsRequired)
			assert.EqualError(t, err, "all fields required")
			assert.Equal(t, []model.Book{cleanCode}, c.Rows())
			assert.Equal(t, fieldsBefore, c.Fields())
			index, ok := c.Selection().Index()
			assert.True(t, ok)
			assert.Equal(t, 0, index)
		})
	}
}

func TestSubmitAddKeepsNoSelection(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	require.NoError(t, c.SelectRow(0))

	fill(c, "Refactoring", "Martin Fowler", "1999", "0201485672")
	require.NoError(t, c.SubmitAdd())
	assert.Len(t, c.Rows(), 2)
	assertCleared(t, c)
}

func TestUpdateAndDeleteRequireSelection(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	fillBook(c, cleanCode)

	err := c.SubmitUpdate()
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.EqualError(t, err, "no record selected")
	assert.ErrorIs(t, c.SubmitDelete(), ErrNoSelection)
	assert.Equal(t, []model.Book{cleanCode}, c.Rows())
	assert.Equal(t, cleanCode.Title, c.Field(FieldTitle))
}

func TestSubmitUpdateChecksSelectionBeforeFields(t *testing.T) {
	c := newController()

	assert.ErrorIs(t, c.SubmitUpdate(), ErrNoSelection)
}

func TestSubmitUpdateValidatesFields(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	require.NoError(t, c.SelectRow(0))
	c.SetField(FieldYear, "  ")

	assert.ErrorIs(t, c.SubmitUpdate(), ErrFieldsRequired)
	assert.Equal(t, []model.Book{cleanCode}, c.Rows())
	_, ok := c.Selection().Index()
	assert.True(t, ok)
}

func TestUpdateWithUnchangedFieldsIsNoOp(t *testing.T) {
	c := newController()
	for i := 0; i < 3; i++ {
		fillBook(c, cleanCode)
		c.SetField(FieldYear, string(rune('0'+i)))
		require.NoError(t, c.SubmitAdd())
	}
	before := c.Rows()

	require.NoError(t, c.SelectRow(1))
	require.NoError(t, c.SubmitUpdate())
	assert.Equal(t, before, c.Rows())
	assertCleared(t, c)
}

func TestSubmitDeleteShiftsLaterRecords(t *testing.T) {
	c := newController()
	titles := []string{"A", "B", "C", "D"}
	for _, title := range titles {
		fill(c, title, "a", "y", "i")
		require.NoError(t, c.SubmitAdd())
	}

	require.NoError(t, c.SelectRow(1))
	require.NoError(t, c.SubmitDelete())

	rows := c.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].Title)
	assert.Equal(t, "C", rows[1].Title)
	assert.Equal(t, "D", rows[2].Title)
	assertCleared(t, c)
}

func TestCleanCodeScenario(t *testing.T) {
	c := newController()

	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	assert.Equal(t, [][]string{{"Clean Code", "Robert Martin", "2008", "9780132350884"}}, values(c.Rows()))

	require.NoError(t, c.SelectRow(0))
	c.SetField(FieldAuthor, "R. C. Martin")
	require.NoError(t, c.SubmitUpdate())
	assert.Equal(t, [][]string{{"Clean Code", "R. C. Martin", "2008", "9780132350884"}}, values(c.Rows()))

	require.NoError(t, c.SelectRow(0))
	require.NoError(t, c.SubmitDelete())
	assert.Empty(t, c.Rows())

	assert.ErrorIs(t, c.SubmitDelete(), ErrNoSelection)
}

func TestClearFields(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	require.NoError(t, c.SelectRow(0))
	c.SetField(FieldTitle, "edited")

	c.ClearFields()
	assertCleared(t, c)
	assert.Equal(t, []model.Book{cleanCode}, c.Rows())

	c.ClearFields()
	assertCleared(t, c)
}

func TestSelectRowLoadsFields(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	c.SetField(FieldTitle, "unsaved edit")

	require.NoError(t, c.SelectRow(0))
	assert.Equal(t, [FieldCount]string{"Clean Code", "Robert Martin", "2008", "9780132350884"}, c.Fields())
	index, ok := c.Selection().Index()
	assert.True(t, ok)
	assert.Equal(t, 0, index)
}

func TestSelectRowNoneKeepsFields(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	require.NoError(t, c.SelectRow(0))

	require.NoError(t, c.SelectRow(NoSelection))
	_, ok := c.Selection().Index()
	assert.False(t, ok)
	assert.Equal(t, cleanCode.Title, c.Field(FieldTitle))
	assert.Equal(t, cleanCode.ISBN, c.Field(FieldISBN))
}

func TestSelectRowOutOfRange(t *testing.T) {
	c := newController()
	fillBook(c, cleanCode)
	require.NoError(t, c.SubmitAdd())
	require.NoError(t, c.SelectRow(0))
	c.SetField(FieldTitle, "edit")

	err := c.SelectRow(3)
	assert.ErrorIs(t, err, store.ErrIndexOutOfRange)
	index, ok := c.Selection().Index()
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, "edit", c.Field(FieldTitle))
}

func TestDispatch(t *testing.T) {
	c := newController()

	fillBook(c, cleanCode)
	require.NoError(t, c.Dispatch(ActionAdd))
	assert.Len(t, c.Rows(), 1)

	assert.ErrorIs(t, c.Dispatch(ActionUpdate), ErrNoSelection)
	assert.ErrorIs(t, c.Dispatch(ActionDelete), ErrNoSelection)

	require.NoError(t, c.SelectRow(0))
	require.NoError(t, c.Dispatch(ActionClear))
	assertCleared(t, c)

	require.NoError(t, c.SelectRow(0))
	require.NoError(t, c.Dispatch(ActionDelete))
	assert.Empty(t, c.Rows())

	err := c.Dispatch(Action(42))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.EqualError(t, err, "action(42): unknown action")
}

func TestFieldAccessorsIgnoreUnknownField(t *testing.T) {
	c := newController()
	c.SetField(Field(7), "x")
	c.SetField(Field(-1), "x")

	assert.Equal(t, "", c.Field(Field(7)))
	assert.Equal(t, [FieldCount]string{}, c.Fields())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "update", ActionUpdate.String())
	assert.Equal(t, "delete", ActionDelete.String())
	assert.Equal(t, "clear", ActionClear.String())
}

func values(books []model.Book) [][]string {
	out := make([][]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Values())
	}
	return out
}
