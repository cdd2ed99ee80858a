package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "name,business_value,tech_health,cost,usage,security,strategic_fit,redundancy\n"

// TestCSVSourceLoad tests well-formed inventories.
func TestCSVSourceLoad(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		path := writeInventory(t, "inv.csv", csvHeader+
			"crm,9,7,50000,850,8,9,0\n")

		src := &csvSource{path: path}
		records, rejected, err := src.Load()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, rejected)

		app := records[0]
		assert.Equal(t, "crm", app.Name)
		assert.InDelta(t, 9.0, app.BusinessValue, 0.001)
		assert.InDelta(t, 50000.0, app.Cost, 0.001)
		assert.Equal(t, 0, app.Redundancy)
	})

	t.Run("columns in any order", func(t *testing.T) {
		path := writeInventory(t, "inv.csv",
			"redundancy,name,cost,usage,security,strategic_fit,business_value,tech_health\n"+
				"1,wiki,12000,40,6,3,5,5\n")

		src := &csvSource{path: path}
		records, rejected, err := src.Load()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, rejected)
		assert.Equal(t, "wiki", records[0].Name)
		assert.Equal(t, 1, records[0].Redundancy)
	})

	t.Run("whitespace and case tolerated in header", func(t *testing.T) {
		path := writeInventory(t, "inv.csv",
			"Name, Business_Value ,tech_health,cost,usage,security,strategic_fit,redundancy\n"+
				"crm,9,7,50000,850,8,9,0\n")

		src := &csvSource{path: path}
		records, _, err := src.Load()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("empty inventory", func(t *testing.T) {
		path := writeInventory(t, "inv.csv", csvHeader)

		src := &csvSource{path: path}
		records, rejected, err := src.Load()
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, rejected)
	})
}

// TestCSVSourceLoadHeaderErrors tests fatal header problems.
func TestCSVSourceLoadHeaderErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		path := writeInventory(t, "inv.csv",
			"name,business_value,tech_health,cost,usage,security,strategic_fit\n")

		src := &csvSource{path: path}
		_, _, err := src.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing column "redundancy"`)
	})

	t.Run("duplicate column", func(t *testing.T) {
		path := writeInventory(t, "inv.csv",
			"name,name,business_value,tech_health,cost,usage,security,strategic_fit,redundancy\n")

		src := &csvSource{path: path}
		_, _, err := src.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate column")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeInventory(t, "inv.csv", "")

		src := &csvSource{path: path}
		_, _, err := src.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "header")
	})
}

// TestCSVSourceLoadRowErrors ensures bad rows are rejected without aborting
// the file.
func TestCSVSourceLoadRowErrors(t *testing.T) {
	path := writeInventory(t, "inv.csv", csvHeader+
		"good-1,8,7,10000,400,7,6,0\n"+
		"bad-number,high,7,10000,400,7,6,0\n"+
		"bad-redundancy,5,5,1000,10,6,4,maybe\n"+
		"short-row,5,5\n"+
		"bad-range,15,7,10000,400,7,6,0\n"+
		"good-2,5,5,90000,100,6,4,1\n")

	src := &csvSource{path: path}
	records, rejected, err := src.Load()
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, "good-1", records[0].Name)
	assert.Equal(t, "good-2", records[1].Name)

	require.Len(t, rejected, 4)
	byName := make(map[string]string)
	byLine := make(map[int]string)
	for _, r := range rejected {
		byName[r.Name] = r.Reason
		byLine[r.Line] = r.Reason
	}
	assert.Contains(t, byName["bad-number"], "invalid number")
	assert.Contains(t, byName["bad-redundancy"], "invalid integer")
	assert.Contains(t, byName["short-row"], "missing value")
	assert.Contains(t, byName["bad-range"], "business_value")

	// Line numbers count from the header at line 1.
	assert.Contains(t, byLine[3], "invalid number")
	assert.Contains(t, byLine[6], "business_value")
}
