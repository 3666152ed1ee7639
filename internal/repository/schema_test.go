package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "schema.sql"))
	require.NoError(t, err)
	return string(raw)
}

// tableColumns parses the column names out of a CREATE TABLE block.
func tableColumns(t *testing.T, schema, table string) map[string]bool {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	m := re.FindStringSubmatch(schema)
	require.NotNil(t, m, "schema defines table %s", table)

	cols := map[string]bool{}
	for _, line := range strings.Split(m[1], "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "UNIQUE", "PRIMARY", "FOREIGN", "CHECK", "CONSTRAINT":
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

// Recipient lookups feed the notification email fan-out; a column the
// schema does not define would fail only at runtime, silently, because
// Notify swallows lookup errors.
func TestUserQueryColumnsExistInSchema(t *testing.T) {
	schema := loadSchema(t)
	users := tableColumns(t, schema, "users")
	levels := tableColumns(t, schema, "user_levels")

	refs := regexp.MustCompile(`\b(u|ul)\.([a-z_]+)`).FindAllStringSubmatch(userByIDQuery, -1)
	require.NotEmpty(t, refs)

	for _, ref := range refs {
		alias, col := ref[1], ref[2]
		switch alias {
		case "u":
			assert.True(t, users[col], "users has no column %q", col)
		case "ul":
			assert.True(t, levels[col], "user_levels has no column %q", col)
		}
	}
}

// Tag names are unique case-insensitively, so the constraint must cover
// LOWER(tag_name) or concurrent mixed-case creates slip past the
// duplicate-key fallback in GetOrCreate.
func TestTagUniquenessIsCaseInsensitive(t *testing.T) {
	schema := loadSchema(t)

	tags := tableColumns(t, schema, "tags")
	require.True(t, tags["tag_name"])

	assert.Regexp(t,
		regexp.MustCompile(`CREATE UNIQUE INDEX[^;]+ON tags \(LOWER\(tag_name\)\)`),
		schema)
	assert.NotContains(t, schema, "tag_name VARCHAR(100) NOT NULL UNIQUE",
		"a case-sensitive UNIQUE on tag_name would allow Nature/nature twins")
}
