package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/conform/rules"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("passes for common addresses", func(t *testing.T) {
		t.Parallel()
		c := rules.Email("user@example.com")
		assert.True(t, c.Test())
		assert.Equal(t, "format.email", c.ID)
		assert.Equal(t, "must be a valid email address", c.Text())

		assert.True(t, rules.Email("first.last@sub.example.co").Test())
		assert.True(t, rules.Email("user+tag@example.com").Test())
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{
			"",
			"   ",
			"not-an-email",
			"user@",
			"@example.com",
			"user@nodot",
			"user@.example.com",
			"user@example..com",
		} {
			assert.False(t, rules.Email(v).Test(), "expected %q to be rejected", v)
		}
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	t.Run("passes for absolute URLs", func(t *testing.T) {
		t.Parallel()
		c := rules.URL("https://example.com")
		assert.True(t, c.Test())
		assert.Equal(t, "format.url", c.ID)

		assert.True(t, rules.URL("http://localhost:8080/path?q=1").Test())
	})

	t.Run("fails without scheme or host", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{
			"",
			"nope",
			"example.com",
			"/relative/path",
		} {
			assert.False(t, rules.URL(v).Test(), "expected %q to be rejected", v)
		}
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("passes for a canonical uuid", func(t *testing.T) {
		t.Parallel()
		c := rules.UUID("123e4567-e89b-12d3-a456-426614174000")
		assert.True(t, c.Test())
		assert.Equal(t, "format.uuid", c.ID)
		assert.Equal(t, "must be a valid UUID", c.Text())
	})

	t.Run("fails for non-canonical input", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{
			"",
			"123e4567",
			"123e4567e89b12d3a456426614174000",
			"123e4567-e89b-12d3-a456-42661417400g",
			"{123e4567-e89b-12d3-a456-426614174000}",
		} {
			assert.False(t, rules.UUID(v).Test(), "expected %q to be rejected", v)
		}
	})
}
