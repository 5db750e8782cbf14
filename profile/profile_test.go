package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := ProfileData{Name: "Jane Smith"}
	p.Normalize()

	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.Equal(t, "0", p.MutualConnections)

	t.Run("existing values are kept", func(t *testing.T) {
		p := ProfileData{
			Skills:            []string{"Go"},
			MutualConnections: "7",
		}
		p.Normalize()
		assert.Equal(t, []string{"Go"}, p.Skills)
		assert.Equal(t, "7", p.MutualConnections)
	})
}

func TestFields(t *testing.T) {
	p := ProfileData{
		Name:              "Jane Smith",
		Headline:          "Engineer at Acme Corp",
		Company:           "Acme Corp",
		PrimaryRole:       "Engineer",
		Skills:            []string{"Go", "SQL"},
		MutualConnections: "12",
	}

	fields := p.Fields()
	assert.Equal(t, "Jane Smith", fields["name"])
	assert.Equal(t, "Acme Corp", fields["company"])
	assert.Equal(t, "Go, SQL", fields["skills"])
	assert.Equal(t, "12", fields["mutualConnections"])

	t.Run("empty fields are omitted", func(t *testing.T) {
		fields := ProfileData{Name: "Bob"}.Fields()
		assert.Equal(t, map[string]string{"name": "Bob"}, fields)
	})
}
