package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/prospect-cli/internal/model"
)

func TestEnrich_SynthesizesEmail(t *testing.T) {
	t.Parallel()

	got := Enrich(model.Contact{FirstName: "Jane", LastName: "Doe"}, "acme.com")
	assert.Equal(t, "jane.doe@acme.com", got.Email)
	assert.False(t, got.EmailValid)
	assert.Equal(t, 50, got.ConfidenceScore)
}

func TestEnrich_StripsNonAlphabetic(t *testing.T) {
	t.Parallel()

	got := Enrich(model.Contact{FirstName: "Ravi", LastName: "P."}, "razorpay.com")
	assert.Equal(t, "ravi.p@razorpay.com", got.Email)

	got = Enrich(model.Contact{FirstName: "Jean-Luc", LastName: "O'Brien"}, "acme.com")
	assert.Equal(t, "jeanluc.obrien@acme.com", got.Email)
}

func TestEnrich_NoDomain(t *testing.T) {
	t.Parallel()

	got := Enrich(model.Contact{FirstName: "Jane", LastName: "Doe"}, "")
	assert.Empty(t, got.Email)
	assert.Equal(t, 10, got.ConfidenceScore)
}

func TestEnrich_MissingNameParts(t *testing.T) {
	t.Parallel()

	got := Enrich(model.Contact{FirstName: "Jane"}, "acme.com")
	assert.Empty(t, got.Email)
	assert.Equal(t, 10, got.ConfidenceScore)
}
