package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	p, ok := ParsePage("classifier")
	assert.True(t, ok)
	assert.Equal(t, PageClassifier, p)

	p, ok = ParsePage("REGISTER")
	assert.True(t, ok)
	assert.Equal(t, PageRegister, p)

	_, ok = ParsePage("settings")
	assert.False(t, ok)
}

func TestDestinationHeader(t *testing.T) {
	assert.Equal(t, []string{"Username", "Email", "Password"}, DestinationRegistrations.Header())
	assert.Equal(t, []string{"Company Name", "Reference Link", "Is Real Posting"}, DestinationFeedback.Header())
	assert.Nil(t, Destination("audit").Header())
	assert.False(t, Destination("audit").Valid())
	assert.True(t, DestinationFeedback.Valid())
}
