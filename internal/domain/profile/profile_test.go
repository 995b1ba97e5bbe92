package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoURL(t *testing.T) {
	link, err := Profile{Email: "deepa@example.com"}.MailtoURL()
	require.NoError(t, err)
	assert.Equal(t, "mailto:deepa@example.com", link)

	link, err = Profile{Email: "mailto:deepa@example.com"}.MailtoURL()
	require.NoError(t, err)
	assert.Equal(t, "mailto:deepa@example.com", link)

	_, err = Profile{Email: "Deepa <deepa@example.com>"}.MailtoURL()
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestIsAbsoluteURI(t *testing.T) {
	assert.True(t, IsAbsoluteURI("https://github.com/deepa"))
	assert.False(t, IsAbsoluteURI("github.com/deepa"))
	assert.False(t, IsAbsoluteURI("/resume.pdf"))
	assert.False(t, IsAbsoluteURI(""))
}

func TestValidateReportsLinksInFieldOrder(t *testing.T) {
	p := Profile{Email: "deepa@example.com", GitHub: "github.com/deepa", LinkedIn: "linkedin.com/in/deepa"}

	for range 20 {
		err := p.Validate()
		require.ErrorIs(t, err, ErrRelativeURI)
		assert.Equal(t,
			`profile link must be an absolute URI: github="github.com/deepa"`+"\n"+
				`profile link must be an absolute URI: linkedin="linkedin.com/in/deepa"`,
			err.Error())
	}
}
