package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslate(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Navigated to Pricing Plans section", l.T("Announcement", Data{"Section": "Pricing Plans"}))
	assert.Equal(t, "ZYXO Assistant", l.T("ChatTitle", Data{"Brand": "ZYXO"}))
	assert.Equal(t, "Try Again", l.T("FallbackRetry", nil))
}

func TestUnknownIDRendersID(t *testing.T) {
	l := Must()
	assert.Equal(t, "NoSuchMessage", l.T("NoSuchMessage", nil))
}

func TestUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	l, err := New("fr-FR", "not a tag")
	require.NoError(t, err)
	assert.Equal(t, language.English, l.Language())
	assert.Equal(t, "Quit", l.T("FallbackQuit", nil))
}
