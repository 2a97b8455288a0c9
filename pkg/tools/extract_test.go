package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTML_TitleAndMainContent(t *testing.T) {
	title, text, err := ExtractHTML([]byte(samplePage))
	require.NoError(t, err)
	assert.Equal(t, "Attention Is All You Need", title)
	assert.Contains(t, text, "sequence transduction")
	assert.NotContains(t, text, "Copyright", "footer content is skipped")
	assert.NotContains(t, text, "Home | About", "nav content is skipped")
}

func TestExtractHTML_ScriptsAndStylesSkipped(t *testing.T) {
	page := `<html><head><title>T</title><style>p{color:red}</style></head>
<body><script>var x = "evil";</script><p>visible</p></body></html>`
	_, text, err := ExtractHTML([]byte(page))
	require.NoError(t, err)
	assert.Contains(t, text, "visible")
	assert.NotContains(t, text, "evil")
	assert.NotContains(t, text, "color:red")
}

func TestExtractDocumentMetadata_Heuristics(t *testing.T) {
	text := "Deep Residual Learning by He, Zhang and Sun. Published 2016. DOI: 10.1109/CVPR.2016.90."
	md := ExtractDocumentMetadata(text)
	require.NotNil(t, md)
	assert.Equal(t, "10.1109/CVPR.2016.90", md["doi"])
	assert.Equal(t, "2016", md["year"])
	assert.Contains(t, md["authors"], "He")
}

func TestExtractDocumentMetadata_NothingFound(t *testing.T) {
	assert.Nil(t, ExtractDocumentMetadata("plain text with no bibliographic signals"))
}

func TestMatchesDomain(t *testing.T) {
	assert.True(t, matchesDomain("https://www.nature.com/articles/x", []string{"nature.com"}))
	assert.True(t, matchesDomain("https://sub.nature.com/y", []string{"nature.com"}))
	assert.False(t, matchesDomain("https://naturefake.com/z", []string{"nature.com"}))
	assert.False(t, matchesDomain("https://nature.com/a", []string{"science.org"}))
}
