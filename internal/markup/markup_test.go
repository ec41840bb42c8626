package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="UserTest" tests="2" failures="1" errors="0">
  <testcase name="test_create" time="0.01"/>
  <testcase name="test_update" time="0.2">
    <failure message="boom" type="Failure"><![CDATA[expected 1
got 2]]></failure>
  </testcase>
</testsuite>`

	root, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "testsuite", root.Name())
	tests, ok := root.Attr("tests")
	assert.True(t, ok)
	assert.Equal(t, "2", tests)
	_, ok = root.Attr("skipped")
	assert.False(t, ok)

	cases := root.Children("testcase")
	require.Len(t, cases, 2)
	assert.Empty(t, cases[0].Children(""))

	failures := cases[1].Children("")
	require.Len(t, failures, 1)
	assert.Equal(t, "failure", failures[0].Name())
	assert.Equal(t, "expected 1\ngot 2", failures[0].Text())
}

func TestParseXML_Latin1(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<testsuite name=\"UserTest\" tests=\"1\" failures=\"1\" errors=\"0\">" +
		"<testcase name=\"test_caf\xe9\"><failure>caf\xe9 expected</failure></testcase>" +
		"</testsuite>"

	root, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)

	cases := root.Children("testcase")
	require.Len(t, cases, 1)
	name, _ := cases[0].Attr("name")
	assert.Equal(t, "test_café", name)
	assert.Equal(t, "café expected", cases[0].Children("failure")[0].Text())
}

func TestParseXML_UnknownEncoding(t *testing.T) {
	doc := `<?xml version="1.0" encoding="x-no-such-charset"?><testsuite/>`

	_, err := ParseXML(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestParseXML_Malformed(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":          "",
		"unclosed":       `<testsuite tests="1"><testcase name="a">`,
		"mismatched":     `<testsuite><testcase></testsuite>`,
		"two roots":      `<a/><b/>`,
		"not xml at all": "just some text",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseXML(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseHTML_TagSoup(t *testing.T) {
	// unclosed cells and rows, no tbody in the nested table
	doc := `<html><body>
<table class="report">
<tbody>
<tr><td>Name<td>Total
<tr><td><a href="x.html">lib/foo.rb</a><td><tt>42</tt><td><td><td><table><tr><td><tt>55.5%</tt>&nbsp;</td></tr></table>
</tbody>
</table>`

	root, err := ParseHTML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "html", root.Name())

	rows := Find(root, "body", "table", "tbody", "tr")
	require.Len(t, rows, 2)

	name, ok := FindText(rows[1], "td[1]", "a")
	assert.True(t, ok)
	assert.Equal(t, "lib/foo.rb", name)

	lines, ok := FindText(rows[1], "td[2]", "tt")
	assert.True(t, ok)
	assert.Equal(t, "42", lines)

	pct, ok := FindText(rows[1], "td[5]", "table", "tr", "td", "tt")
	assert.True(t, ok)
	assert.Equal(t, "55.5%", pct)

	_, ok = FindText(rows[0], "td[5]", "table")
	assert.False(t, ok)
}

func TestFind_Positions(t *testing.T) {
	root, err := ParseXML(strings.NewReader(`<r><a>1</a><b>x</b><a>2</a><a>3</a></r>`))
	require.NoError(t, err)

	assert.Len(t, Find(root, "a"), 3)
	text, ok := FindText(root, "a[2]")
	assert.True(t, ok)
	assert.Equal(t, "2", text)
	assert.Nil(t, Find(root, "a[4]"))
	assert.Nil(t, Find(root, "c"))
	assert.Equal(t, "1x23", root.Text())
}
