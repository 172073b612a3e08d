package normalize

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	n := New()
	for _, c := range []struct {
		in, want string
	}{
		{"icspackage/project/DEMO/PROCESSOR_123456/flow.xml", "icspackage/project/demo/processor/flow.xml"},
		{"a/resourcegroup_99/b", "a/resourcegroup/b"},
		{"a/application_7/inbound_12/outbound_9", "a/application/inbound/outbound"},
		{"itg_a1b2c3d4-1234-5678-9abc-def012345678/x", "itg/x"},
		{"itg_0123456789abcdef/x", "itg/x"},
		{"req_deadbeef/res_cafebabe", "req/res"},
		{"DEMO_01.02.0000/project.xml", "demo/project.xml"},
		{"mapping (2).xsl", "mapping.xsl"},
		{"a//b///c", "a/b/c"},
		{"  Mixed/Case/Path.XML ", "mixed/case/path.xml"},
	} {
		assert.Equal(t, c.want, n.Path(c.in), "path %q", c.in)
	}
}

func TestPathIdempotent(t *testing.T) {
	n := New()
	paths := []string{
		"icspackage/project/DEMO_01.02.0000/processor_42/res_beef (3).xml",
		"itg_a1b2c3d4-1234-5678-9abc-def012345678//application_5/file.wsdl",
		"plain/path/file.json",
	}
	for _, p := range paths {
		once := n.Path(p)
		assert.Equal(t, once, n.Path(once), "Path must be idempotent for %q", p)
	}
}

func TestContentXMLStripsGeneratedAttrs(t *testing.T) {
	n := New()
	left := `<flow timestamp="2024-01-02T03:04:05Z" name="Main"><invoke/></flow>`
	right := `<flow timestamp="2025-06-07T08:09:10Z" name="Main"><invoke/></flow>`
	assert.Equal(t, n.Content(left, "a/flow.xml"), n.Content(right, "a/flow.xml"))
}

func TestContentXMLNoise(t *testing.T) {
	n := New()
	left := "<proc createdTime=\"1\" modifiedTime=\"2\" xml:id=\"gen9\" xmlns:orajs3=\"urn:x\">\n  <orajs3:step/>\n</proc>"
	right := "<proc createdTime=\"9\" modifiedTime=\"8\" xml:id=\"gen1\" xmlns:orajs7=\"urn:x\">\n<orajs7:step/>\n</proc>"
	assert.Equal(t, n.Content(left, "p.xml"), n.Content(right, "p.xml"))
}

func TestContentXMLCollapsesWhitespace(t *testing.T) {
	n := New()
	got := n.Content("<a>\n\t<b/>\n</a>", "f.wsdl")
	assert.Equal(t, "<a> <b/> </a>", got)
}

func TestContentNonXMLKeepsWhitespace(t *testing.T) {
	n := New()
	content := "{\n  \"name\": \"processor_12\"\n}"
	got := n.Content(content, "config.json")
	assert.Equal(t, "{\n  \"name\": \"processor\"\n}", got)
}

func TestContentRealChangeSurvives(t *testing.T) {
	n := New()
	left := `<flow timestamp="1"><invoke/></flow>`
	right := `<flow timestamp="1"><invoke/><assign/></flow>`
	assert.NotEqual(t, n.Content(left, "f.xml"), n.Content(right, "f.xml"))
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "archdiff-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ConfigFilename)
	assert.NoError(t, ioutil.WriteFile(path, []byte(`
version: 1
rules:
  - name: session-id
    pattern: 'session_\d+'
    replacement: session
categories:
  connections:
    - endpoint
`), 0600))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Len(t, cfg.Rules, 1)
	assert.Equal(t, []string{"endpoint"}, cfg.Categories["connections"])

	n, err := NewWithConfig(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "a/session/b", n.Path("a/session_991/b"))
	// built-ins still apply
	assert.Equal(t, "a/processor/b", n.Path("a/processor_991/b"))
}

func TestLoadConfigRejectsBadVersion(t *testing.T) {
	dir, err := ioutil.TempDir("", "archdiff-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ConfigFilename)
	assert.NoError(t, ioutil.WriteFile(path, []byte("version: 2\n"), 0600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadPattern(t *testing.T) {
	dir, err := ioutil.TempDir("", "archdiff-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ConfigFilename)
	assert.NoError(t, ioutil.WriteFile(path, []byte(`
version: 1
rules:
  - name: broken
    pattern: '['
`), 0600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
