package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discoveryLog = `
version: "1"
events:
  - alias:
      name: bmp_common_hdr_t
      target: BmpCommonHdr
  - composite:
      internal_name: BmpCommonHdr
      kind: struct
      original_name: bmp_common_hdr
  - composite:
      internal_name: BmpPeerHdr
      kind: struct
      original_name: bmp_peer_hdr
  - alias:
      name: orphan_t
      target: NeverDiscovered
`

const configTemplate = `language = "C"

[export.rename]
"Keep" = "struct keep"
`

func TestRenderCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	eventsPath := filepath.Join(dir, "discovery.yaml")
	require.NoError(t, os.WriteFile(eventsPath, []byte(discoveryLog), 0o644))

	templatePath := filepath.Join(dir, "cbindgen.toml.template")
	require.NoError(t, os.WriteFile(templatePath, []byte(configTemplate), 0o644))

	outPath := filepath.Join(dir, "out", "cbindgen.toml")
	staticPath := filepath.Join(dir, "out", "exported_names.go")

	cmd := &RenderCmd{
		Events:    eventsPath,
		Template:  templatePath,
		Output:    outPath,
		StaticOut: staticPath,
		StaticPkg: "bindings",
		StaticVar: "ExportedNames",
		Prefer:    "original",
	}
	require.NoError(t, cmd.Execute(nil))

	config, err := os.ReadFile(outPath)
	require.NoError(t, err)

	text := string(config)
	assert.Contains(t, text, "automatically generated")
	assert.Contains(t, text, templatePath)
	assert.Contains(t, text, "[export.rename]")
	assert.Contains(t, text, "BmpCommonHdr")
	assert.Contains(t, text, "struct bmp_common_hdr")
	assert.Contains(t, text, "BmpPeerHdr")
	// Pre-existing rules of the template survive the merge.
	assert.Contains(t, text, "struct keep")

	static, err := os.ReadFile(staticPath)
	require.NoError(t, err)

	src := string(static)
	assert.Contains(t, src, "package bindings")
	assert.Contains(t, src, `"BmpPeerHdr": "struct bmp_peer_hdr",`)
}

func TestRenderCmd_FragmentOnly(t *testing.T) {
	dir := t.TempDir()

	eventsPath := filepath.Join(dir, "discovery.yaml")
	require.NoError(t, os.WriteFile(eventsPath, []byte(discoveryLog), 0o644))

	outPath := filepath.Join(dir, "renames.toml")

	cmd := &RenderCmd{
		Events: eventsPath,
		Output: outPath,
		Prefer: "alias",
	}
	require.NoError(t, cmd.Execute(nil))

	fragment, err := os.ReadFile(outPath)
	require.NoError(t, err)

	// Bare fragment: no banner, no section header, alias preferred.
	text := string(fragment)
	assert.Equal(t,
		"\"BmpCommonHdr\" = \"bmp_common_hdr_t\"\n"+
			"\"BmpPeerHdr\" = \"struct bmp_peer_hdr\"\n",
		text)
}

func TestRenderCmd_BadPreference(t *testing.T) {
	cmd := &RenderCmd{Events: "unused.yaml", Prefer: "newest"}
	assert.Error(t, cmd.Execute(nil))
}
