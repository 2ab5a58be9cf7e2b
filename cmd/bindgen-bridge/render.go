package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mxyns/bindgen-bridge/internal/common"
	"github.com/mxyns/bindgen-bridge/internal/diagnostic"
	"github.com/mxyns/bindgen-bridge/internal/events"
	"github.com/mxyns/bindgen-bridge/internal/mapping"
	"github.com/mxyns/bindgen-bridge/internal/render"
	"github.com/mxyns/bindgen-bridge/internal/template"
)

// RenderCmd generates the export artifacts from a discovery log.
type RenderCmd struct {
	Events      string `long:"events" short:"e" required:"true" description:"discovery log written by the header importer (YAML)"`
	Template    string `long:"template" short:"t" description:"export config template (TOML); when set, --output receives the merged config"`
	Output      string `long:"output" short:"o" description:"path of the generated export config (merged template or bare fragment)"`
	StaticOut   string `long:"static" description:"path of the generated Go lookup table source"`
	StaticPkg   string `long:"static-pkg" default:"bindings" description:"package name of the generated lookup table"`
	StaticVar   string `long:"static-var" default:"ExportedNames" description:"variable name of the generated lookup table"`
	Prefer      string `long:"prefer" default:"alias" choice:"alias" choice:"original" description:"which discovered name wins when both exist"`
	KeepPending bool   `long:"keep-pending" description:"keep unresolved aliases instead of discarding them before rendering"`
}

// Execute implements flags.Commander.
func (c *RenderCmd) Execute(_ []string) error {
	pref, err := render.ParsePreference(c.Prefer)
	if err != nil {
		return err
	}

	m, err := c.collect()
	if err != nil {
		return err
	}

	diags := &diagnostic.Diagnostics{}

	rules, err := render.Render(m, pref, diags)
	if err != nil {
		return err
	}

	if common.IsEmpty(rules) {
		log.Printf("warning: discovery log produced no rename rules")
	}

	artifacts, err := c.buildArtifacts(rules)
	if err != nil {
		return err
	}

	if err := render.WriteArtifacts(artifacts); err != nil {
		return err
	}

	reportDiagnostics(diags)

	return diags.Error()
}

// collect replays the discovery log into a fresh aggregate.
func (c *RenderCmd) collect() (*mapping.NameMappings, error) {
	eventLog, err := events.LoadFile(c.Events)
	if err != nil {
		return nil, err
	}

	m := mapping.NewNameMappings()
	if err := events.Replay(eventLog, m); err != nil {
		return nil, err
	}

	if !c.KeepPending {
		if dropped := m.ForgetUnusedAliases(); dropped > 0 {
			log.Printf("dropped %d unresolved aliases", dropped)
		}
	}

	return m, nil
}

// buildArtifacts projects the rules into the requested output files.
func (c *RenderCmd) buildArtifacts(rules []render.Rule) ([]render.Artifact, error) {
	var artifacts []render.Artifact

	if c.Output != "" {
		content, err := c.configContent(rules)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, render.Artifact{Path: c.Output, Content: content})
	}

	if c.StaticOut != "" {
		src, err := render.StaticMap(rules, render.StaticMapConfig{
			PackageName: c.StaticPkg,
			VarName:     c.StaticVar,
		})
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, render.Artifact{Path: c.StaticOut, Content: src})
	}

	return artifacts, nil
}

func (c *RenderCmd) configContent(rules []render.Rule) ([]byte, error) {
	if c.Template == "" {
		return []byte(render.Fragment(rules)), nil
	}

	tpl, err := template.New(c.Template).ReadTOML()
	if err != nil {
		return nil, err
	}

	return tpl.WithRules(rules).Generate()
}

func reportDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	for _, d := range diags.Infos {
		fmt.Fprintf(os.Stderr, "info: %s\n", d)
	}

	for _, d := range diags.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", d)
	}
}
