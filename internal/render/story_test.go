package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlfreif/storybook/internal/render"
	"github.com/jlfreif/storybook/internal/testutils"
)

func seedStory(t *testing.T) *testutils.Project {
	t.Helper()
	p := testutils.NewProject(t)

	p.WriteCharacter(t, "cu-cullan.yaml", `id: cu
attributes:
  name: Cullan
story:
  - cu-01.yaml
  - cu-em-02.yaml
  - cu-03.yaml
`)
	p.WriteCharacter(t, "em-emer.yaml", `id: em
attributes:
  name: Emer
story:
  - em-01.yaml
  - cu-em-02.yaml
  - em-03.yaml
`)

	p.WritePage(t, "cu-01.yaml", `spread: 1
beat: Opening
description: Cullan wakes up.
scenes:
  - page: left
    page_number: 1
    focus: Cullan
    visual: Cullan in bed.
    text: Cullan woke with the sun.
  - page: right
    visual: Cullan at the window.
    text: He looked outside.
`)
	p.WritePage(t, "cu-em-02.yaml", `node_type: meeting
spread: 2
location: the orchard
shared_action: picking apples
visual: Cullan and Emer among the trees.
text: They met beneath the apple boughs.
`)
	p.WritePage(t, "cu-03.yaml", testutils.ScenePage("solo", 3))
	p.WritePage(t, "em-01.yaml", testutils.ScenePage("solo", 1))
	p.WritePage(t, "em-03.yaml", testutils.ScenePage("solo", 3))
	return p
}

func TestStory(t *testing.T) {
	p := seedStory(t)
	md, err := render.Story(p.Load(t), "cu")
	require.NoError(t, err)

	assert.Contains(t, md, "# Cullan's Story")
	assert.Contains(t, md, "**Character Code:** CU")
	assert.Contains(t, md, "**Total Spreads:** 3")

	// Scene-based page.
	assert.Contains(t, md, "### Spread 1: cu-01.yaml")
	assert.Contains(t, md, "Page 1 (Left) - Cullan")
	assert.Contains(t, md, "Cullan woke with the sun.")

	// Joint page with node metadata.
	assert.Contains(t, md, "### Spread 2: cu-em-02.yaml (joint with EM)")
	assert.Contains(t, md, "**Node Type:** Meeting Node")
	assert.Contains(t, md, "**Meeting Location:** the orchard")
	assert.Contains(t, md, "**Shared Action:** picking apples")

	// Narrative analysis with surrounding pages from Emer's story.
	assert.Contains(t, md, "## Narrative Node Analysis")
	assert.Contains(t, md, "### Meeting Node with Emer (EM)")
	assert.Contains(t, md, "#### Before (from Emer's story)")
	assert.Contains(t, md, "#### Shared/Connected Page")
	assert.Contains(t, md, "#### After (from Emer's story)")
	assert.Contains(t, md, "##### Spread 1: em-01.yaml")
}

func TestStory_InferredNodeType(t *testing.T) {
	p := seedStory(t)
	// No explicit node_type; a single embedded code infers solo.
	p.WritePage(t, "em-01.yaml", `spread: 1
visual: Emer alone in the meadow.
text: Emer's morning.
`)

	md, err := render.Story(p.Load(t), "em")
	require.NoError(t, err)
	assert.Contains(t, md, "### Spread 1: em-01.yaml\n**Node Type:** Solo")
}

func TestStory_UnknownCharacter(t *testing.T) {
	p := seedStory(t)
	_, err := render.Story(p.Load(t), "zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zz")
}

func TestStory_MissingPageIsNoted(t *testing.T) {
	p := seedStory(t)
	p.WriteCharacter(t, "cu-cullan.yaml", `id: cu
attributes:
  name: Cullan
story:
  - cu-01.yaml
  - cu-lost.yaml
`)

	md, err := render.Story(p.Load(t), "cu")
	require.NoError(t, err)
	assert.Contains(t, md, "_Page file not found: cu-lost.yaml_")
}
