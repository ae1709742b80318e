package cuesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/choreo"
	"github.com/teranos/choreo/miscue"
)

const dancersSheet = `
framerate: 60
sync: true
groups:
  dancers:
    - name: lead
      position: [0, 0]
      color: "#ffffff"
      script:
        - move: [100, 200]
          duration: 2
        - rotate: 90
          duration: 1
    - name: follow
      position: [50, 50]
      color: [255, 0, 0]
      script:
        - pause: 1.5
  props:
    - name: spotlight
      angle: 45
      script:
        - color: "#000000"
          duration: 4
`

func TestSheet_Parse(t *testing.T) {
	sheet, err := Parse(strings.NewReader(dancersSheet))
	require.NoError(t, err)

	assert.Equal(t, 60.0, sheet.Framerate)
	assert.True(t, sheet.Sync)
	require.Len(t, sheet.Groups["dancers"], 2)
	require.Len(t, sheet.Groups["props"], 1)

	lead := sheet.Groups["dancers"][0]
	assert.Equal(t, "lead", lead.Name)
	require.Len(t, lead.Script, 2)
	assert.Equal(t, []float64{100, 200}, lead.Script[0].Move)
	assert.Equal(t, 2.0, lead.Script[0].Duration)
	require.NotNil(t, lead.Script[1].Rotate)
	assert.Equal(t, 90.0, *lead.Script[1].Rotate)
}

func TestSheet_ColorForms(t *testing.T) {
	sheet, err := Parse(strings.NewReader(dancersSheet))
	require.NoError(t, err)

	hex := sheet.Groups["dancers"][0].Color
	require.NotNil(t, hex)
	assert.Equal(t, choreo.RGB{R: 255, G: 255, B: 255}, hex.RGB)

	triple := sheet.Groups["dancers"][1].Color
	require.NotNil(t, triple)
	assert.Equal(t, choreo.RGB{R: 255, G: 0, B: 0}, triple.RGB)
}

func TestSheet_Build(t *testing.T) {
	sheet, err := Parse(strings.NewReader(dancersSheet))
	require.NoError(t, err)

	prod, err := sheet.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, prod.Scene.Group("dancers").Len())
	assert.Equal(t, 1, prod.Scene.Group("props").Len())

	lead, follow, spot := prod.Actors["lead"], prod.Actors["follow"], prod.Actors["spotlight"]
	require.NotNil(t, lead)
	require.NotNil(t, follow)
	require.NotNil(t, spot)

	assert.Equal(t, choreo.Vec2{X: 50, Y: 50}, follow.Position)
	assert.Equal(t, 45.0, spot.Angle)

	// sync: true padded every timeline to the longest script (4s).
	assert.Equal(t, 4.0, lead.Timeline().EndTime())
	assert.Equal(t, 4.0, follow.Timeline().EndTime())
	assert.Equal(t, 4.0, spot.Timeline().EndTime())

	// The built scene answers queries like a hand-assembled one.
	s, err := lead.StateAt(1)
	require.NoError(t, err)
	assert.Equal(t, choreo.Vec2{X: 50, Y: 100}, s.Position)
}

func TestSheet_BuildRejectsNegativeDuration(t *testing.T) {
	doc := `
groups:
  default:
    - name: broken
      script:
        - pause: -1
`
	sheet, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = sheet.Build()
	assert.ErrorIs(t, err, miscue.InvalidDuration)
}

func TestSheet_BuildRejectsAmbiguousStep(t *testing.T) {
	doc := `
groups:
  default:
    - script:
        - move: [1, 2]
          rotate: 90
          duration: 1
`
	sheet, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = sheet.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of")
}

func TestSheet_BuildRejectsBadColor(t *testing.T) {
	_, err := Parse(strings.NewReader(`
groups:
  default:
    - color: "not-a-color"
`))
	require.Error(t, err)
}

func TestSheet_BuildRejectsBadPosition(t *testing.T) {
	sheet, err := Parse(strings.NewReader(`
groups:
  default:
    - position: [1, 2, 3]
`))
	require.NoError(t, err)

	_, err = sheet.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position")
}
