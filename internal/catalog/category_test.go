package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		desc string
		want string
		ok   bool
	}{
		{"Front Bumper Cover", "Bumpers", true},
		{"bumper reinforcement bracket", "Bumpers", true}, // earlier rule beats bracket
		{"LH Headlamp Assembly", "Lamps", true},
		{"Tail Lamp, Rear", "Lamps", true},
		{"Windshield Glass", "Glass", true},
		{"Push Clip", "Clips", true},
		{"Fender Retainer", "Clips", true}, // clip/retainer outranks panels
		{"Mounting Bracket", "Brackets", true},
		{"Quarter Panel", "Panels", true},
		{"Door Shell", "Panels", true},
		{"Dash Trim Bezel", "Interior", true},
		{"Park Sensor", "Electrical", true},
		{"Wiring Harness", "Electrical", true},
		{"Radiator Support", "Mechanical", true},
		{"A/C Compressor", "Mechanical", true},
		{"Mystery Widget", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := InferCategory(tc.desc)
		assert.Equal(t, tc.ok, ok, "desc %q", tc.desc)
		assert.Equal(t, tc.want, got, "desc %q", tc.desc)
	}
}

func TestInferCategoryWordBoundaries(t *testing.T) {
	// Substrings inside longer words must not match
	_, ok := InferCategory("doorstopper widget")
	assert.False(t, ok, "doorstopper must not match door")

	got, ok := InferCategory("door hinge")
	assert.True(t, ok)
	assert.Equal(t, "Panels", got)
}

func TestInferCategoryCaseInsensitive(t *testing.T) {
	got, ok := InferCategory("FRONT BUMPER")
	assert.True(t, ok)
	assert.Equal(t, "Bumpers", got)
}
