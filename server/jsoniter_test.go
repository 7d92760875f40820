// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"testing"

	"github.com/SoftbearStudios/crater/server/terrain"
	"github.com/SoftbearStudios/crater/server/world"
)

func TestJsonIter_Outbound(t *testing.T) {
	tests := []struct {
		name     string
		out      outbound
		expected string
	}{
		{
			name:     "explosion",
			out:      Explosion{Position: world.Vec2f{X: 1, Y: 0.5}, Radius: 3},
			expected: `{"data":{"position":[1,0.5],"radius":3},"type":"explosion"}`,
		},
		{
			name:     "terrain is written verbatim",
			out:      Terrain{raw: []byte(`{"version":7}`)},
			expected: `{"data":{"version":7},"type":"terrain"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf, err := json.Marshal(Message{Data: test.out})
			if err != nil {
				t.Fatal(err)
			}
			if string(buf) != test.expected {
				t.Errorf("expected %s, got %s", test.expected, buf)
			}
		})
	}
}

func TestJsonIter_TerrainData(t *testing.T) {
	data := &terrain.Data{
		Bounds:    world.AABBFrom(0, -1, 2, 1),
		Boundary:  []world.Vec2f{{X: 0, Y: 0}, {X: 2, Y: -1}, {X: 2, Y: -7}, {X: 0, Y: -7}},
		Collision: []world.Vec2f{{X: 0, Y: 0}, {X: 2, Y: -1}},
		MinHeight: -2,
		Seed:      5,
		Version:   3,
	}

	const expected = `{"bounds":{"x":0,"y":-1,"width":2,"height":1},` +
		`"boundary":[[0,0],[2,-1],[2,-7],[0,-7]],"collision":[[0,0],[2,-1]],` +
		`"minHeight":-2,"seed":5,"version":3}`

	buf, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != expected {
		t.Errorf("different output:\nexpected: %s\ngot:      %s", expected, buf)
	}
}

func TestJsonIter_Inbound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected interface{}
	}{
		{
			name:     "impact",
			input:    `{"type":"impact","data":{"position":[1,2.5],"radius":3}}`,
			expected: Impact{Position: world.Vec2f{X: 1, Y: 2.5}, Radius: 3},
		},
		{
			name:     "data before type",
			input:    `{"data":{"radius":4,"position":[-1,0]},"type":"impact"}`,
			expected: Impact{Position: world.Vec2f{X: -1, Y: 0}, Radius: 4},
		},
		{
			name:     "regenerate",
			input:    `{"type":"regenerate","data":{"seed":42}}`,
			expected: Regenerate{Seed: 42},
		},
		{
			name:     "regenerate without data",
			input:    `{"type":"regenerate"}`,
			expected: Regenerate{},
		},
		{
			name:     "unknown type",
			input:    `{"type":"fire","data":{}}`,
			expected: InvalidInbound{messageType: "fire"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var message Message
			if err := json.Unmarshal([]byte(test.input), &message); err != nil {
				t.Fatal(err)
			}
			if message.Data != test.expected {
				t.Errorf("expected %#v, got %#v", test.expected, message.Data)
			}
		})
	}
}

func TestJsonIter_InboundErrors(t *testing.T) {
	inputs := []string{
		`{"data":{"radius":3}}`,
		`{"type":"impact","data":{"position":[1],"radius":3}}`,
		`{"type":"impact","data":{"position":{"x":1,"y":2}}}`,
		`not json`,
	}

	for _, input := range inputs {
		var message Message
		if err := json.Unmarshal([]byte(input), &message); err == nil {
			t.Errorf("%s: expected error, got %#v", input, message.Data)
		}
	}
}

func BenchmarkJsonIter_Terrain(b *testing.B) {
	h, err := NewHub(testConfig(), nil)
	if err != nil {
		b.Fatal(err)
	}
	data := h.Published().Data()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(data); err != nil {
			b.Fatal(err)
		}
	}
}
