// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"testing"
)

func TestBotClient_Bombard(t *testing.T) {
	h, err := NewHub(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	bot := NewBotClient(1, 3)
	bot.hub = h

	// Nothing to aim at yet
	bot.Bombard()
	if len(h.inbound) != 0 {
		t.Fatalf("expected no impact before the first terrain, got %d", len(h.inbound))
	}

	bot.Send(h.Published())
	data := h.Published().Data()

	for i := 0; i < 10; i++ {
		bot.Bombard()
		in := <-h.inbound

		impact, ok := in.inbound.(Impact)
		if !ok {
			t.Fatalf("expected Impact, got %T", in.inbound)
		}
		if in.Client != bot {
			t.Errorf("expected the impact to be signed by the bot")
		}
		if impact.Radius != 3 {
			t.Errorf("expected radius 3, got %f", impact.Radius)
		}
		if x := impact.Position.X; x < data.Bounds.X || x > data.Bounds.Max().X {
			t.Errorf("impact %f outside of terrain %+v", x, data.Bounds)
		}
		if y := data.HeightAt(impact.Position.X); impact.Position.Y != y {
			t.Errorf("expected impact on the surface at %f, got %f", y, impact.Position.Y)
		}
	}

	if bot.impacts != 10 {
		t.Errorf("expected 10 impacts, got %d", bot.impacts)
	}
}
