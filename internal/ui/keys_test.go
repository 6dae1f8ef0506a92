package ui

import (
	"testing"

	"github.com/atomicstack/cookbook-tui/internal/state"
)

func TestShortHelpFollowsTab(t *testing.T) {
	k := defaultKeyMap()
	k.tab = state.TabPantry
	found := false
	for _, b := range k.ShortHelp() {
		if b.Help().Key == k.InStock.Help().Key {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pantry help to include the in-stock toggle")
	}
	k.tab = state.TabSettings
	for _, b := range k.ShortHelp() {
		if b.Help().Key == k.Add.Help().Key {
			t.Fatalf("settings help should not offer add")
		}
	}
}

func TestKeyMsgNames(t *testing.T) {
	if got := keyMsg("enter").String(); got != "enter" {
		t.Fatalf("got %q", got)
	}
	if got := keyMsg("/").String(); got != "/" {
		t.Fatalf("got %q", got)
	}
}
