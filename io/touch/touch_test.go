// SPDX-License-Identifier: Unlicense OR MIT

package touch

import "testing"

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		Begin:   "Begin",
		Update:  "Update",
		End:     "End",
		Kind(0): "invalid",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestFlagsString(t *testing.T) {
	f := FlagClientID | FlagReplaying | FlagPointerEmulated | FlagEnd
	if got := f.String(); got != "ClientID|Replaying|PointerEmulated|End" {
		t.Errorf("got %q", got)
	}
	if got := Flags(0).String(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
