package device

import (
	"testing"

	"github.com/holoplot/go-evdev"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		raw  evdev.InputEvent
		want Event
	}{
		{
			name: "absolute axis sample",
			raw:  evdev.InputEvent{Type: evdev.EV_ABS, Code: 3, Value: 1234},
			want: Event{Kind: EventAbsolute, Axis: 3, Value: 1234},
		},
		{
			name: "dropped-buffer marker",
			raw:  evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_DROPPED},
			want: Event{Kind: EventDropped},
		},
		{
			name: "ordinary sync report",
			raw:  evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
			want: Event{Kind: EventOther},
		},
		{
			name: "button press",
			raw:  evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_TRIGGER, Value: 1},
			want: Event{Kind: EventOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(&tt.raw); got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatID(t *testing.T) {
	id := evdev.InputID{BusType: 0x0003, Vendor: 0x054c, Product: 0x09cc, Version: 0x8111}
	if got := formatID(id); got != "0003:054c:09cc" {
		t.Errorf("formatID() = %q, want %q", got, "0003:054c:09cc")
	}
}
