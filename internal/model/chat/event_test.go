package chat

import "testing"

func TestDecodeEvent(t *testing.T) {
	ev, ok := DecodeEvent([]byte(`{"type":"order_approved","order_id":42}`))
	if !ok {
		t.Fatal("expected valid frame to decode")
	}
	if ev.Type != EventOrderApproved || ev.OrderID != 42 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	cases := []string{
		`{broken`,
		`"just a string"`,
		`{"order_id":5}`,
		``,
	}
	for _, raw := range cases {
		if _, ok := DecodeEvent([]byte(raw)); ok {
			t.Fatalf("frame %q should be malformed", raw)
		}
	}
}

func TestDecodeEventUnknownTypePasses(t *testing.T) {
	// Unknown but well-formed types decode fine; the dispatcher ignores them.
	ev, ok := DecodeEvent([]byte(`{"type":"price_drop","order_id":1}`))
	if !ok || ev.Type != "price_drop" {
		t.Fatalf("unexpected result: %+v ok=%v", ev, ok)
	}
}
