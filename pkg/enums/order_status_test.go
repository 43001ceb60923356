package enums

import "testing"

func TestParseOrderStatus(t *testing.T) {
	for _, value := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(value)
		if err != nil {
			t.Fatalf("expected %q to parse: %v", value, err)
		}
		if status.String() != value {
			t.Fatalf("round trip mismatch: %q != %q", status, value)
		}
		if !status.IsValid() {
			t.Fatalf("expected %q to be valid", value)
		}
	}
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseOrderStatus("PENDING"); err == nil {
		t.Fatalf("expected case-sensitive rejection")
	}
	if _, err := ParseOrderStatus("refunded"); err == nil {
		t.Fatalf("expected unknown value rejection")
	}
	if OrderStatus("refunded").IsValid() {
		t.Fatalf("unexpected validity")
	}
}
