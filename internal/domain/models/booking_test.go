package models

import "testing"

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		if !ValidPaymentMethod(m) {
			t.Fatalf("offered method %q rejected", m)
		}
	}
	for _, m := range []string{"", "cash", "Mobile_Money"} {
		if ValidPaymentMethod(m) {
			t.Fatalf("method %q accepted but not offered", m)
		}
	}
}
