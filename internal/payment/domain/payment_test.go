package domain

import "testing"

func TestValidSignature(t *testing.T) {
	sig := Signature("secret", "order_1", "pay_1")
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64 hex chars", len(sig))
	}

	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"matching", "order_1", "pay_1", sig, true},
		{"other payment", "order_1", "pay_2", sig, false},
		{"other order", "order_2", "pay_1", sig, false},
		{"tampered", "order_1", "pay_1", string(tampered), false},
		{"empty", "order_1", "pay_1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSignature("secret", tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("ValidSignature = %v, want %v", got, tt.want)
			}
		})
	}

	if ValidSignature("other-secret", "order_1", "pay_1", sig) {
		t.Error("signature must depend on the secret")
	}
}
