package qrimage

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"
	"github.com/skip2/go-qrcode"
	"rsc.io/qr"
)

// Preview draws payload as a half-block QR code on w, for terminals.
//
// qrterminal encodes with rsc.io/qr, which packs mixed numeric and byte data
// less tightly than go-qrcode. Payloads it cannot fit are drawn from the
// go-qrcode symbol instead.
func Preview(w io.Writer, payload string) error {
	if payload == "" {
		return fmt.Errorf("%w: empty payload", ErrEncoding)
	}
	if _, err := qr.Encode(payload, qr.L); err == nil {
		qrterminal.GenerateHalfBlock(payload, qrterminal.L, w)
		return nil
	}

	q, err := qrcode.New(payload, RecoveryLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if _, err := io.WriteString(w, q.ToSmallString(false)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
