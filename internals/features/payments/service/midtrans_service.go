// file: internals/features/payments/service/midtrans_service.go
package service

import (
	"fmt"
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"madrasahku_backend/internals/configs"
)

var snapClient snap.Client

// InitMidtrans: panggil sekali saat boot. Tanpa server key, pembayaran
// online dimatikan (bayar manual lewat endpoint pay tetap jalan).
func InitMidtrans() {
	if configs.MidtransServerKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY kosong, pembayaran online nonaktif")
		return
	}
	snapClient.New(configs.MidtransServerKey, midtrans.Sandbox)
	log.Println("✅ Midtrans Snap client siap")
}

func Enabled() bool {
	return configs.MidtransServerKey != ""
}

// CreateFeeSnapToken: buat token Snap untuk pembayaran SPP
func CreateFeeSnapToken(feeID string, amount float64, studentName, month string) (string, string, error) {
	if !Enabled() {
		return "", "", fmt.Errorf("pembayaran online tidak aktif")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "fee-" + feeID,
			GrossAmt: int64(amount),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    feeID,
				Name:  fmt.Sprintf("SPP %s - %s", month, studentName),
				Price: int64(amount),
				Qty:   1,
			},
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", fmt.Errorf("midtrans: %w", err)
	}
	return resp.Token, resp.RedirectURL, nil
}
