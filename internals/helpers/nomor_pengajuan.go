package helper

import (
	"crypto/rand"
	"math/big"
	"time"
)

const nomorAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSubmissionNumber membuat nomor pengajuan "YYMMDD-XXXXXX".
// Keunikan dijamin oleh unique index nomor_pengajuan, bukan oleh fungsi ini.
func GenerateSubmissionNumber(now time.Time) (string, error) {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(nomorAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = nomorAlphabet[n.Int64()]
	}
	return now.Format("060102") + "-" + string(suffix), nil
}
