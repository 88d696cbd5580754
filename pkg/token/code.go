package token

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RoomCodeAlphabet - заглавные буквы и цифры без 0, O, 1 и I
const RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const RoomCodeLength = 6

// GenerateCode n случайных символов алфавита.
func GenerateCode(alphabet string, n int) (string, error) {
	if len(alphabet) == 0 || n <= 0 {
		return "", errors.New("empty alphabet or length")
	}

	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[idx.Int64()]
	}

	return string(b), nil
}

func GenerateRoomCode() (string, error) {
	return GenerateCode(RoomCodeAlphabet, RoomCodeLength)
}
