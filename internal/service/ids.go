package service

import (
	"crypto/rand"
	"encoding/hex"
)

func newID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Participant codes exclude ambiguous characters so they survive being read
// aloud or written on paper.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newParticipantCode() string {
	bytes := make([]byte, 6)
	_, _ = rand.Read(bytes)
	out := make([]byte, len(bytes))
	for i, b := range bytes {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return "P-" + string(out)
}
