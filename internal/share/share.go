// Package share encodes a completed answer set as a compact URL-safe token,
// so a result can be reopened from a link without any server-side lookup.
// Layout: version, bank code, locale code, answer count, one byte per
// question in bank order (0xFF = unanswered), then a truncated SHA-256
// checksum over everything before it.
package share

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

// #region codes

const (
	tokenVersion = 1
	checksumLen  = 4
	unanswered   = 0xFF
)

var bankCodes = map[string]byte{
	bank.BankReflection: 1,
	bank.BankSeedling:   2,
}

var localeCodes = map[string]byte{
	"en": 1,
	"hi": 2,
	"te": 3,
}

func bankByCode(code byte) (string, bool) {
	for name, c := range bankCodes {
		if c == code {
			return name, true
		}
	}
	return "", false
}

func localeByCode(code byte) (string, bool) {
	for name, c := range localeCodes {
		if c == code {
			return name, true
		}
	}
	return "", false
}

// #endregion codes

// #region encode

// Encode packs a session's answers into a token. Values outside the bank's
// scale are rejected; missing answers encode as the unanswered marker.
func Encode(bankName, locale string, answers bank.AnswerSet) (string, error) {
	b, ok := bank.ByName(bankName)
	if !ok {
		return "", fmt.Errorf("encode token: unknown bank %q", bankName)
	}
	bankCode, ok := bankCodes[bankName]
	if !ok {
		return "", fmt.Errorf("encode token: bank %q has no code", bankName)
	}
	localeCode, ok := localeCodes[locale]
	if !ok {
		return "", fmt.Errorf("encode token: unknown locale %q", locale)
	}

	qs := b.Questions(b.DefaultLocale)
	buf := make([]byte, 0, 4+len(qs)+checksumLen)
	buf = append(buf, tokenVersion, bankCode, localeCode, byte(len(qs)))
	for _, q := range qs {
		v, ok := answers[q.ID]
		if !ok {
			buf = append(buf, unanswered)
			continue
		}
		if !b.Scale.Contains(v) {
			return "", fmt.Errorf("encode token: answer %d for %q outside scale", v, q.ID)
		}
		buf = append(buf, byte(v-b.Scale.Lo))
	}

	sum := sha256.Sum256(buf)
	buf = append(buf, sum[:checksumLen]...)
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// #endregion encode

// #region decode

// Decode unpacks a token back into (bank, locale, answers). Any structural
// damage, including a checksum mismatch, fails the whole token; there is no
// partial recovery.
func Decode(token string) (bankName, locale string, answers bank.AnswerSet, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", nil, fmt.Errorf("decode token: %w", err)
	}
	if len(raw) < 4+checksumLen {
		return "", "", nil, fmt.Errorf("decode token: truncated (%d bytes)", len(raw))
	}

	body, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	want := sha256.Sum256(body)
	if !bytes.Equal(sum, want[:checksumLen]) {
		return "", "", nil, fmt.Errorf("decode token: checksum mismatch")
	}

	if body[0] != tokenVersion {
		return "", "", nil, fmt.Errorf("decode token: unsupported version %d", body[0])
	}
	bankName, ok := bankByCode(body[1])
	if !ok {
		return "", "", nil, fmt.Errorf("decode token: unknown bank code %d", body[1])
	}
	locale, ok = localeByCode(body[2])
	if !ok {
		return "", "", nil, fmt.Errorf("decode token: unknown locale code %d", body[2])
	}

	b, _ := bank.ByName(bankName)
	qs := b.Questions(b.DefaultLocale)
	count := int(body[3])
	if count != len(qs) {
		return "", "", nil, fmt.Errorf("decode token: %d answers for a %d-question bank", count, len(qs))
	}
	if len(body) != 4+count {
		return "", "", nil, fmt.Errorf("decode token: body length %d, want %d", len(body), 4+count)
	}

	answers = bank.AnswerSet{}
	for i, q := range qs {
		raw := body[4+i]
		if raw == unanswered {
			continue
		}
		v := int(raw) + b.Scale.Lo
		if !b.Scale.Contains(v) {
			return "", "", nil, fmt.Errorf("decode token: answer %d for %q outside scale", v, q.ID)
		}
		answers[q.ID] = v
	}
	return bankName, locale, answers, nil
}

// #endregion decode
