package validator

import (
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

var addressPattern = regexp.MustCompile(`^(0x|0X)?[0-9a-fA-F]{40}$`)

// IsValidAddress 检查是否为合法的 20 字节地址
// 1. 可选 0x 前缀 + 40 位 hex
// 2. 全小写/全大写不校验 checksum，大小写混合时必须满足 EIP-55
// 3. 零地址视为无效
func IsValidAddress(text string) bool {
	text = strings.TrimSpace(text)
	if !addressPattern.MatchString(text) {
		return false
	}
	body := stripPrefix(text)

	if strings.Trim(body, "0") == "" {
		return false
	}

	lower := strings.ToLower(body)
	if body == lower || body == strings.ToUpper(body) {
		return true
	}
	return toChecksumAddress(lower) == body
}

// ToChecksumAddress renders an address in EIP-55 mixed case with the 0x prefix.
// The input must already have the address shape; anything else is returned unchanged.
func ToChecksumAddress(text string) string {
	text = strings.TrimSpace(text)
	if !addressPattern.MatchString(text) {
		return text
	}
	return "0x" + toChecksumAddress(strings.ToLower(stripPrefix(text)))
}

func stripPrefix(text string) string {
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return text[2:]
	}
	return text
}

func keccak256(data []byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	return hash.Sum(nil)
}

// toChecksumAddress 实现 EIP-55 混合大小写校验
func toChecksumAddress(address string) string {
	hexHash := hex.EncodeToString(keccak256([]byte(address)))

	var sb strings.Builder
	for i := 0; i < len(address); i++ {
		char := address[i]
		// hash 的第 i 位 >= 8 时该字母大写
		if hexCharToInt(hexHash[i]) >= 8 {
			sb.WriteString(strings.ToUpper(string(char)))
		} else {
			sb.WriteByte(char)
		}
	}
	return sb.String()
}

func hexCharToInt(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 0
}
