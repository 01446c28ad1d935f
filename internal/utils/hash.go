package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// SignParams computes the request signature used by signed media-hosting
// uploads: the parameters are sorted by name, joined as "k=v" pairs with "&",
// suffixed with the secret and hashed with SHA-1.
//
// Empty values are skipped, as are the parameters that are never signed
// (file, api_key, resource_type, signature).
//
// Example usage:
//
//	sig := utils.SignParams(map[string]string{"timestamp": "1700000000", "folder": "entries"}, "secret")
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" || unsignedParams[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	sb.WriteString(secret)

	sum := sha1.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

var unsignedParams = map[string]bool{
	"file":          true,
	"api_key":       true,
	"resource_type": true,
	"signature":     true,
}
